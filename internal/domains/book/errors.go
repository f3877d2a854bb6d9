package book

import "errors"

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrIsbnTaken      = errors.New("isbn already in use")
	ErrAuthorNotFound = errors.New("author not found")
)

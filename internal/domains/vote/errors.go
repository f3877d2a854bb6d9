package vote

import "errors"

var (
	ErrVoteNotFound = errors.New("vote not found")
	ErrBookNotFound = errors.New("book not found")
	ErrAlreadyVoted = errors.New("user has already voted for this book")
	ErrNotVoteOwner = errors.New("vote belongs to another user")
)

package book

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpsertRequest carries the client-writable book fields for create/update.
// The derived vote statistics are not accepted from clients.
type UpsertRequest struct {
	Title         string `json:"title"`
	ISBN          int64  `json:"isbn"`
	NumberOfPages int    `json:"number_of_pages"`
	Description   string `json:"description"`
	AuthorID      int64  `json:"author_id"`
}

func (r UpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.By(isbn13),
		),
		validation.Field(&r.NumberOfPages,
			validation.Required.Error("number of pages is required"),
			validation.Min(1),
		),
		validation.Field(&r.Description,
			validation.Length(0, 255),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author id is required"),
		),
	)
}

// isbn13 accepts exactly 13 digits
func isbn13(value interface{}) error {
	n, _ := value.(int64)
	if n < 1_000_000_000_000 || n > 9_999_999_999_999 {
		return errors.New("isbn must be exactly 13 digits")
	}
	return nil
}

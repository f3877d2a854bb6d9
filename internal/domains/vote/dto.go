package vote

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateRequest carries a new vote. Points is a pointer so 0, a legal score,
// survives the required check.
type CreateRequest struct {
	Points  *int   `json:"points"`
	Comment string `json:"comment"`
	BookID  int64  `json:"book_id"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Points,
			validation.NotNil.Error("points is required"),
			validation.Min(0).Error("points must be between 0 and 5"),
			validation.Max(5).Error("points must be between 0 and 5"),
		),
		validation.Field(&r.Comment,
			validation.Length(0, 255),
		),
		validation.Field(&r.BookID,
			validation.Required.Error("book id is required"),
		),
	)
}

// UpdateRequest carries the editable fields of an existing vote
type UpdateRequest struct {
	Points  *int   `json:"points"`
	Comment string `json:"comment"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Points,
			validation.NotNil.Error("points is required"),
			validation.Min(0).Error("points must be between 0 and 5"),
			validation.Max(5).Error("points must be between 0 and 5"),
		),
		validation.Field(&r.Comment,
			validation.Length(0, 255),
		),
	)
}

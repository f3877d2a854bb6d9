package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpsertRequest carries the client-writable author fields for create/update
type UpsertRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
}

func (r UpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, 50),
		),
		validation.Field(&r.BirthDate,
			validation.Required.Error("birth date is required"),
			validation.Date(BirthDateFormat).Error("birth date must be in dd-mm-yyyy format").
				Max(time.Now()).RangeError("birth date must not be in the future"),
		),
	)
}

// ParsedBirthDate converts the validated wire value; call after Validate
func (r UpsertRequest) ParsedBirthDate() time.Time {
	date, _ := time.Parse(BirthDateFormat, r.BirthDate)
	return date
}

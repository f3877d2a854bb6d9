package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 255),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("email is not valid"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 72).Error("password must be at least 6 characters"),
		),
	)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// UpdateDataRequest changes the account's identity fields
type UpdateDataRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (r UpdateDataRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 255),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("email is not valid"),
		),
	)
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r UpdatePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword,
			validation.Required.Error("current password is required"),
		),
		validation.Field(&r.NewPassword,
			validation.Required.Error("new password is required"),
			validation.Length(6, 72).Error("password must be at least 6 characters"),
		),
	)
}

// ResetRequest starts the forgotten-password flow
type ResetRequest struct {
	Email string `json:"email"`
}

func (r ResetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("email is not valid"),
		),
	)
}

// NewPasswordRequest completes the forgotten-password flow
type NewPasswordRequest struct {
	Password string `json:"password"`
}

func (r NewPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 72).Error("password must be at least 6 characters"),
		),
	)
}

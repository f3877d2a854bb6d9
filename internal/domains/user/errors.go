package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetCode   = errors.New("reset code is invalid or expired")
	ErrSamePassword       = errors.New("new password matches the old one")
)

package user

import "context"

// Service is the user business-logic boundary. Register, Login and
// ResetPassword return a signed JWT on success.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (string, error)
	Login(ctx context.Context, req LoginRequest) (string, error)
	Me(ctx context.Context, userID int64) (*User, error)
	UpdateData(ctx context.Context, userID int64, req UpdateDataRequest) (*User, error)
	UpdatePassword(ctx context.Context, userID int64, req UpdatePasswordRequest) error
	SendResetLink(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, hashCode, newPassword string) (string, error)
}

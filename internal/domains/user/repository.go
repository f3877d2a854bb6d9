package user

import "context"

// Repository is the user persistence boundary
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateData(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	CreateResetCode(ctx context.Context, code *ResetCode) error
	GetResetCode(ctx context.Context, hashCode string) (*ResetCode, error)
	DeleteResetCode(ctx context.Context, id int64) error
}

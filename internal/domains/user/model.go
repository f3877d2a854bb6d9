package user

import "time"

// User account. Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID        int64
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
}

// ResetCode is a single-use password reset credential. It is deleted on use
// and ignored after ExpiresAt.
type ResetCode struct {
	ID        int64
	UserID    int64
	HashCode  string
	ExpiresAt time.Time
}

// Serialize is the account's own view of itself, the password hash excluded
func (u *User) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"created_at": u.CreatedAt.Format(time.RFC3339),
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-library-api/internal/domains/user"
)

const pgUniqueViolation = "23505"

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresUserRepository{pool: pool}
}

func (r *postgresUserRepository) Create(ctx context.Context, u *user.User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Username, u.Email, u.Password,
	).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *postgresUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.getBy(ctx, "username = $1", username)
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *postgresUserRepository) getBy(ctx context.Context, where string, arg interface{}) (*user.User, error) {
	u := &user.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, email, password, created_at FROM users WHERE `+where,
		arg,
	).Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (r *postgresUserRepository) UpdateData(ctx context.Context, u *user.User) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET username = $2, email = $3 WHERE id = $1`,
		u.ID, u.Username, u.Email,
	)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *postgresUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password = $2 WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// ==================== RESET CODES ====================

func (r *postgresUserRepository) CreateResetCode(ctx context.Context, code *user.ResetCode) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO hash_reset (user_id, hash_code, expires_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		code.UserID, code.HashCode, code.ExpiresAt,
	).Scan(&code.ID)

	if err != nil {
		return fmt.Errorf("failed to create reset code: %w", err)
	}

	return nil
}

func (r *postgresUserRepository) GetResetCode(ctx context.Context, hashCode string) (*user.ResetCode, error) {
	code := &user.ResetCode{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, hash_code, expires_at
		 FROM hash_reset
		 WHERE hash_code = $1 AND expires_at > NOW()`,
		hashCode,
	).Scan(&code.ID, &code.UserID, &code.HashCode, &code.ExpiresAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrInvalidResetCode
		}
		return nil, fmt.Errorf("failed to get reset code: %w", err)
	}

	return code, nil
}

func (r *postgresUserRepository) DeleteResetCode(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM hash_reset WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete reset code: %w", err)
	}
	return nil
}

// mapUniqueViolation picks the taken-field error from the violated constraint
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return user.ErrEmailTaken
	}
	return user.ErrUsernameTaken
}

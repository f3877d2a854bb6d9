package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryer is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx.
// Repository methods that must be able to run inside a caller's transaction
// (vote mutations + stats recomputation commit or roll back together) accept
// a Queryer instead of holding the pool themselves.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

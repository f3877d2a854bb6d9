package book

import (
	"context"

	"book-library-api/internal/shared/query"
	"book-library-api/pkg/database"
)

// Repository is the book persistence boundary. Mutations accept a
// database.Queryer so the caller's transaction also covers the author stats
// recomputation they trigger.
type Repository interface {
	List(ctx context.Context, p query.Params) ([]*Book, int, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	Create(ctx context.Context, q database.Queryer, b *Book) error
	Update(ctx context.Context, q database.Queryer, b *Book) (oldAuthorID int64, err error)
	Delete(ctx context.Context, q database.Queryer, id int64) (authorID int64, err error)
}

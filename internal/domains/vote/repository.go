package vote

import (
	"context"

	"book-library-api/internal/shared/query"
	"book-library-api/pkg/database"
)

// Repository is the vote persistence boundary. Mutations accept a
// database.Queryer so the caller's transaction also covers the stats
// recomputation they trigger.
type Repository interface {
	List(ctx context.Context, p query.Params) ([]*Vote, int, error)
	GetByID(ctx context.Context, q database.Queryer, id int64) (*Vote, error)
	GetByUserAndBook(ctx context.Context, q database.Queryer, userID, bookID int64) (*Vote, error)
	Create(ctx context.Context, q database.Queryer, v *Vote) error
	Update(ctx context.Context, q database.Queryer, v *Vote) error
	Delete(ctx context.Context, q database.Queryer, id int64) (bookID int64, err error)
}

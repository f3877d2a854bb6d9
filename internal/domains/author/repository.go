package author

import (
	"context"

	"book-library-api/internal/shared/query"
)

// BookSummary is the shape of an author's books embedded in the detail
// response (the owning author is omitted).
type BookSummary struct {
	ID               int64
	Title            string
	ISBN             int64
	NumberOfPages    int
	Description      string
	NumberOfVotes    int64
	ScoreSum         int64
	AverageBookScore float64
}

// Repository is the author persistence boundary
type Repository interface {
	List(ctx context.Context, p query.Params) ([]*Author, int, error)
	GetByID(ctx context.Context, id int64) (*Author, error)
	ListBooks(ctx context.Context, authorID int64) ([]BookSummary, error)
	Create(ctx context.Context, a *Author) error
	Update(ctx context.Context, a *Author) error
	Delete(ctx context.Context, id int64) error
}

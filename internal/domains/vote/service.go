package vote

import (
	"context"
	"net/url"

	"book-library-api/internal/shared/query"
)

// Service is the vote business-logic boundary. Mutations are scoped to the
// authenticated user.
type Service interface {
	List(ctx context.Context, values url.Values, path string) ([]map[string]interface{}, query.Pagination, error)
	ListForBook(ctx context.Context, bookID int64, values url.Values, path string) ([]map[string]interface{}, query.Pagination, error)
	Create(ctx context.Context, userID int64, req CreateRequest) (*Vote, error)
	Update(ctx context.Context, userID, voteID int64, req UpdateRequest) (*Vote, error)
	Delete(ctx context.Context, userID, voteID int64) error
}

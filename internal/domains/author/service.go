package author

import (
	"context"
	"net/url"

	"book-library-api/internal/shared/query"
)

// Service is the author business-logic boundary
type Service interface {
	List(ctx context.Context, values url.Values, path string) ([]map[string]interface{}, query.Pagination, error)
	Get(ctx context.Context, id int64) (*Author, []BookSummary, error)
	Create(ctx context.Context, req UpsertRequest) (*Author, error)
	Update(ctx context.Context, id int64, req UpsertRequest) (*Author, error)
	Delete(ctx context.Context, id int64) error
}

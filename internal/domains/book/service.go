package book

import (
	"context"
	"net/url"

	"book-library-api/internal/shared/query"
)

// Service is the book business-logic boundary
type Service interface {
	List(ctx context.Context, values url.Values, path string) ([]map[string]interface{}, query.Pagination, error)
	ListByAuthor(ctx context.Context, authorID int64, values url.Values, path string) ([]map[string]interface{}, query.Pagination, error)
	Get(ctx context.Context, id int64) (*Book, error)
	Create(ctx context.Context, req UpsertRequest) (*Book, error)
	Update(ctx context.Context, id int64, req UpsertRequest) (*Book, error)
	Delete(ctx context.Context, id int64) error
}

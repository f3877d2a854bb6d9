package service

import (
	"context"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-library-api/internal/domains/book"
	"book-library-api/internal/domains/stats"
	"book-library-api/internal/shared/query"
	"book-library-api/pkg/cache"
	"book-library-api/pkg/database"
	"book-library-api/pkg/logger"
)

const bookCacheTTL = 10 * time.Minute

type bookService struct {
	repo    book.Repository
	stats   stats.Service
	pool    *pgxpool.Pool
	cache   cache.Cache
	perPage int
}

func NewBookService(repo book.Repository, statsService stats.Service, pool *pgxpool.Pool, c cache.Cache, perPage int) book.Service {
	return &bookService{
		repo:    repo,
		stats:   statsService,
		pool:    pool,
		cache:   c,
		perPage: perPage,
	}
}

func (s *bookService) List(ctx context.Context, values url.Values, path string) ([]map[string]interface{}, query.Pagination, error) {
	params := query.Parse(values, book.Descriptor(), s.perPage)
	return s.list(ctx, params, path)
}

// ListByAuthor lists one author's books through the same query pipeline,
// with the author constraint pinned server-side.
func (s *bookService) ListByAuthor(ctx context.Context, authorID int64, values url.Values, path string) ([]map[string]interface{}, query.Pagination, error) {
	params := query.Parse(values, book.Descriptor(), s.perPage)
	params.Filters = append(params.Filters, query.Filter{
		Column: "author_id",
		Op:     query.OpEq,
		Value:  authorID,
	})
	return s.list(ctx, params, path)
}

func (s *bookService) list(ctx context.Context, params query.Params, path string) ([]map[string]interface{}, query.Pagination, error) {
	books, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	records := make([]map[string]interface{}, 0, len(books))
	for _, b := range books {
		records = append(records, b.Project(params.Fields))
	}

	return records, query.Paginate(total, params, path), nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*book.Book, error) {
	key := cache.BookKey(id)

	var cached book.Book
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("book cache read failed", map[string]interface{}{
			"book_id": id, "error": err.Error(),
		})
	}
	if found {
		return &cached, nil
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, b, bookCacheTTL); err != nil {
		logger.Warn("book cache write failed", map[string]interface{}{
			"book_id": id, "error": err.Error(),
		})
	}

	return b, nil
}

// Create inserts the book and recomputes the owning author's average in the
// same transaction: the new zero-vote book pulls the mean down immediately.
func (s *bookService) Create(ctx context.Context, req book.UpsertRequest) (*book.Book, error) {
	b := &book.Book{
		Title:         req.Title,
		ISBN:          req.ISBN,
		NumberOfPages: req.NumberOfPages,
		Description:   req.Description,
		AuthorID:      req.AuthorID,
	}

	err := database.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		if err := s.repo.Create(ctx, tx, b); err != nil {
			return err
		}
		_, err := s.stats.RecomputeAuthorStats(ctx, tx, b.AuthorID, true)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("book created", map[string]interface{}{
		"book_id": b.ID, "author_id": b.AuthorID,
	})

	return s.repo.GetByID(ctx, b.ID)
}

func (s *bookService) Update(ctx context.Context, id int64, req book.UpsertRequest) (*book.Book, error) {
	b := &book.Book{
		ID:            id,
		Title:         req.Title,
		ISBN:          req.ISBN,
		NumberOfPages: req.NumberOfPages,
		Description:   req.Description,
		AuthorID:      req.AuthorID,
	}

	err := database.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		oldAuthorID, err := s.repo.Update(ctx, tx, b)
		if err != nil {
			return err
		}

		// moving a book between authors shifts both averages
		if oldAuthorID != b.AuthorID {
			if _, err := s.stats.RecomputeAuthorStats(ctx, tx, oldAuthorID, true); err != nil {
				return err
			}
			if _, err := s.stats.RecomputeAuthorStats(ctx, tx, b.AuthorID, true); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	err := database.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		authorID, err := s.repo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		_, err = s.stats.RecomputeAuthorStats(ctx, tx, authorID, true)
		return err
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, id)

	logger.Info("book deleted", map[string]interface{}{
		"book_id": id,
	})

	return nil
}

func (s *bookService) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, cache.BookKey(id)); err != nil {
		logger.Warn("book cache invalidation failed", map[string]interface{}{
			"book_id": id, "error": err.Error(),
		})
	}
}

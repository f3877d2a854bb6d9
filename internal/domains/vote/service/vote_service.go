package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-library-api/internal/domains/stats"
	"book-library-api/internal/domains/vote"
	"book-library-api/internal/shared/query"
	"book-library-api/pkg/cache"
	"book-library-api/pkg/database"
	"book-library-api/pkg/logger"
)

type voteService struct {
	repo    vote.Repository
	stats   stats.Service
	pool    *pgxpool.Pool
	cache   cache.Cache
	perPage int
}

func NewVoteService(repo vote.Repository, statsService stats.Service, pool *pgxpool.Pool, c cache.Cache, perPage int) vote.Service {
	return &voteService{
		repo:    repo,
		stats:   statsService,
		pool:    pool,
		cache:   c,
		perPage: perPage,
	}
}

func (s *voteService) List(ctx context.Context, values url.Values, path string) ([]map[string]interface{}, query.Pagination, error) {
	params := query.Parse(values, vote.Descriptor(), s.perPage)
	return s.list(ctx, params, path)
}

// ListForBook lists one book's votes through the same query pipeline, with
// the book constraint pinned server-side.
func (s *voteService) ListForBook(ctx context.Context, bookID int64, values url.Values, path string) ([]map[string]interface{}, query.Pagination, error) {
	params := query.Parse(values, vote.Descriptor(), s.perPage)
	params.Filters = append(params.Filters, query.Filter{
		Column: "book_id",
		Op:     query.OpEq,
		Value:  bookID,
	})
	return s.list(ctx, params, path)
}

func (s *voteService) list(ctx context.Context, params query.Params, path string) ([]map[string]interface{}, query.Pagination, error) {
	votes, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	records := make([]map[string]interface{}, 0, len(votes))
	for _, v := range votes {
		records = append(records, v.Project(params.Fields))
	}

	return records, query.Paginate(total, params, path), nil
}

// Create inserts the vote and recomputes the book's and author's aggregates
// in one transaction. The duplicate pre-check gives the common conflict a
// clean path; the unique constraint still closes the race.
func (s *voteService) Create(ctx context.Context, userID int64, req vote.CreateRequest) (*vote.Vote, error) {
	v := &vote.Vote{
		Points:  *req.Points,
		Comment: req.Comment,
		BookID:  req.BookID,
		UserID:  userID,
	}

	err := database.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		_, err := s.repo.GetByUserAndBook(ctx, tx, userID, req.BookID)
		if err == nil {
			return vote.ErrAlreadyVoted
		}
		if !errors.Is(err, vote.ErrVoteNotFound) {
			return err
		}

		if err := s.repo.Create(ctx, tx, v); err != nil {
			return err
		}
		return s.recomputeBook(ctx, tx, v.BookID)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateBook(ctx, v.BookID)

	logger.Info("vote created", map[string]interface{}{
		"vote_id": v.ID, "book_id": v.BookID, "user_id": userID,
	})

	return v, nil
}

func (s *voteService) Update(ctx context.Context, userID, voteID int64, req vote.UpdateRequest) (*vote.Vote, error) {
	var updated *vote.Vote

	err := database.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		v, err := s.repo.GetByID(ctx, tx, voteID)
		if err != nil {
			return err
		}
		if v.UserID != userID {
			return vote.ErrNotVoteOwner
		}

		v.Points = *req.Points
		v.Comment = req.Comment
		if err := s.repo.Update(ctx, tx, v); err != nil {
			return err
		}

		updated = v
		return s.recomputeBook(ctx, tx, v.BookID)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateBook(ctx, updated.BookID)

	return updated, nil
}

func (s *voteService) Delete(ctx context.Context, userID, voteID int64) error {
	var bookID int64

	err := database.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		v, err := s.repo.GetByID(ctx, tx, voteID)
		if err != nil {
			return err
		}
		if v.UserID != userID {
			return vote.ErrNotVoteOwner
		}

		if bookID, err = s.repo.Delete(ctx, tx, voteID); err != nil {
			return err
		}
		return s.recomputeBook(ctx, tx, bookID)
	})
	if err != nil {
		return err
	}

	s.invalidateBook(ctx, bookID)

	logger.Info("vote deleted", map[string]interface{}{
		"vote_id": voteID, "book_id": bookID, "user_id": userID,
	})

	return nil
}

// recomputeBook translates the stats engine's not-found into this domain's
func (s *voteService) recomputeBook(ctx context.Context, q database.Queryer, bookID int64) error {
	if err := s.stats.RecomputeBookStats(ctx, q, bookID); err != nil {
		if errors.Is(err, stats.ErrBookNotFound) {
			return vote.ErrBookNotFound
		}
		return err
	}
	return nil
}

func (s *voteService) invalidateBook(ctx context.Context, bookID int64) {
	if err := s.cache.Delete(ctx, cache.BookKey(bookID)); err != nil {
		logger.Warn("book cache invalidation failed", map[string]interface{}{
			"book_id": bookID, "error": err.Error(),
		})
	}
}

// Package stats owns the aggregate rating fields. Book score_sum,
// number_of_votes, average_book_score and author author_average_score are
// never written anywhere else; every vote mutation and every bulk load ends
// with a recomputation here.
//
// The strategy is recompute-from-scratch: reload the raw votes and derive the
// aggregates again. Vote volume per book is small, so correctness wins over
// incremental bookkeeping. Division is plain float64 division.
package stats

import (
	"context"
	"errors"
	"fmt"

	"book-library-api/pkg/database"
)

var (
	ErrBookNotFound   = errors.New("book not found during stats recomputation")
	ErrAuthorNotFound = errors.New("author not found during stats recomputation")
)

// Service recomputes derived rating statistics.
// Methods take a database.Queryer so callers can pass their open transaction:
// the triggering mutation and both stats updates commit or roll back together.
type Service interface {
	RecomputeBookStats(ctx context.Context, q database.Queryer, bookIDs ...int64) error
	RecomputeAuthorStats(ctx context.Context, q database.Queryer, authorID int64, persist bool) (float64, error)
}

type statsService struct{}

func NewService() Service {
	return &statsService{}
}

// RecomputeBookStats reloads all votes of each book, rewrites the book's
// aggregates and then recomputes the owning author's average.
func (s *statsService) RecomputeBookStats(ctx context.Context, q database.Queryer, bookIDs ...int64) error {
	for _, bookID := range bookIDs {
		var sum, count int64
		err := q.QueryRow(ctx,
			`SELECT COALESCE(SUM(points), 0), COUNT(*) FROM votes WHERE book_id = $1`,
			bookID,
		).Scan(&sum, &count)
		if err != nil {
			return fmt.Errorf("failed to load votes for book %d: %w", bookID, err)
		}

		var authorID int64
		err = q.QueryRow(ctx,
			`UPDATE books
			 SET score_sum = $2, number_of_votes = $3, average_book_score = $4
			 WHERE id = $1
			 RETURNING author_id`,
			bookID, sum, count, BookAverage(sum, count),
		).Scan(&authorID)
		if err != nil {
			if isNoRows(err) {
				return fmt.Errorf("book %d: %w", bookID, ErrBookNotFound)
			}
			return fmt.Errorf("failed to update stats for book %d: %w", bookID, err)
		}

		if _, err := s.RecomputeAuthorStats(ctx, q, authorID, true); err != nil {
			return err
		}
	}

	return nil
}

// RecomputeAuthorStats reloads the author's books and stores the mean of
// their average scores. Books without votes contribute 0 to the mean.
func (s *statsService) RecomputeAuthorStats(ctx context.Context, q database.Queryer, authorID int64, persist bool) (float64, error) {
	rows, err := q.Query(ctx,
		`SELECT COALESCE(average_book_score, 0) FROM books WHERE author_id = $1`,
		authorID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to load books for author %d: %w", authorID, err)
	}
	defer rows.Close()

	var scores []float64
	for rows.Next() {
		var score float64
		if err := rows.Scan(&score); err != nil {
			return 0, fmt.Errorf("failed to scan book score: %w", err)
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to read book scores: %w", err)
	}

	average := AuthorAverage(scores)

	if persist {
		tag, err := q.Exec(ctx,
			`UPDATE authors SET author_average_score = $2 WHERE id = $1`,
			authorID, average,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to update stats for author %d: %w", authorID, err)
		}
		if tag.RowsAffected() == 0 {
			return 0, fmt.Errorf("author %d: %w", authorID, ErrAuthorNotFound)
		}
	}

	return average, nil
}

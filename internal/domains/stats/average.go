package stats

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// BookAverage derives a book's average score from its vote totals.
// A book without votes scores 0, not NULL and not a division error.
func BookAverage(sum, count int64) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// AuthorAverage is the arithmetic mean of the author's book averages.
// An author without books scores 0.
func AuthorAverage(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

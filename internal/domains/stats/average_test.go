package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookAverage(t *testing.T) {
	assert.Equal(t, 0.0, BookAverage(0, 0), "no votes means zero, not NaN")
	assert.Equal(t, 4.0, BookAverage(8, 2))
	assert.Equal(t, 4.5, BookAverage(9, 2), "plain float division, no rounding")
	assert.Equal(t, 0.0, BookAverage(0, 3), "all-zero votes average to zero")
	assert.InDelta(t, 3.6666666, BookAverage(11, 3), 1e-6)
}

func TestAuthorAverage(t *testing.T) {
	assert.Equal(t, 0.0, AuthorAverage(nil), "no books means zero")
	assert.Equal(t, 4.0, AuthorAverage([]float64{4}))
	assert.Equal(t, 3.0, AuthorAverage([]float64{4, 2}))
}

func TestAuthorAverageCountsZeroScoreBooks(t *testing.T) {
	// a book nobody has voted on still dilutes the author's mean
	assert.Equal(t, 2.5, AuthorAverage([]float64{5, 0}))
}

package vote

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestCreateRequestValid(t *testing.T) {
	req := CreateRequest{Points: intPtr(4), Comment: "good", BookID: 1}
	assert.NoError(t, req.Validate())
}

func TestCreateRequestZeroPointsIsLegal(t *testing.T) {
	// 0 is the bottom of the scale, not a missing value
	req := CreateRequest{Points: intPtr(0), BookID: 1}
	assert.NoError(t, req.Validate())
}

func TestCreateRequestRequiresPoints(t *testing.T) {
	err := CreateRequest{BookID: 1}.Validate()
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "points")
}

func TestCreateRequestRejectsOutOfRangePoints(t *testing.T) {
	for _, points := range []int{-1, 6} {
		err := CreateRequest{Points: intPtr(points), BookID: 1}.Validate()
		require.Error(t, err, "points %d must be rejected", points)

		verrs := err.(validation.Errors)
		assert.Contains(t, verrs, "points")
	}
}

func TestCreateRequestRequiresBook(t *testing.T) {
	err := CreateRequest{Points: intPtr(3)}.Validate()
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "book_id")
}

func TestCreateRequestRejectsLongComment(t *testing.T) {
	req := CreateRequest{Points: intPtr(3), BookID: 1, Comment: strings.Repeat("x", 256)}

	err := req.Validate()
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "comment")
}

func TestUpdateRequestValidation(t *testing.T) {
	assert.NoError(t, UpdateRequest{Points: intPtr(5)}.Validate())

	err := UpdateRequest{}.Validate()
	require.Error(t, err)
	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "points")
}

package author

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertRequestValid(t *testing.T) {
	req := UpsertRequest{FirstName: "Ursula", LastName: "Le Guin", BirthDate: "21-10-1929"}

	require.NoError(t, req.Validate())
	assert.Equal(t, time.Date(1929, 10, 21, 0, 0, 0, 0, time.UTC), req.ParsedBirthDate())
}

func TestUpsertRequestMissingNames(t *testing.T) {
	err := UpsertRequest{BirthDate: "21-10-1929"}.Validate()
	require.Error(t, err)

	verrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, verrs, "first_name")
	assert.Contains(t, verrs, "last_name")
	assert.NotContains(t, verrs, "birth_date")
}

func TestUpsertRequestRejectsWrongDateFormat(t *testing.T) {
	// ISO order is not the wire format
	err := UpsertRequest{FirstName: "A", LastName: "B", BirthDate: "1929-10-21"}.Validate()
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "birth_date")
}

func TestUpsertRequestRejectsFutureBirthDate(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0).Format(BirthDateFormat)

	err := UpsertRequest{FirstName: "A", LastName: "B", BirthDate: future}.Validate()
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "birth_date")
}

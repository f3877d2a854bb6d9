package book

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUpsert() UpsertRequest {
	return UpsertRequest{
		Title:         "Solaris",
		ISBN:          9780156027601,
		NumberOfPages: 204,
		Description:   "A sentient ocean.",
		AuthorID:      1,
	}
}

func TestUpsertRequestValid(t *testing.T) {
	assert.NoError(t, validUpsert().Validate())
}

func TestUpsertRequestRejectsShortISBN(t *testing.T) {
	req := validUpsert()
	req.ISBN = 978015602760 // 12 digits

	err := req.Validate()
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "isbn")
}

func TestUpsertRequestRejectsLongISBN(t *testing.T) {
	req := validUpsert()
	req.ISBN = 97801560276011 // 14 digits

	err := req.Validate()
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "isbn")
}

func TestUpsertRequestRequiresTitleAndAuthor(t *testing.T) {
	req := validUpsert()
	req.Title = ""
	req.AuthorID = 0

	err := req.Validate()
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "title")
	assert.Contains(t, verrs, "author_id")
}

func TestUpsertRequestRejectsZeroPages(t *testing.T) {
	req := validUpsert()
	req.NumberOfPages = 0

	err := req.Validate()
	require.Error(t, err)

	verrs := err.(validation.Errors)
	assert.Contains(t, verrs, "number_of_pages")
}

func TestProjectFieldSelection(t *testing.T) {
	b := &Book{ID: 7, Title: "Solaris", AuthorFirstName: "Stanislaw", AuthorLastName: "Lem"}

	full := b.Project(nil)
	assert.Contains(t, full, "author", "full projection embeds the author block")
	assert.Equal(t, map[string]interface{}{
		"first_name": "Stanislaw", "last_name": "Lem",
	}, full["author"])

	partial := b.Project([]string{"id", "title"})
	assert.Equal(t, map[string]interface{}{"id": int64(7), "title": "Solaris"}, partial)
}

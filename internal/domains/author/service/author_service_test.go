package service

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-library-api/internal/domains/author"
	"book-library-api/internal/shared/query"
)

type stubAuthorRepository struct {
	authors []*author.Author
	total   int
	lastP   query.Params
}

func (r *stubAuthorRepository) List(_ context.Context, p query.Params) ([]*author.Author, int, error) {
	r.lastP = p
	return r.authors, r.total, nil
}

func (r *stubAuthorRepository) GetByID(_ context.Context, id int64) (*author.Author, error) {
	for _, a := range r.authors {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (r *stubAuthorRepository) ListBooks(context.Context, int64) ([]author.BookSummary, error) {
	return nil, nil
}

func (r *stubAuthorRepository) Create(_ context.Context, a *author.Author) error {
	a.ID = int64(len(r.authors) + 1)
	r.authors = append(r.authors, a)
	return nil
}

func (r *stubAuthorRepository) Update(_ context.Context, a *author.Author) error {
	for _, existing := range r.authors {
		if existing.ID == a.ID {
			existing.FirstName = a.FirstName
			existing.LastName = a.LastName
			existing.BirthDate = a.BirthDate
			return nil
		}
	}
	return author.ErrAuthorNotFound
}

func (r *stubAuthorRepository) Delete(context.Context, int64) error {
	return nil
}

func TestListProjectsRequestedFields(t *testing.T) {
	repo := &stubAuthorRepository{
		authors: []*author.Author{
			{ID: 1, FirstName: "Ursula", LastName: "Le Guin", AuthorAverageScore: 4.5},
		},
		total: 1,
	}
	svc := NewAuthorService(repo, 5)

	values := url.Values{"fields": {"id,first_name"}}
	records, _, err := svc.List(context.Background(), values, "/api/v1/authors")
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, map[string]interface{}{
		"id":         int64(1),
		"first_name": "Ursula",
	}, records[0])
}

func TestListUsesConfiguredPageSize(t *testing.T) {
	repo := &stubAuthorRepository{}
	svc := NewAuthorService(repo, 7)

	_, _, err := svc.List(context.Background(), url.Values{}, "/api/v1/authors")
	require.NoError(t, err)

	assert.Equal(t, 7, repo.lastP.Limit)
	assert.Equal(t, 1, repo.lastP.Page)
}

func TestListBuildsPaginationFromTotal(t *testing.T) {
	repo := &stubAuthorRepository{total: 12}
	svc := NewAuthorService(repo, 5)

	_, pagination, err := svc.List(context.Background(), url.Values{}, "/api/v1/authors")
	require.NoError(t, err)

	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, 12, pagination.TotalRecords)
	assert.Equal(t, "/api/v1/authors?page=2", pagination.NextPage)
}

func TestCreateParsesBirthDate(t *testing.T) {
	repo := &stubAuthorRepository{}
	svc := NewAuthorService(repo, 5)

	a, err := svc.Create(context.Background(), author.UpsertRequest{
		FirstName: "Octavia",
		LastName:  "Butler",
		BirthDate: "22-06-1947",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, time.Date(1947, 6, 22, 0, 0, 0, 0, time.UTC), a.BirthDate)
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-library-api/internal/domains/author"
	"book-library-api/internal/shared/query"
)

type stubAuthorService struct {
	records    []map[string]interface{}
	pagination query.Pagination
	listErr    error

	got      *author.Author
	gotBooks []author.BookSummary
	getErr   error

	created   *author.Author
	createErr error
}

func (s *stubAuthorService) List(context.Context, url.Values, string) ([]map[string]interface{}, query.Pagination, error) {
	return s.records, s.pagination, s.listErr
}

func (s *stubAuthorService) Get(context.Context, int64) (*author.Author, []author.BookSummary, error) {
	return s.got, s.gotBooks, s.getErr
}

func (s *stubAuthorService) Create(context.Context, author.UpsertRequest) (*author.Author, error) {
	return s.created, s.createErr
}

func (s *stubAuthorService) Update(context.Context, int64, author.UpsertRequest) (*author.Author, error) {
	return nil, author.ErrAuthorNotFound
}

func (s *stubAuthorService) Delete(context.Context, int64) error {
	return nil
}

func setupAuthorRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc)

	router := gin.New()
	router.GET("/authors", h.List)
	router.GET("/authors/:id", h.Get)
	router.POST("/authors", h.Create)
	router.PUT("/authors/:id", h.Update)
	return router
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListEnvelope(t *testing.T) {
	svc := &stubAuthorService{
		records: []map[string]interface{}{
			{"id": int64(1), "first_name": "Ursula"},
			{"id": int64(2), "first_name": "Stanislaw"},
		},
		pagination: query.Pagination{TotalPages: 1, TotalRecords: 2, CurrentPage: "/authors?page=1"},
	}
	router := setupAuthorRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)

	assert.Len(t, body["data"], 2)
	assert.Equal(t, float64(2), body["numbers_of_records"], "count of records in this page")

	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["total_pages"])
	assert.Equal(t, float64(2), pagination["total_records"])
	assert.NotContains(t, pagination, "next_page", "omitted on the only page")
}

func TestGetUnknownAuthor(t *testing.T) {
	router := setupAuthorRouter(&stubAuthorService{getErr: author.ErrAuthorNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "author not found", body["message"])
}

func TestGetInvalidIDIsBadRequest(t *testing.T) {
	router := setupAuthorRouter(&stubAuthorService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAuthorEmbedsBooks(t *testing.T) {
	svc := &stubAuthorService{
		got: &author.Author{ID: 1, FirstName: "Stanislaw", LastName: "Lem"},
		gotBooks: []author.BookSummary{
			{ID: 3, Title: "Solaris", AverageBookScore: 3.5},
		},
	}
	router := setupAuthorRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/authors/1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	data := body["data"].(map[string]interface{})

	books := data["books"].([]interface{})
	require.Len(t, books, 1)
	assert.Equal(t, "Solaris", books[0].(map[string]interface{})["title"])
}

func TestCreateValidationFailure(t *testing.T) {
	router := setupAuthorRouter(&stubAuthorService{})

	req := httptest.NewRequest(http.MethodPost, "/authors",
		strings.NewReader(`{"first_name": "", "last_name": "Lem", "birth_date": "12-09-1921"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)

	message, ok := body["message"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, message, "first_name")
}

func TestCreateSuccess(t *testing.T) {
	created := &author.Author{ID: 5, FirstName: "Italo", LastName: "Calvino"}
	router := setupAuthorRouter(&stubAuthorService{created: created})

	req := httptest.NewRequest(http.MethodPost, "/authors",
		strings.NewReader(`{"first_name": "Italo", "last_name": "Calvino", "birth_date": "15-10-1923"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["id"])
}

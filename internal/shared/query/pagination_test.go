package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateMiddleOfCatalog(t *testing.T) {
	raw := url.Values{"page": {"1"}}
	p := Params{Page: 1, Limit: 5, Raw: raw}

	pg := Paginate(10, p, "/api/v1/books")

	assert.Equal(t, 2, pg.TotalPages)
	assert.Equal(t, 10, pg.TotalRecords)
	assert.Equal(t, "/api/v1/books?page=1", pg.CurrentPage)
	assert.Equal(t, "/api/v1/books?page=2", pg.NextPage)
	assert.Empty(t, pg.PreviousPage, "first page has no previous link")
}

func TestPaginateLastPage(t *testing.T) {
	p := Params{Page: 2, Limit: 5, Raw: url.Values{"page": {"2"}}}

	pg := Paginate(10, p, "/api/v1/books")

	assert.Equal(t, "/api/v1/books?page=1", pg.PreviousPage)
	assert.Empty(t, pg.NextPage, "last page has no next link")
}

func TestPaginateEmptyCatalog(t *testing.T) {
	p := Params{Page: 1, Limit: 5, Raw: url.Values{}}

	pg := Paginate(0, p, "/api/v1/books")

	assert.Equal(t, 0, pg.TotalPages)
	assert.Equal(t, 0, pg.TotalRecords)
	assert.Equal(t, "/api/v1/books?page=1", pg.CurrentPage)
	assert.Empty(t, pg.NextPage)
	assert.Empty(t, pg.PreviousPage)
}

func TestPaginateRoundsTotalPagesUp(t *testing.T) {
	p := Params{Page: 1, Limit: 5, Raw: url.Values{}}

	pg := Paginate(11, p, "/api/v1/books")

	assert.Equal(t, 3, pg.TotalPages)
}

func TestPaginateLinksPreserveOtherParameters(t *testing.T) {
	raw := url.Values{
		"page":      {"2"},
		"limit":     {"5"},
		"sort":      {"-size"},
		"size[gte]": {"100"},
	}
	p := Params{Page: 2, Limit: 5, Raw: raw}

	pg := Paginate(20, p, "/api/v1/books")

	// url.Values.Encode sorts keys, so the links are deterministic
	assert.Equal(t, "/api/v1/books?limit=5&page=3&size%5Bgte%5D=100&sort=-size", pg.NextPage)
	assert.Equal(t, "/api/v1/books?limit=5&page=1&size%5Bgte%5D=100&sort=-size", pg.PreviousPage)
}

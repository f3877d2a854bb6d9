package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDescriptor() Descriptor {
	return Descriptor{
		Table:   "things",
		Columns: []string{"id", "name", "size"},
		Coerce: func(column, raw string) (interface{}, bool) {
			if column == "id" || column == "size" {
				return CoerceInt(raw)
			}
			return raw, true
		},
	}
}

func TestParseDefaults(t *testing.T) {
	p := Parse(url.Values{}, testDescriptor(), 5)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 5, p.Limit)
	assert.Nil(t, p.Fields)
	assert.Empty(t, p.Filters)
	assert.Empty(t, p.Sorts)
}

func TestParseEqualityFilter(t *testing.T) {
	values := url.Values{"name": {"solaris"}}
	p := Parse(values, testDescriptor(), 5)

	require.Len(t, p.Filters, 1)
	assert.Equal(t, Filter{Column: "name", Op: OpEq, Value: "solaris"}, p.Filters[0])
}

func TestParseComparisonFilter(t *testing.T) {
	values := url.Values{"size[gte]": {"100"}}
	p := Parse(values, testDescriptor(), 5)

	require.Len(t, p.Filters, 1)
	assert.Equal(t, Filter{Column: "size", Op: OpGte, Value: int64(100)}, p.Filters[0])
}

func TestParseDropsUnknownColumn(t *testing.T) {
	values := url.Values{"color": {"red"}, "color[gte]": {"red"}}
	p := Parse(values, testDescriptor(), 5)

	assert.Empty(t, p.Filters)
}

func TestParseDropsUnknownOperator(t *testing.T) {
	// column[like] does not match the operator grammar and "size[like]" is
	// not a declared column, so the clause disappears
	values := url.Values{"size[like]": {"100"}}
	p := Parse(values, testDescriptor(), 5)

	assert.Empty(t, p.Filters)
}

func TestParseDropsValueRejectedByCoercion(t *testing.T) {
	values := url.Values{"size[lt]": {"not-a-number"}}
	p := Parse(values, testDescriptor(), 5)

	assert.Empty(t, p.Filters)
}

func TestParseSortDirections(t *testing.T) {
	values := url.Values{"sort": {"-size, name,bogus"}}
	p := Parse(values, testDescriptor(), 5)

	require.Len(t, p.Sorts, 2)
	assert.Equal(t, Sort{Column: "size", Desc: true}, p.Sorts[0])
	assert.Equal(t, Sort{Column: "name", Desc: false}, p.Sorts[1])
}

func TestParseReservedKeysAreNotFilters(t *testing.T) {
	values := url.Values{
		"page":   {"2"},
		"limit":  {"10"},
		"sort":   {"name"},
		"fields": {"id,name"},
	}
	p := Parse(values, testDescriptor(), 5)

	assert.Empty(t, p.Filters)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, []string{"id", "name"}, p.Fields)
}

func TestParseInvalidPageAndLimitFallBack(t *testing.T) {
	values := url.Values{"page": {"zero"}, "limit": {"-3"}}
	p := Parse(values, testDescriptor(), 5)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 5, p.Limit)
}

// Package query implements the request-shaping layer shared by all list
// endpoints: filter clauses, multi-key ordering, field selection and
// pagination windows parsed from raw query parameters.
//
// Malformed input never errors here. Unknown columns, unknown operators and
// values rejected by an entity's coercion hook degrade to "clause ignored",
// so a list endpoint always answers.
package query

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// CoerceFunc is the per-entity validation/coercion hook for filter values.
// It returns the value to bind and whether the clause should be kept.
type CoerceFunc func(column, raw string) (interface{}, bool)

// Descriptor declares the filterable/sortable column set of one entity type.
type Descriptor struct {
	Table   string
	Columns []string
	Coerce  CoerceFunc
}

func (d Descriptor) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Op is a filter comparison operator
type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpGt  Op = "gt"
	OpLte Op = "lte"
	OpLt  Op = "lt"
)

type Filter struct {
	Column string
	Op     Op
	Value  interface{}
}

type Sort struct {
	Column string
	Desc   bool
}

// Params is the parsed form of a list request's query string
type Params struct {
	Filters []Filter
	Sorts   []Sort
	Fields  []string // nil means all declared columns
	Page    int
	Limit   int

	// Raw keeps the original parameters for pagination link building
	Raw url.Values
}

var (
	// column[op], e.g. birth_date[gte]
	filterKeyPattern = regexp.MustCompile(`^([A-Za-z0-9_]+)\[(gte|gt|lte|lt)\]$`)

	reservedKeys = map[string]struct{}{
		"fields": {},
		"sort":   {},
		"page":   {},
		"limit":  {},
	}
)

// Parse turns raw query parameters into Params against an entity descriptor.
// Reserved keys: fields, sort, page, limit. Every other key is a filter
// clause, either a bare column name (equality) or column[gte|gt|lte|lt].
func Parse(values url.Values, desc Descriptor, defaultLimit int) Params {
	p := Params{
		Page:  positiveInt(values.Get("page"), 1),
		Limit: positiveInt(values.Get("limit"), defaultLimit),
		Raw:   values,
	}

	p.Fields = SelectFields(values.Get("fields"), desc.Columns)
	p.Sorts = parseSorts(values.Get("sort"), desc)
	p.Filters = parseFilters(values, desc)

	return p
}

func parseSorts(raw string, desc Descriptor) []Sort {
	if raw == "" {
		return nil
	}

	var sorts []Sort
	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		descending := strings.HasPrefix(key, "-")
		if descending {
			key = key[1:]
		}
		if !desc.HasColumn(key) {
			continue
		}
		sorts = append(sorts, Sort{Column: key, Desc: descending})
	}
	return sorts
}

func parseFilters(values url.Values, desc Descriptor) []Filter {
	var filters []Filter

	for key, vals := range values {
		if _, ok := reservedKeys[key]; ok {
			continue
		}
		if len(vals) == 0 {
			continue
		}
		raw := vals[0]

		column, op := key, OpEq
		if m := filterKeyPattern.FindStringSubmatch(key); m != nil {
			column, op = m[1], Op(m[2])
		}

		if !desc.HasColumn(column) {
			continue
		}

		var value interface{} = raw
		if desc.Coerce != nil {
			coerced, ok := desc.Coerce(column, raw)
			if !ok {
				continue
			}
			value = coerced
		}

		filters = append(filters, Filter{Column: column, Op: op, Value: value})
	}

	return filters
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

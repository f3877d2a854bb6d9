package query

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

const dialectPostgres = "postgres"

// BuildSelect produces the paginated SELECT for a list request.
// cols is the column list the repository scans; the WHERE/ORDER BY come from
// the parsed params, with a stable id tie-break so pages stay disjoint.
func BuildSelect(desc Descriptor, p Params, cols ...interface{}) (string, []interface{}, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(desc.Table).
		Prepared(true)

	if len(cols) > 0 {
		ds = ds.Select(cols...)
	}

	ds = applyFilters(ds, p)

	for _, s := range p.Sorts {
		if s.Desc {
			ds = ds.OrderAppend(goqu.I(s.Column).Desc())
		} else {
			ds = ds.OrderAppend(goqu.I(s.Column).Asc())
		}
	}
	ds = ds.OrderAppend(goqu.I("id").Asc())

	ds = ds.Limit(uint(p.Limit)).Offset(uint((p.Page - 1) * p.Limit))

	sql, args, err := ds.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build select query: %w", err)
	}
	return sql, args, nil
}

// BuildCount produces the COUNT sharing the list request's WHERE clause
func BuildCount(desc Descriptor, p Params) (string, []interface{}, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(desc.Table).
		Prepared(true).
		Select(goqu.COUNT(goqu.Star()))

	ds = applyFilters(ds, p)

	sql, args, err := ds.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build count query: %w", err)
	}
	return sql, args, nil
}

func applyFilters(ds *goqu.SelectDataset, p Params) *goqu.SelectDataset {
	for _, f := range p.Filters {
		col := goqu.C(f.Column)
		switch f.Op {
		case OpGte:
			ds = ds.Where(col.Gte(f.Value))
		case OpGt:
			ds = ds.Where(col.Gt(f.Value))
		case OpLte:
			ds = ds.Where(col.Lte(f.Value))
		case OpLt:
			ds = ds.Where(col.Lt(f.Value))
		default:
			ds = ds.Where(col.Eq(f.Value))
		}
	}
	return ds
}

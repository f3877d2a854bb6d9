package author

import (
	"time"

	"book-library-api/internal/shared/query"
)

// BirthDateFormat is the wire format for author birth dates (dd-mm-yyyy)
const BirthDateFormat = "02-01-2006"

// Author entity. AuthorAverageScore is derived by the stats engine and
// never written by handlers.
type Author struct {
	ID                 int64
	FirstName          string
	LastName           string
	BirthDate          time.Time
	AuthorAverageScore float64
}

// Columns is the declared filterable/sortable/projectable column set
var Columns = []string{
	"id",
	"first_name",
	"last_name",
	"birth_date",
	"author_average_score",
}

// Descriptor wires the author table into the query engine. The coercion
// hook parses birth_date filters; unparseable dates drop the clause.
func Descriptor() query.Descriptor {
	return query.Descriptor{
		Table:   "authors",
		Columns: Columns,
		Coerce: func(column, raw string) (interface{}, bool) {
			switch column {
			case "id":
				return query.CoerceInt(raw)
			case "author_average_score":
				return query.CoerceFloat(raw)
			case "birth_date":
				date, err := time.Parse(BirthDateFormat, raw)
				if err != nil {
					return nil, false
				}
				return date, true
			default:
				return raw, true
			}
		},
	}
}

// Project serializes the author restricted to the requested fields.
// A nil selection includes every declared column.
func (a *Author) Project(fields []string) map[string]interface{} {
	out := make(map[string]interface{})
	if query.Include(fields, "id") {
		out["id"] = a.ID
	}
	if query.Include(fields, "first_name") {
		out["first_name"] = a.FirstName
	}
	if query.Include(fields, "last_name") {
		out["last_name"] = a.LastName
	}
	if query.Include(fields, "birth_date") {
		out["birth_date"] = a.BirthDate.Format(BirthDateFormat)
	}
	if query.Include(fields, "author_average_score") {
		out["author_average_score"] = a.AuthorAverageScore
	}
	return out
}

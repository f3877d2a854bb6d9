package vote

import (
	"book-library-api/internal/shared/query"
)

// Vote is one user's rating of one book. A user votes at most once per book,
// enforced by a unique constraint on (user_id, book_id).
type Vote struct {
	ID      int64
	Points  int
	Comment string
	BookID  int64
	UserID  int64
}

// Columns is the declared filterable/sortable/projectable column set
var Columns = []string{
	"id",
	"points",
	"comment",
	"book_id",
	"user_id",
}

// Descriptor wires the votes table into the query engine
func Descriptor() query.Descriptor {
	return query.Descriptor{
		Table:   "votes",
		Columns: Columns,
		Coerce: func(column, raw string) (interface{}, bool) {
			switch column {
			case "id", "points", "book_id", "user_id":
				return query.CoerceInt(raw)
			default:
				return raw, true
			}
		},
	}
}

// Project serializes the vote restricted to the requested fields
func (v *Vote) Project(fields []string) map[string]interface{} {
	out := make(map[string]interface{})
	if query.Include(fields, "id") {
		out["id"] = v.ID
	}
	if query.Include(fields, "points") {
		out["points"] = v.Points
	}
	if query.Include(fields, "comment") {
		out["comment"] = v.Comment
	}
	if query.Include(fields, "book_id") {
		out["book_id"] = v.BookID
	}
	if query.Include(fields, "user_id") {
		out["user_id"] = v.UserID
	}
	return out
}

package book

import (
	"book-library-api/internal/shared/query"
)

// Book entity. NumberOfVotes, ScoreSum and AverageBookScore are derived by
// the stats engine and never written by handlers.
type Book struct {
	ID               int64
	Title            string
	ISBN             int64
	NumberOfPages    int
	Description      string
	AuthorID         int64
	NumberOfVotes    int64
	ScoreSum         int64
	AverageBookScore float64

	// joined author names for the nested author block in full serializations
	AuthorFirstName string
	AuthorLastName  string
}

// Columns is the declared filterable/sortable/projectable column set
var Columns = []string{
	"id",
	"title",
	"isbn",
	"number_of_pages",
	"description",
	"author_id",
	"number_of_votes",
	"score_sum",
	"average_book_score",
}

// Descriptor wires the books table into the query engine
func Descriptor() query.Descriptor {
	return query.Descriptor{
		Table:   "books",
		Columns: Columns,
		Coerce: func(column, raw string) (interface{}, bool) {
			switch column {
			case "id", "isbn", "number_of_pages", "author_id", "number_of_votes", "score_sum":
				return query.CoerceInt(raw)
			case "average_book_score":
				return query.CoerceFloat(raw)
			default:
				return raw, true
			}
		},
	}
}

// Project serializes the book restricted to the requested fields.
// A nil selection includes every declared column plus the nested author
// name block.
func (b *Book) Project(fields []string) map[string]interface{} {
	out := make(map[string]interface{})
	if query.Include(fields, "id") {
		out["id"] = b.ID
	}
	if query.Include(fields, "title") {
		out["title"] = b.Title
	}
	if query.Include(fields, "isbn") {
		out["isbn"] = b.ISBN
	}
	if query.Include(fields, "number_of_pages") {
		out["number_of_pages"] = b.NumberOfPages
	}
	if query.Include(fields, "description") {
		out["description"] = b.Description
	}
	if query.Include(fields, "author_id") {
		out["author_id"] = b.AuthorID
	}
	if query.Include(fields, "number_of_votes") {
		out["number_of_votes"] = b.NumberOfVotes
	}
	if query.Include(fields, "score_sum") {
		out["score_sum"] = b.ScoreSum
	}
	if query.Include(fields, "average_book_score") {
		out["average_book_score"] = b.AverageBookScore
	}
	if fields == nil {
		out["author"] = map[string]interface{}{
			"first_name": b.AuthorFirstName,
			"last_name":  b.AuthorLastName,
		}
	}
	return out
}

package query

import (
	"net/url"
	"strconv"
)

// Pagination is the metadata block returned with every list response.
// The links are relative URLs that echo all original query parameters
// with only page rewritten.
type Pagination struct {
	TotalPages   int    `json:"total_pages"`
	TotalRecords int    `json:"total_records"`
	CurrentPage  string `json:"current_page"`
	NextPage     string `json:"next_page,omitempty"`
	PreviousPage string `json:"previous_page,omitempty"`
}

// Paginate computes pagination metadata for a list request.
// total is the filtered record count, path the request path without query.
func Paginate(total int, p Params, path string) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}

	pg := Pagination{
		TotalPages:   totalPages,
		TotalRecords: total,
		CurrentPage:  pageURL(path, p.Raw, p.Page),
	}

	if p.Page < totalPages {
		pg.NextPage = pageURL(path, p.Raw, p.Page+1)
	}
	if p.Page > 1 && total > 0 {
		pg.PreviousPage = pageURL(path, p.Raw, p.Page-1)
	}

	return pg
}

func pageURL(path string, raw url.Values, page int) string {
	params := url.Values{}
	for key, vals := range raw {
		if key == "page" {
			continue
		}
		params[key] = vals
	}
	params.Set("page", strconv.Itoa(page))

	return path + "?" + params.Encode()
}

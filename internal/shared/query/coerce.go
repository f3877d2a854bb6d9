package query

import "strconv"

// CoerceInt parses a filter value for an integer column, rejecting the
// clause when the value is not a valid integer.
func CoerceInt(raw string) (interface{}, bool) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return n, true
}

// CoerceFloat parses a filter value for a numeric column
func CoerceFloat(raw string) (interface{}, bool) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}

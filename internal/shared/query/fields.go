package query

import "strings"

// SelectFields resolves the fields parameter against an entity's declared
// column set. Empty input means "all fields" and yields nil; requested names
// outside the declared set are dropped silently.
func SelectFields(raw string, declared []string) []string {
	if raw == "" {
		return nil
	}

	// non-nil even when every name is dropped: an all-invalid selection
	// serializes empty records rather than falling back to all fields
	fields := make([]string, 0)
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		for _, col := range declared {
			if name == col {
				fields = append(fields, name)
				break
			}
		}
	}
	return fields
}

// Include reports whether a column belongs in serialized output for the
// given selection. A nil selection includes everything.
func Include(fields []string, column string) bool {
	if fields == nil {
		return true
	}
	for _, f := range fields {
		if f == column {
			return true
		}
	}
	return false
}

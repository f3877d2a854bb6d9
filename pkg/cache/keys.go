package cache

import "fmt"

// BookKey is the cache key for one book's detail record. Vote mutations
// invalidate it because they rewrite the book's aggregates.
func BookKey(bookID int64) string {
	return fmt.Sprintf("book:%d", bookID)
}

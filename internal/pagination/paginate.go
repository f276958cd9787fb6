// Package pagination slices ordered collections into fixed size pages.
package pagination

import (
	"net/url"
	"strconv"
)

// DefaultPageSize is used when callers pass a non-positive page size.
const DefaultPageSize = 10

// Paginate returns the 1-based page of items. A page past the end yields an
// empty, non-nil slice. The input is never modified.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// PageFromQuery reads the page query parameter, falling back to 1 when it is
// absent, not a number or below 1.
func PageFromQuery(values url.Values) int {
	raw := values.Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

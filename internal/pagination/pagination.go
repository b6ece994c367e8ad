// Package pagination holds the pure page math shared by catalog views.
// Pages are 1-based and always partition the input without overlap or gaps.
package pagination

// Count returns the number of pages needed for total items. An empty list
// still has one (empty) page.
func Count(total, size int) int {
	if size <= 0 {
		return 1
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp forces page into [1, pageCount].
func Clamp(page, pageCount int) int {
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}

// Slice returns the items visible on page. The page is expected to be
// clamped already; out-of-range pages yield an empty slice rather than a
// panic.
func Slice[T any](items []T, page, size int) []T {
	if size <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

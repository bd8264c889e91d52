package queries

// Page numbers start at 1. Out-of-range input is clamped, never rejected, so
// a stale link still lands on a page.
func normalizePage(page, pageSize, defaultSize, maxSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}

func offsetOf(page, pageSize int) int {
	return (page - 1) * pageSize
}

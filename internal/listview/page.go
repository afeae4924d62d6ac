// ABOUTME: Page-count arithmetic and clamped page slicing
// ABOUTME: totalPages is ceil(n/pageSize), zero for an empty visible set

package listview

// defaultPageSize applies when a view leaves PageSize unset.
const defaultPageSize = 10

// paginate returns the page count, the clamped page number, and the slice
// bounds [lo, hi) of that page. An empty set yields (0, 0, 0, 0); otherwise
// the requested page is clamped into [1, totalPages] so a filter change can
// never strand the caller on a blank page.
func paginate(n, pageSize, page int) (totalPages, clamped, lo, hi int) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if n == 0 {
		return 0, 0, 0, 0
	}
	totalPages = (n + pageSize - 1) / pageSize
	clamped = page
	if clamped < 1 {
		clamped = 1
	}
	if clamped > totalPages {
		clamped = totalPages
	}
	lo = (clamped - 1) * pageSize
	hi = lo + pageSize
	if hi > n {
		hi = n
	}
	return totalPages, clamped, lo, hi
}

// TotalPages exposes the page count for a visible-set size without slicing.
func TotalPages(n, pageSize int) int {
	total, _, _, _ := paginate(n, pageSize, 1)
	return total
}

// ClampPage clamps a requested page into [1, totalPages] for a visible-set
// size, returning 0 when the set is empty.
func ClampPage(n, pageSize, page int) int {
	_, clamped, _, _ := paginate(n, pageSize, page)
	return clamped
}

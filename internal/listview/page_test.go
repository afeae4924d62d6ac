// ABOUTME: Tests for pagination arithmetic, clamping, and page coverage
// ABOUTME: Concatenating all pages must reconstruct the visible set exactly

package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_EmptySetHasZeroPages(t *testing.T) {
	total, page, lo, hi := paginate(0, 5, 1)

	assert.Equal(t, 0, total)
	assert.Equal(t, 0, page)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}

func TestPaginate_ExactMultiple(t *testing.T) {
	total, _, _, _ := paginate(20, 5, 1)
	assert.Equal(t, 4, total)
}

func TestPaginate_Remainder(t *testing.T) {
	total, page, lo, hi := paginate(23, 10, 3)

	assert.Equal(t, 3, total)
	assert.Equal(t, 3, page)
	assert.Equal(t, 20, lo)
	assert.Equal(t, 23, hi) // last page holds the 3 leftover items
}

func TestPaginate_ClampsLowAndHigh(t *testing.T) {
	_, page, lo, _ := paginate(12, 5, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, lo)

	_, page, lo, hi := paginate(12, 5, 99)
	assert.Equal(t, 3, page)
	assert.Equal(t, 10, lo)
	assert.Equal(t, 12, hi)
}

func TestPaginate_DefaultPageSize(t *testing.T) {
	total, _, _, _ := paginate(25, 0, 1)
	assert.Equal(t, 3, total)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 0, ClampPage(0, 6, 4))
	assert.Equal(t, 1, ClampPage(5, 6, 4))
	assert.Equal(t, 2, ClampPage(12, 6, 2))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 6))
	assert.Equal(t, 1, TotalPages(5, 6))
	assert.Equal(t, 1, TotalPages(6, 6))
	assert.Equal(t, 2, TotalPages(7, 6))
}

func TestView_Evaluate_PageCoverage(t *testing.T) {
	v := carView() // PageSize 3
	cars := testCars()
	s := State{Sort: SortPriceAsc}

	first := v.Evaluate(cars, s)
	require.Equal(t, 2, first.TotalPages)

	// Walking pages 1..totalPages reconstructs the visible set exactly:
	// no duplicates, no omissions, order preserved.
	var walked []car
	for p := 1; p <= first.TotalPages; p++ {
		s.Page = p
		r := v.Evaluate(cars, s)
		assert.Equal(t, p, r.Page)
		walked = append(walked, r.PageItems...)
	}

	assert.Equal(t, first.Visible, walked)
}

func TestView_Evaluate_OutOfRangePageClamped(t *testing.T) {
	v := carView()
	cars := testCars()

	// Filter shrinks the set to 3 items (one page) while the caller still
	// sits on page 2; the stale page must clamp back to 1, not go blank.
	r := v.Evaluate(cars, State{
		Filters: map[string]string{"status": "active"},
		Page:    2,
	})

	assert.Equal(t, 1, r.TotalPages)
	assert.Equal(t, 1, r.Page)
	assert.Len(t, r.PageItems, 3)
}

func TestView_Evaluate_EmptyVisibleSet(t *testing.T) {
	v := carView()

	r := v.Evaluate(testCars(), State{Query: "no such car", Page: 1})

	assert.Empty(t, r.Visible)
	assert.Equal(t, 0, r.TotalPages)
	assert.Equal(t, 0, r.Page)
	assert.Empty(t, r.PageItems)
}

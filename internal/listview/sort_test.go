// ABOUTME: Tests for sort comparators and tie stability
// ABOUTME: Missing accessors must preserve original fetch order

package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_Sort_PriceAsc(t *testing.T) {
	v := carView()

	got := v.Visible(testCars(), State{Sort: SortPriceAsc})

	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].price, got[i].price)
	}
}

func TestView_Sort_PriceDesc(t *testing.T) {
	v := carView()

	got := v.Visible(testCars(), State{Sort: SortPriceDesc})

	require.Len(t, got, 5)
	assert.Equal(t, "Tesla Model 3", got[0].title)
	assert.Equal(t, float64(7000), got[4].price)
}

func TestView_Sort_TiesKeepFetchOrder(t *testing.T) {
	v := carView()

	// Honda Civic (index 1) and Ford Focus (index 3) both cost 7000;
	// Civic must stay ahead of Focus after a stable sort.
	got := v.Visible(testCars(), State{Sort: SortPriceAsc})

	civic, focus := -1, -1
	for i, c := range got {
		switch c.title {
		case "Honda Civic":
			civic = i
		case "Ford Focus":
			focus = i
		}
	}
	require.NotEqual(t, -1, civic)
	require.NotEqual(t, -1, focus)
	assert.Less(t, civic, focus)
}

func TestView_Sort_NewestAndOldest(t *testing.T) {
	v := carView()

	newest := v.Visible(testCars(), State{Sort: SortNewest})
	assert.Equal(t, "Toyota Hilux", newest[0].title)

	oldest := v.Visible(testCars(), State{Sort: SortOldest})
	assert.Equal(t, "Toyota Corolla", oldest[0].title)
}

func TestView_Sort_NoneKeepsFetchOrder(t *testing.T) {
	v := carView()
	cars := testCars()

	got := v.Visible(cars, State{Sort: SortNone})

	for i := range cars {
		assert.Equal(t, cars[i].plate, got[i].plate)
	}
}

func TestView_Sort_MissingAccessorsPreserveOrder(t *testing.T) {
	v := carView()
	v.Price = nil
	v.Date = nil
	cars := testCars()

	// With no accessors every key compares as zero/epoch; stability
	// must keep the fetch order intact.
	for _, key := range ValidSortKeys {
		got := v.Visible(cars, State{Sort: key})
		for i := range cars {
			assert.Equal(t, cars[i].plate, got[i].plate, "sort key %s", key)
		}
	}
}

func TestView_Sort_MissingDateSortsAsEpoch(t *testing.T) {
	v := carView()
	cars := testCars()
	cars[2].created = time.Time{} // Tesla loses its timestamp

	oldest := v.Visible(cars, State{Sort: SortOldest})
	assert.Equal(t, "Tesla Model 3", oldest[0].title)

	newest := v.Visible(cars, State{Sort: SortNewest})
	assert.Equal(t, "Tesla Model 3", newest[len(newest)-1].title)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortKey("price-asc"))
	assert.Equal(t, SortNewest, ParseSortKey("newest"))
	assert.Equal(t, SortNone, ParseSortKey("bogus"))
	assert.Equal(t, SortNone, ParseSortKey(""))
}

// ABOUTME: Enumerated sort keys mapped to stable comparators
// ABOUTME: Missing numeric fields sort as zero, missing dates as the epoch

package listview

import (
	"sort"
	"time"
)

// SortKey selects one of the fixed comparators a screen offers.
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
)

// ValidSortKeys lists every key accepted by ParseSortKey.
var ValidSortKeys = []SortKey{SortPriceAsc, SortPriceDesc, SortNewest, SortOldest}

// ParseSortKey maps user input to a SortKey, returning SortNone for
// anything unrecognized.
func ParseSortKey(s string) SortKey {
	for _, k := range ValidSortKeys {
		if string(k) == s {
			return k
		}
	}
	return SortNone
}

// sort orders items in place by the given key. Unknown keys and SortNone
// leave the slice untouched. SliceStable keeps fetch order for ties.
func (v *View[T]) sort(items []T, key SortKey) {
	price := v.Price
	if price == nil {
		price = func(T) float64 { return 0 }
	}
	date := v.Date
	if date == nil {
		date = func(T) time.Time { return time.Time{} }
	}

	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return price(items[i]) < price(items[j]) })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return price(items[i]) > price(items[j]) })
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool { return date(items[i]).After(date(items[j])) })
	case SortOldest:
		sort.SliceStable(items, func(i, j int) bool { return date(items[i]).Before(date(items[j])) })
	}
}

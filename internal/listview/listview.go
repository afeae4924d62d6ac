// ABOUTME: Generic filter engine evaluating search, categorical, and date predicates
// ABOUTME: Pure: Visible/Evaluate depend only on the input slice and the State

package listview

import (
	"strings"
	"time"
)

// SentinelAll is the reserved categorical value that disables a filter.
// The empty string is treated the same way.
const SentinelAll = "all"

// FieldFunc extracts a string field from an item for searching or
// categorical matching.
type FieldFunc[T any] func(T) string

// TimeFunc extracts a timestamp field from an item.
type TimeFunc[T any] func(T) time.Time

// NumFunc extracts a numeric field from an item.
type NumFunc[T any] func(T) float64

// Rule is an extra AND predicate with access to the full filter state.
// Screens use rules for cross-filter behavior a single accessor cannot
// express (e.g. a type filter that also excludes resolved reports).
type Rule[T any] func(item T, s State) bool

// Bound is an inclusive date interval; a nil side is unbounded.
type Bound struct {
	From *time.Time
	To   *time.Time
}

// contains reports whether ts falls inside the bound, both ends inclusive.
func (b Bound) contains(ts time.Time) bool {
	if b.From != nil && ts.Before(*b.From) {
		return false
	}
	if b.To != nil && ts.After(*b.To) {
		return false
	}
	return true
}

// LastMonth returns a bound covering the last calendar month up to now,
// boundary instant included.
func LastMonth(now time.Time) Bound {
	from := now.AddDate(0, -1, 0)
	return Bound{From: &from}
}

// LastYear returns a bound covering the last calendar year up to now,
// boundary instant included.
func LastYear(now time.Time) Bound {
	from := now.AddDate(-1, 0, 0)
	return Bound{From: &from}
}

// View is a screen's declarative list configuration. Zero-value fields are
// simply unused: a screen with no date filters leaves Dates nil.
type View[T any] struct {
	// SearchFields are matched against the free-text query.
	SearchFields []FieldFunc[T]
	// Filters maps a filter name to the field it matches against.
	Filters map[string]FieldFunc[T]
	// Dates maps a date-filter name to the timestamp it bounds.
	Dates map[string]TimeFunc[T]
	// Rules are extra AND predicates evaluated with the full state.
	Rules []Rule[T]
	// Price and Date feed the sort comparators. A nil accessor sorts
	// every item as zero / epoch, which keeps the original order.
	Price NumFunc[T]
	Date  TimeFunc[T]
	// PageSize is the fixed page size for this screen.
	PageSize int
}

// State is the user's current filter, sort, and page selection.
type State struct {
	Query   string
	Filters map[string]string
	Dates   map[string]Bound
	Sort    SortKey
	Page    int
}

// FilterActive reports whether the named categorical filter is enabled,
// i.e. set to something other than the sentinel.
func (s State) FilterActive(name string) bool {
	v, ok := s.Filters[name]
	return ok && v != "" && !strings.EqualFold(v, SentinelAll)
}

// Result is one evaluation of a view: the full visible set plus the
// requested (clamped) page of it.
type Result[T any] struct {
	Visible    []T
	TotalPages int
	Page       int // clamped; 0 when Visible is empty
	PageItems  []T
}

// Matches reports whether a single item passes every active predicate.
func (v *View[T]) Matches(item T, s State) bool {
	if q := strings.TrimSpace(s.Query); q != "" {
		if !v.searchMatch(item, q) {
			return false
		}
	}
	for name, want := range s.Filters {
		if !s.FilterActive(name) {
			continue
		}
		field, ok := v.Filters[name]
		if !ok {
			continue // unknown filter names are ignored, not failed
		}
		if !strings.EqualFold(field(item), want) {
			return false
		}
	}
	for name, bound := range s.Dates {
		field, ok := v.Dates[name]
		if !ok {
			continue
		}
		if !bound.contains(field(item)) {
			return false
		}
	}
	for _, rule := range v.Rules {
		if !rule(item, s) {
			return false
		}
	}
	return true
}

// searchMatch reports whether any configured search field contains the
// query as a case-insensitive substring.
func (v *View[T]) searchMatch(item T, query string) bool {
	q := strings.ToLower(query)
	for _, field := range v.SearchFields {
		if strings.Contains(strings.ToLower(field(item)), q) {
			return true
		}
	}
	return false
}

// Visible returns the filtered, sorted set in a fresh slice. Pagination
// state is ignored entirely.
func (v *View[T]) Visible(items []T, s State) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if v.Matches(item, s) {
			out = append(out, item)
		}
	}
	v.sort(out, s.Sort)
	return out
}

// Evaluate computes the visible set and slices out the requested page.
func (v *View[T]) Evaluate(items []T, s State) Result[T] {
	visible := v.Visible(items, s)
	total, page, lo, hi := paginate(len(visible), v.PageSize, s.Page)
	return Result[T]{
		Visible:    visible,
		TotalPages: total,
		Page:       page,
		PageItems:  visible[lo:hi],
	}
}

// Package listview filters, sorts, and paginates a client-held collection.
//
// Every list screen used to hand-roll this logic; listview is the single
// shared implementation. A View describes a screen's searchable fields,
// categorical filters, date filters, and sort accessors. A State carries the
// user's current query, filter values, sort key, and page. Evaluate is a pure
// function of (items, state): it never mutates the input slice and its output
// does not depend on any previous evaluation.
//
// Semantics:
//
//   - Free-text search is a case-insensitive substring match over the
//     configured fields; an item matches if any field contains the query.
//     An empty query matches everything.
//   - Categorical filters are case-insensitive equality; the sentinel value
//     "all" (or the empty string) disables a filter.
//   - Date ranges are inclusive on both ends; a nil bound is unbounded.
//   - All active predicates AND together.
//   - Sort is applied after filtering, before paging, and is stable: ties
//     keep their original fetch order.
//   - The requested page is clamped into [1, totalPages]; an empty visible
//     set has zero pages.
package listview

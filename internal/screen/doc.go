// Package screen models one list screen of the console: a fetched
// collection, the user's filter/sort/page state, and the modal sub-flows
// (view, edit draft, delete confirm) layered over it.
//
// The phase machine per screen is
//
//	idle → loading → loaded | errored
//
// and from loaded a selection opens one sub-flow
//
//	loaded → viewing | editing | deleting → loaded
//
// on completion or cancel. A failed load keeps the previous collection
// (last-known-good) and parks the screen in errored, still interactive.
//
// Every filter, search, or sort change resets the page to 1, and requested
// pages are clamped, so narrowing a filter can never leave the screen on a
// blank out-of-range page.
//
// Edit drafts are isolated copies: cancel discards without touching the
// list; save sends the full draft to the backend and merges optimistically
// only on success. On failure the draft stays open with the error attached
// and the list is untouched.
package screen

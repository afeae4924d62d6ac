// Package api is the typed client for the marketplace REST backend.
//
// The backend is an external collaborator: this package owns no server
// semantics, only the request/response plumbing. One file per resource,
// mirroring the backend's route groups:
//
//   - vehicles.go: listing CRUD and the multipart sell form
//   - lostfound.go: lost-and-found reports, resolve/edit/delete, multipart create
//   - users.go: user administration and registration
//   - wishlist.go: wishlist CRUD and status aggregate
//   - dashboard.go: notification/booking/transaction aggregate reads
//
// Contract (per screen mount): a successful list call replaces the caller's
// whole in-memory collection; a failed one leaves it untouched. The server
// returns complete collections; paging is entirely client-side. There is
// no retry, no caching, and no request deduplication here.
//
// List payloads are either a bare JSON array or wrapped in a "data" or
// "msg" envelope field; decodePayload tries each in that order. Non-2xx
// responses become *APIError with the body's "error" message when present.
package api

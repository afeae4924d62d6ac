// Package model defines the marketplace entities as the backend serves them.
// The backend owns all validity rules; these types carry no invariants beyond
// named status constants and client-side derived helpers (rental hours).
package model

// Package snapshot persists the last successfully fetched copy of each
// collection to a local SQLite database, together with a small audit
// trail of the mutations applied on top of it.
//
// The console works fine without it. A nil *Store is a valid receiver
// for every method: saves and mutation records become no-ops and loads
// report ErrNoSnapshot, so callers never branch on whether snapshots
// are enabled.
//
// Snapshots are advisory. They are written after every successful
// fetch and read once at startup to paint the first screen before the
// backend answers; the backend remains the source of truth.
package snapshot

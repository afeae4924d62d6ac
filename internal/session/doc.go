// Package session resolves the current user's identity from a pre-issued
// backend token, once at startup, and carries it through context so no
// screen ever re-derives it or makes a per-screen round-trip for it.
package session

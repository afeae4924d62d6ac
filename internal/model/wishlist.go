// ABOUTME: Wishlist request entity for wanted vehicles (buy or rent)
// ABOUTME: Status advances server-side; the client only displays and edits

package model

import "time"

// Wishlist purposes.
const (
	WishlistPurposeBuy  = "buy"
	WishlistPurposeRent = "rent"
)

// Wishlist statuses.
const (
	WishlistPending   = "pending"
	WishlistAvailable = "available"
	WishlistFulfilled = "fulfilled"
	WishlistCancelled = "cancelled"
)

// WishlistItem is a request for a vehicle the user wants to buy or rent.
type WishlistItem struct {
	ID          string    `json:"id"`
	Purpose     string    `json:"purpose"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	YearFrom    int       `json:"year_from,omitempty"`
	YearTo      int       `json:"year_to,omitempty"`
	Budget      float64   `json:"budget"`
	Status      string    `json:"status"`
	RequesterID string    `json:"requester_id"`
	Notes       string    `json:"notes,omitempty"`
	Images      []string  `json:"images,omitempty"` // reference photos
	CreatedAt   time.Time `json:"created_at"`
}

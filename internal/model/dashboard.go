// ABOUTME: Dashboard aggregate entities: notifications and top-selling models
// ABOUTME: Read-only shapes for the /api dashboard endpoints

package model

import "time"

// Notification is a dashboard notice for the current user.
type Notification struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ModelSales is one row of the top-selling-models aggregate.
type ModelSales struct {
	Make    string  `json:"make"`
	Model   string  `json:"model"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

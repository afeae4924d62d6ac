// ABOUTME: Lost-and-found report entity with optional vehicle sub-fields
// ABOUTME: Reports are either lost or found, and either active or resolved

package model

import "time"

// LostFoundItem report types.
const (
	LostFoundTypeLost  = "lost"
	LostFoundTypeFound = "found"
)

// LostFoundItem statuses.
const (
	LostFoundStatusActive   = "active"
	LostFoundStatusResolved = "resolved"
)

// LostFoundItem is a lost-or-found report, optionally describing a vehicle.
type LostFoundItem struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"` // markdown
	Location     string    `json:"location"`
	Date         time.Time `json:"date"`
	VehicleMake  string    `json:"vehicle_make,omitempty"`
	VehicleModel string    `json:"vehicle_model,omitempty"`
	PlateNumber  string    `json:"plate_number,omitempty"`
	ReporterID   string    `json:"reporter_id"`
	Images       []string  `json:"images,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

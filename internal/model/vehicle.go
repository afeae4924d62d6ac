// ABOUTME: Vehicle listing entity and its status vocabulary
// ABOUTME: Shape matches the backend's JSON; images are an ordered URL list

package model

import (
	"strconv"
	"time"
)

// Vehicle statuses as the backend reports them.
const (
	VehicleStatusActive    = "active"
	VehicleStatusSold      = "sold"
	VehicleStatusPending   = "pending"
	VehicleStatusAvailable = "available"
)

// Vehicle is a marketplace listing. Created by the sell form, mutated by the
// edit modal, removed by a hard DELETE (the backend exposes no soft delete).
type Vehicle struct {
	ID           string    `json:"id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Price        float64   `json:"price"`
	Mileage      int       `json:"mileage"`
	FuelType     string    `json:"fuel_type"`
	Transmission string    `json:"transmission"`
	Ownership    string    `json:"ownership"`
	Description  string    `json:"description,omitempty"` // markdown, rendered client-side
	Images       []string  `json:"images,omitempty"`
	Status       string    `json:"status"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName returns "year make model" for table rows and detail headers.
func (v *Vehicle) DisplayName() string {
	name := v.Make + " " + v.Model
	if v.Year > 0 {
		return strconv.Itoa(v.Year) + " " + name
	}
	return name
}

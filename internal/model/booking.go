// ABOUTME: Rental booking entity with client-side derived hour arithmetic
// ABOUTME: HoursTotal/HoursRemaining are recomputed on demand, never persisted

package model

import "time"

// Rental period units.
const (
	RentalTypeHour  = "hour"
	RentalTypeDay   = "day"
	RentalTypeWeek  = "week"
	RentalTypeMonth = "month"
)

// Payment statuses shared by bookings and transactions.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// Booking is a rental reservation for a vehicle.
type Booking struct {
	ID            string    `json:"id"`
	VehicleID     string    `json:"vehicle_id"`
	RenterID      string    `json:"renter_id"`
	PickupAt      time.Time `json:"pickup_at"`
	ReturnAt      time.Time `json:"return_at"`
	RentalType    string    `json:"rental_type"`
	WithDriver    bool      `json:"with_driver"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// HoursTotal returns the whole booking span in hours, rounded up so a
// partial hour bills as a full one. Zero when the date pair is inverted.
func (b *Booking) HoursTotal() int {
	d := b.ReturnAt.Sub(b.PickupAt)
	if d <= 0 {
		return 0
	}
	h := int(d / time.Hour)
	if d%time.Hour != 0 {
		h++
	}
	return h
}

// HoursRemaining returns whole hours between now and the return time,
// rounded up, and 0 once the return time has passed.
func (b *Booking) HoursRemaining(now time.Time) int {
	d := b.ReturnAt.Sub(now)
	if d <= 0 {
		return 0
	}
	h := int(d / time.Hour)
	if d%time.Hour != 0 {
		h++
	}
	return h
}

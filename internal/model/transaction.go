// ABOUTME: Transaction entity linking a booking or order to a payment
// ABOUTME: Status vocabulary mirrors the backend's payment lifecycle

package model

import "time"

// Transaction statuses as the backend reports them.
const (
	TransactionCompleted = "completed"
	TransactionPending   = "pending"
	TransactionCancelled = "cancelled"
	TransactionRefunded  = "refunded"
	TransactionPaid      = "paid"
)

// Transaction records a payment against a booking or purchase order.
type Transaction struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	BookingID     string    `json:"booking_id,omitempty"`
	UserID        string    `json:"user_id"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

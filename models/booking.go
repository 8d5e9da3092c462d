package models

import "time"

// BookingStatus is the lifecycle state of a booking. Persisted as a string;
// records written by older versions of the application may carry an empty
// status, which is normalized to [StatusConfirmed] when the collection is
// loaded.
type BookingStatus string

const (
	// StatusConfirmed marks an active booking. Only confirmed bookings
	// block a vehicle's availability.
	StatusConfirmed BookingStatus = "confirmed"
	// StatusCompleted marks a finished rental. Does not block availability.
	StatusCompleted BookingStatus = "completed"
	// StatusCancelled marks a cancelled booking. Does not block availability.
	StatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the three known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking is a reservation of one vehicle for an inclusive calendar date
// range.
//
// The vehicle is embedded as a full snapshot taken at booking time rather
// than referenced by ID, so later catalog edits or deletions never
// retroactively change what was booked or at what price. Snapshot fields
// are immutable after creation; only Status may change, and only through an
// administrator action. Bookings are never deleted.
type Booking struct {
	// BookingID is the generated booking reference ("BK-" + suffix).
	BookingID string `json:"bookingId"`

	// Vehicle is the catalog record as it was at booking time.
	Vehicle Vehicle `json:"car"`

	// PickupLocation and ReturnLocation are free-text branch names.
	PickupLocation string `json:"pickupLocation"`
	ReturnLocation string `json:"returnLocation"`

	// PickupDate and ReturnDate are ISO calendar dates (YYYY-MM-DD) with no
	// time-of-day or timezone. The range is closed on both ends.
	PickupDate string `json:"pickupDate"`
	ReturnDate string `json:"returnDate"`

	// TotalDays is the computed rental length, never negative.
	TotalDays int `json:"totalDays"`

	// TotalPrice is TotalDays times the snapshot's daily price.
	TotalPrice float64 `json:"totalPrice"`

	// UserID is the owning account, or empty for a guest booking.
	UserID string `json:"userId,omitempty"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`

	// Status is the lifecycle state. Never empty after load.
	Status BookingStatus `json:"status"`
}

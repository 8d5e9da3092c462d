package service

import (
	"context"
	"io"
	"time"

	"github.com/palmcar/rentaldesk/models"
)

// FleetService manages the vehicle catalog.
type FleetService interface {
	// List returns the full catalog. The first call ever made against an
	// empty store seeds and persists the default catalog before returning
	// it; the seed happens at most once, so a catalog emptied by deletions
	// stays empty.
	List(ctx context.Context) ([]models.Vehicle, error)
	// GetByID returns the matching vehicle or ErrVehicleNotFound. No side
	// effects: it never triggers seeding on its own.
	GetByID(ctx context.Context, id string) (models.Vehicle, error)
	// Create assigns a fresh unique id, persists and returns the record.
	Create(ctx context.Context, fields models.Vehicle) (models.Vehicle, error)
	// Update merges non-nil patch fields onto the record.
	Update(ctx context.Context, id string, patch models.VehiclePatch) (models.Vehicle, error)
	// Delete removes the record if present and reports whether it did.
	Delete(ctx context.Context, id string) (bool, error)
}

// CreateBookingInput carries everything the booking flow collects. The
// vehicle snapshot is embedded whole so the booking survives later catalog
// edits.
type CreateBookingInput struct {
	Vehicle        models.Vehicle
	PickupLocation string
	ReturnLocation string
	PickupDate     string
	ReturnDate     string
	// UserID is empty for guest bookings.
	UserID string
}

// BookingService manages bookings and owns the availability invariant.
type BookingService interface {
	ListAll(ctx context.Context) ([]models.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListForVehicle(ctx context.Context, vehicleID string) ([]models.Booking, error)
	// IsAvailable reports whether the vehicle has no confirmed booking
	// overlapping the closed date range [pickupDate, returnDate].
	// excludeBookingID, when non-empty, skips exactly that booking
	// (edit-in-place flows).
	IsAvailable(ctx context.Context, vehicleID, pickupDate, returnDate, excludeBookingID string) (bool, error)
	// Create validates the input, re-checks availability and persists the
	// booking atomically with respect to other Create calls in this
	// process. Returns ErrVehicleUnavailable when the range is blocked.
	Create(ctx context.Context, in CreateBookingInput) (models.Booking, error)
	// UpdateStatus replaces the booking's status. Any status may
	// transition to any other, including a no-op. Returns
	// ErrBookingNotFound for an unknown id.
	UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error
}

// AuthService manages accounts and the active session pointer.
type AuthService interface {
	// FindByEmail looks an account up case-insensitively.
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// ValidateLogin returns the account matching the credentials, or
	// ErrInvalidCredentials. The error never reveals whether the email
	// exists.
	ValidateLogin(ctx context.Context, email, password string) (models.User, error)
	// Register creates an account. role defaults to models.RoleUser when
	// empty; the public registration path never passes admin.
	Register(ctx context.Context, email, password, name string, role models.Role) (models.User, error)
	// UpdateAccount applies a partial profile update and refreshes the
	// session pointer when it references the updated account.
	UpdateAccount(ctx context.Context, userID string, patch models.AccountPatch) (models.User, error)

	Session(ctx context.Context) (models.Session, error)
	SetSession(ctx context.Context, user models.User) error
	ClearSession(ctx context.Context) error
}

// ReportService derives summary metrics from the fleet and booking
// collections.
type ReportService interface {
	Summary(ctx context.Context) (models.ReportSummary, error)
}

// ExportService serializes the fleet and booking collections as CSV.
type ExportService interface {
	FleetCSV(ctx context.Context, w io.Writer) error
	BookingsCSV(ctx context.Context, w io.Writer) error
	// WriteFleetFile / WriteBookingsFile write a dated CSV file into the
	// configured exports directory and return its path.
	WriteFleetFile(ctx context.Context) (string, error)
	WriteBookingsFile(ctx context.Context) (string, error)
}

// SnapshotJob is a background worker that periodically dumps every stored
// collection to a timestamped JSON file for offline backup.
type SnapshotJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
	// Snapshot writes one snapshot immediately and returns the file path.
	Snapshot(ctx context.Context) (string, error)
}

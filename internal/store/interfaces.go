package store

import (
	"context"

	"github.com/palmcar/rentaldesk/models"
)

// Storage is the injected key-value backend every repository persists
// through. Each collection lives under one key as a JSON document.
//
// A Storage value is constructed once at application start and passed to
// the repositories; nothing in this package reaches for ambient globals.
type Storage interface {
	// Get returns the raw value for key. The second result is false when
	// the key is absent, which is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	// Keys lists all stored keys; used by the snapshot worker.
	Keys(ctx context.Context) ([]string, error)
	// Close releases backend resources.
	Close() error
}

// FleetRepository persists the vehicle catalog collection.
type FleetRepository interface {
	Load(ctx context.Context) ([]models.Vehicle, error)
	Save(ctx context.Context, vehicles []models.Vehicle) error
	// Seeded reports whether the catalog seed marker has been written.
	Seeded(ctx context.Context) (bool, error)
	// MarkSeeded persists the seed marker so an emptied catalog is never
	// re-seeded.
	MarkSeeded(ctx context.Context) error
}

// BookingRepository persists the bookings collection.
type BookingRepository interface {
	// Load returns all bookings with statuses already normalized: records
	// written without a status come back as confirmed.
	Load(ctx context.Context) ([]models.Booking, error)
	Save(ctx context.Context, bookings []models.Booking) error
}

// UserRepository persists the account collection.
type UserRepository interface {
	Load(ctx context.Context) ([]models.User, error)
	Save(ctx context.Context, users []models.User) error
}

// SessionRepository persists the active session pointer.
type SessionRepository interface {
	// Get returns the active session, or ErrSessionNotFound when no one is
	// logged in.
	Get(ctx context.Context) (models.Session, error)
	Set(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Palmcar Rentals

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/store"
	"github.com/palmcar/rentaldesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.BookingRepository
// ─────────────────────────────────────────────

type mockBookingRepository struct {
	loadFn func(ctx context.Context) ([]models.Booking, error)
	saveFn func(ctx context.Context, bookings []models.Booking) error
}

func (m *mockBookingRepository) Load(ctx context.Context) ([]models.Booking, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return nil, nil
}

func (m *mockBookingRepository) Save(ctx context.Context, bookings []models.Booking) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, bookings)
	}
	return nil
}

// newTestBookingSvc builds a booking service on top of a real repository
// backed by in-memory storage.
func newTestBookingSvc(t *testing.T) BookingService {
	t.Helper()
	repo := store.NewBookingRepository(store.NewMemoryStorage(), logger.Nop())
	return NewBookingService(repo, logger.Nop())
}

func testVehicle() models.Vehicle {
	return models.Vehicle{
		ID:           "car-7",
		Name:         "Harbor Tourer",
		Category:     models.CategoryMidsize,
		PricePerDay:  50,
		Seats:        5,
		Transmission: models.TransmissionAutomatic,
		Fuel:         "Petrol",
		AC:           true,
	}
}

func testBookingInput() CreateBookingInput {
	return CreateBookingInput{
		Vehicle:        testVehicle(),
		PickupLocation: "Airport",
		ReturnLocation: "Downtown",
		PickupDate:     "2024-06-01",
		ReturnDate:     "2024-06-05",
		UserID:         "user-1",
	}
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestBookingService_Create_ComputesTotals(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, testBookingInput())
	require.NoError(t, err)

	assert.Equal(t, 4, booking.TotalDays)
	assert.Equal(t, float64(200), booking.TotalPrice)
	assert.Equal(t, models.StatusConfirmed, booking.Status)
	assert.Regexp(t, `^BK-[0-9A-F]+$`, booking.BookingID)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestBookingService_Create_RejectsOverlappingRange(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, testBookingInput())
	require.NoError(t, err)

	in := testBookingInput()
	in.PickupDate = "2024-06-04"
	in.ReturnDate = "2024-06-06"
	_, err = svc.Create(ctx, in)
	require.ErrorIs(t, err, ErrVehicleUnavailable)
}

func TestBookingService_Create_SharedBoundaryDayBlocks(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, testBookingInput())
	require.NoError(t, err)

	// Pickup on the existing booking's return day. Ranges are closed on
	// both ends, so the shared day conflicts.
	in := testBookingInput()
	in.PickupDate = "2024-06-05"
	in.ReturnDate = "2024-06-08"
	_, err = svc.Create(ctx, in)
	require.ErrorIs(t, err, ErrVehicleUnavailable)
}

func TestBookingService_Create_AdjacentRangeSucceeds(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, testBookingInput())
	require.NoError(t, err)

	in := testBookingInput()
	in.PickupDate = "2024-06-06"
	in.ReturnDate = "2024-06-08"
	booking, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 2, booking.TotalDays)
	assert.Equal(t, float64(100), booking.TotalPrice)
}

func TestBookingService_Create_OtherVehicleUnaffected(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, testBookingInput())
	require.NoError(t, err)

	in := testBookingInput()
	in.Vehicle.ID = "car-8"
	_, err = svc.Create(ctx, in)
	require.NoError(t, err)
}

func TestBookingService_Create_InvalidDates(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		pickup string
		ret    string
	}{
		{"same day", "2024-06-01", "2024-06-01"},
		{"reversed", "2024-06-05", "2024-06-01"},
		{"malformed pickup", "06/01/2024", "2024-06-05"},
		{"malformed return", "2024-06-01", "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testBookingInput()
			in.PickupDate = tt.pickup
			in.ReturnDate = tt.ret
			_, err := svc.Create(ctx, in)
			require.ErrorIs(t, err, ErrInvalidDateRange)
		})
	}
}

func TestBookingService_Create_MissingVehicle(t *testing.T) {
	svc := newTestBookingSvc(t)

	in := testBookingInput()
	in.Vehicle = models.Vehicle{}
	_, err := svc.Create(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestBookingService_Create_DefaultsBlankLocations(t *testing.T) {
	svc := newTestBookingSvc(t)

	in := testBookingInput()
	in.PickupLocation = ""
	in.ReturnLocation = ""
	booking, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, defaultLocation, booking.PickupLocation)
	assert.Equal(t, defaultLocation, booking.ReturnLocation)
}

func TestBookingService_Create_GuestBooking(t *testing.T) {
	svc := newTestBookingSvc(t)

	in := testBookingInput()
	in.UserID = ""
	booking, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, booking.UserID)
}

func TestBookingService_Create_LoadError(t *testing.T) {
	wantErr := errors.New("disk gone")
	repo := &mockBookingRepository{
		loadFn: func(ctx context.Context) ([]models.Booking, error) { return nil, wantErr },
	}
	svc := NewBookingService(repo, logger.Nop())

	_, err := svc.Create(context.Background(), testBookingInput())
	require.ErrorIs(t, err, wantErr)
}

// ── Availability and status lifecycle ────────────────────────────────────────

func TestBookingService_CancellationFreesTheRange(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, testBookingInput())
	require.NoError(t, err)

	_, err = svc.Create(ctx, testBookingInput())
	require.ErrorIs(t, err, ErrVehicleUnavailable)

	require.NoError(t, svc.UpdateStatus(ctx, booking.BookingID, models.StatusCancelled))

	_, err = svc.Create(ctx, testBookingInput())
	require.NoError(t, err)
}

func TestBookingService_CompletedBookingDoesNotBlock(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, testBookingInput())
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStatus(ctx, booking.BookingID, models.StatusCompleted))

	available, err := svc.IsAvailable(ctx, booking.Vehicle.ID, booking.PickupDate, booking.ReturnDate, "")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestBookingService_IsAvailable_ExcludesGivenBooking(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, testBookingInput())
	require.NoError(t, err)

	available, err := svc.IsAvailable(ctx, booking.Vehicle.ID, booking.PickupDate, booking.ReturnDate, "")
	require.NoError(t, err)
	assert.False(t, available)

	// Excluding the booking itself frees its own range, as an
	// edit-in-place flow needs.
	available, err = svc.IsAvailable(ctx, booking.Vehicle.ID, booking.PickupDate, booking.ReturnDate, booking.BookingID)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestBookingService_UpdateStatus_Roundtrip(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, testBookingInput())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, booking.BookingID, models.StatusCompleted))
	// Re-confirming a completed booking is allowed; there is no
	// transition graph.
	require.NoError(t, svc.UpdateStatus(ctx, booking.BookingID, models.StatusConfirmed))

	bookings, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, models.StatusConfirmed, bookings[0].Status)
}

func TestBookingService_UpdateStatus_UnknownBooking(t *testing.T) {
	svc := newTestBookingSvc(t)

	err := svc.UpdateStatus(context.Background(), "BK-MISSING", models.StatusCancelled)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newTestBookingSvc(t)

	err := svc.UpdateStatus(context.Background(), "BK-ANY", models.BookingStatus("archived"))
	require.ErrorIs(t, err, ErrInvalidBookingStatus)
}

// ── Listing ──────────────────────────────────────────────────────────────────

func TestBookingService_ListForUser(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	mine := testBookingInput()
	_, err := svc.Create(ctx, mine)
	require.NoError(t, err)

	other := testBookingInput()
	other.Vehicle.ID = "car-8"
	other.UserID = "user-2"
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	bookings, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "user-1", bookings[0].UserID)

	none, err := svc.ListForUser(ctx, "user-99")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBookingService_ListForVehicle(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	first := testBookingInput()
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)

	second := testBookingInput()
	second.PickupDate = "2024-07-01"
	second.ReturnDate = "2024-07-03"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	other := testBookingInput()
	other.Vehicle.ID = "car-8"
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	bookings, err := svc.ListForVehicle(ctx, "car-7")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

// ── Snapshot semantics ───────────────────────────────────────────────────────

func TestBookingService_SnapshotSurvivesCatalogEdits(t *testing.T) {
	svc := newTestBookingSvc(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, testBookingInput())
	require.NoError(t, err)

	// The embedded snapshot keeps the original price even if the catalog
	// record later changes; nothing here references the catalog at all.
	assert.Equal(t, "Harbor Tourer", booking.Vehicle.Name)
	assert.Equal(t, float64(50), booking.Vehicle.PricePerDay)
}

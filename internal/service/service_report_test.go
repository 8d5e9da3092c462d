package service

import (
	"context"
	"testing"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/store"
	"github.com/palmcar/rentaldesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (FleetService, BookingService, ReportService) {
	t.Helper()
	backend := store.NewMemoryStorage()
	fleet := NewFleetService(store.NewFleetRepository(backend, logger.Nop()), true, logger.Nop())
	bookings := NewBookingService(store.NewBookingRepository(backend, logger.Nop()), logger.Nop())
	return fleet, bookings, NewReportService(fleet, bookings)
}

func TestReportService_Summary_EmptyStore(t *testing.T) {
	_, _, reports := newTestServices(t)

	summary, err := reports.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Confirmed)
	assert.Zero(t, summary.Completed)
	assert.Zero(t, summary.Cancelled)
	assert.Zero(t, summary.RevenueCompleted)
	assert.Empty(t, summary.FleetByCategory)
}

func TestReportService_Summary_CountsAndRevenue(t *testing.T) {
	fleet, bookings, reports := newTestServices(t)
	ctx := context.Background()

	for _, v := range []models.Vehicle{
		{Name: "A", Category: models.CategoryEconomy, PricePerDay: 30, Seats: 4},
		{Name: "B", Category: models.CategoryEconomy, PricePerDay: 35, Seats: 4},
		{Name: "C", Category: models.CategoryLuxury, PricePerDay: 120, Seats: 2},
	} {
		_, err := fleet.Create(ctx, v)
		require.NoError(t, err)
	}

	vehicle := testVehicle()
	mkBooking := func(pickup, ret string) models.Booking {
		t.Helper()
		booking, err := bookings.Create(ctx, CreateBookingInput{
			Vehicle:    vehicle,
			PickupDate: pickup,
			ReturnDate: ret,
		})
		require.NoError(t, err)
		return booking
	}

	mkBooking("2024-06-01", "2024-06-05")
	completed := mkBooking("2024-06-10", "2024-06-12")
	cancelled := mkBooking("2024-06-20", "2024-06-21")
	require.NoError(t, bookings.UpdateStatus(ctx, completed.BookingID, models.StatusCompleted))
	require.NoError(t, bookings.UpdateStatus(ctx, cancelled.BookingID, models.StatusCancelled))

	summary, err := reports.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Confirmed)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 1, summary.Cancelled)
	// Only the completed rental counts toward revenue: 2 days at 50.
	assert.Equal(t, float64(100), summary.RevenueCompleted)

	require.Len(t, summary.FleetByCategory, 2)
	assert.Equal(t, models.CategoryCount{Category: models.CategoryEconomy, Count: 2}, summary.FleetByCategory[0])
	assert.Equal(t, models.CategoryCount{Category: models.CategoryLuxury, Count: 1}, summary.FleetByCategory[1])
}

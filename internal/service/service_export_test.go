package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/store"
	"github.com/palmcar/rentaldesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExportSvc(t *testing.T, exportsDir string) (FleetService, BookingService, ExportService) {
	t.Helper()
	backend := store.NewMemoryStorage()
	fleet := NewFleetService(store.NewFleetRepository(backend, logger.Nop()), true, logger.Nop())
	bookings := NewBookingService(store.NewBookingRepository(backend, logger.Nop()), logger.Nop())
	return fleet, bookings, NewExportService(fleet, bookings, exportsDir, logger.Nop())
}

func TestExportService_FleetCSV(t *testing.T) {
	fleet, _, export := newTestExportSvc(t, t.TempDir())
	ctx := context.Background()

	created, err := fleet.Create(ctx, models.Vehicle{
		Name:         "Comma, Car",
		Category:     models.CategorySUV,
		PricePerDay:  79.5,
		Seats:        7,
		Transmission: models.TransmissionAutomatic,
		Fuel:         "Diesel",
		AC:           true,
		Description:  `Has "quotes" and, commas`,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.FleetCSV(ctx, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t,
		[]string{"ID", "Name", "Type", "Price/day", "Seats", "Transmission", "Fuel", "AC", "Description"},
		records[0])
	assert.Equal(t,
		[]string{created.ID, "Comma, Car", "suv", "79.5", "7", "automatic", "Diesel", "Yes", `Has "quotes" and, commas`},
		records[1])
}

func TestExportService_BookingsCSV(t *testing.T) {
	_, bookings, export := newTestExportSvc(t, t.TempDir())
	ctx := context.Background()

	booking, err := bookings.Create(ctx, testBookingInput())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.BookingsCSV(ctx, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t,
		[]string{"Booking ID", "Car", "Car Type", "Pick-up", "Return", "Pick-up Date", "Return Date", "Days", "Total", "Status", "Created"},
		records[0])

	row := records[1]
	assert.Equal(t, booking.BookingID, row[0])
	assert.Equal(t, "Harbor Tourer", row[1])
	assert.Equal(t, "midsize", row[2])
	assert.Equal(t, "Airport", row[3])
	assert.Equal(t, "Downtown", row[4])
	assert.Equal(t, "2024-06-01", row[5])
	assert.Equal(t, "2024-06-05", row[6])
	assert.Equal(t, "4", row[7])
	assert.Equal(t, "200", row[8])
	assert.Equal(t, "confirmed", row[9])
	assert.NotEmpty(t, row[10])
}

func TestExportService_EmptyCollectionsStillProduceHeaders(t *testing.T) {
	_, _, export := newTestExportSvc(t, t.TempDir())
	ctx := context.Background()

	var fleetBuf, bookingsBuf bytes.Buffer
	require.NoError(t, export.FleetCSV(ctx, &fleetBuf))
	require.NoError(t, export.BookingsCSV(ctx, &bookingsBuf))

	assert.Equal(t, 1, strings.Count(strings.TrimSpace(fleetBuf.String()), "\n")+1)
	assert.Contains(t, bookingsBuf.String(), "Booking ID")
}

func TestExportService_WriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	fleet, bookings, export := newTestExportSvc(t, dir)
	ctx := context.Background()

	_, err := fleet.Create(ctx, models.Vehicle{Name: "Exported", Category: models.CategoryEconomy, PricePerDay: 30, Seats: 4})
	require.NoError(t, err)
	_, err = bookings.Create(ctx, testBookingInput())
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")

	fleetPath, err := export.WriteFleetFile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "palmcar-fleet-"+today+".csv", filepath.Base(fleetPath))

	bookingsPath, err := export.WriteBookingsFile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "palmcar-bookings-"+today+".csv", filepath.Base(bookingsPath))

	content, err := os.ReadFile(fleetPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Exported")
}

package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/palmcar/rentaldesk/internal/logger"
)

// exportService renders the fleet and booking collections as CSV, either
// into a caller-supplied writer or as dated files in the configured
// exports directory.
type exportService struct {
	fleet      FleetService
	bookings   BookingService
	exportsDir string

	logger *logger.Logger
}

func NewExportService(fleet FleetService, bookings BookingService, exportsDir string, logger *logger.Logger) ExportService {
	return &exportService{
		fleet:      fleet,
		bookings:   bookings,
		exportsDir: exportsDir,
		logger:     logger,
	}
}

func (e *exportService) FleetCSV(ctx context.Context, w io.Writer) error {
	vehicles, err := e.fleet.List(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Name", "Type", "Price/day", "Seats", "Transmission", "Fuel", "AC", "Description"}); err != nil {
		return fmt.Errorf("writing fleet csv header failed: %w", err)
	}
	for _, v := range vehicles {
		ac := "No"
		if v.AC {
			ac = "Yes"
		}
		record := []string{
			v.ID,
			v.Name,
			string(v.Category),
			formatMoney(v.PricePerDay),
			strconv.Itoa(v.Seats),
			string(v.Transmission),
			v.Fuel,
			ac,
			v.Description,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing fleet csv row failed: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func (e *exportService) BookingsCSV(ctx context.Context, w io.Writer) error {
	bookings, err := e.bookings.ListAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"Booking ID", "Car", "Car Type", "Pick-up", "Return", "Pick-up Date", "Return Date", "Days", "Total", "Status", "Created"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing bookings csv header failed: %w", err)
	}
	for _, b := range bookings {
		record := []string{
			b.BookingID,
			b.Vehicle.Name,
			string(b.Vehicle.Category),
			b.PickupLocation,
			b.ReturnLocation,
			b.PickupDate,
			b.ReturnDate,
			strconv.Itoa(b.TotalDays),
			formatMoney(b.TotalPrice),
			string(b.Status),
			b.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing bookings csv row failed: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func (e *exportService) WriteFleetFile(ctx context.Context) (string, error) {
	return e.writeFile(ctx, "palmcar-fleet", e.FleetCSV)
}

func (e *exportService) WriteBookingsFile(ctx context.Context) (string, error) {
	return e.writeFile(ctx, "palmcar-bookings", e.BookingsCSV)
}

func (e *exportService) writeFile(ctx context.Context, prefix string, render func(context.Context, io.Writer) error) (string, error) {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(e.exportsDir, 0o755); err != nil {
		log.Err(err).Str("dir", e.exportsDir).Msg("creating exports directory failed")
		return "", fmt.Errorf("creating exports directory failed: %w", err)
	}

	name := fmt.Sprintf("%s-%s.csv", prefix, time.Now().Format(isoDateLayout))
	path := filepath.Join(e.exportsDir, name)

	file, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("creating export file failed")
		return "", fmt.Errorf("creating export file failed: %w", err)
	}

	if err := render(ctx, file); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing export file failed: %w", err)
	}

	log.Info().Str("path", path).Msg("export written")
	return path, nil
}

// formatMoney renders prices without a trailing .00 for whole amounts,
// matching how they appear in the booking flow.
func formatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

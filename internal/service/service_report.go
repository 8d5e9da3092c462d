package service

import (
	"context"
	"sort"

	"github.com/palmcar/rentaldesk/models"
)

type reportService struct {
	fleet    FleetService
	bookings BookingService
}

// NewReportService builds summaries on top of the fleet and booking
// services so the metrics always agree with what those services return.
func NewReportService(fleet FleetService, bookings BookingService) ReportService {
	return &reportService{fleet: fleet, bookings: bookings}
}

func (r *reportService) Summary(ctx context.Context) (models.ReportSummary, error) {
	bookings, err := r.bookings.ListAll(ctx)
	if err != nil {
		return models.ReportSummary{}, err
	}
	vehicles, err := r.fleet.List(ctx)
	if err != nil {
		return models.ReportSummary{}, err
	}

	var summary models.ReportSummary
	for _, booking := range bookings {
		switch booking.Status {
		case models.StatusConfirmed:
			summary.Confirmed++
		case models.StatusCompleted:
			summary.Completed++
			summary.RevenueCompleted += booking.TotalPrice
		case models.StatusCancelled:
			summary.Cancelled++
		}
	}

	counts := make(map[models.VehicleCategory]int, len(vehicles))
	for _, vehicle := range vehicles {
		counts[vehicle.Category]++
	}
	for category, count := range counts {
		summary.FleetByCategory = append(summary.FleetByCategory, models.CategoryCount{
			Category: category,
			Count:    count,
		})
	}
	sort.Slice(summary.FleetByCategory, func(i, j int) bool {
		a, b := summary.FleetByCategory[i], summary.FleetByCategory[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Category < b.Category
	})

	return summary, nil
}

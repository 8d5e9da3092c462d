package service

import (
	"github.com/palmcar/rentaldesk/internal/config"
	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/store"
)

// Services bundles every application service behind one constructor so the
// entrypoint wires a single value into the UI.
type Services struct {
	FleetService   FleetService
	BookingService BookingService
	AuthService    AuthService
	ReportService  ReportService
	ExportService  ExportService
	SnapshotJob    SnapshotJob
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	fleetSvc := NewFleetService(storages.Fleet, cfg.App.DisableSeed, logger)
	bookingSvc := NewBookingService(storages.Bookings, logger)
	authSvc := NewAuthService(storages.Users, storages.Session, cfg.App.DisableSeed, logger)

	return &Services{
		FleetService:   fleetSvc,
		BookingService: bookingSvc,
		AuthService:    authSvc,
		ReportService:  NewReportService(fleetSvc, bookingSvc),
		ExportService:  NewExportService(fleetSvc, bookingSvc, cfg.Storage.ExportsDir, logger),
		SnapshotJob:    NewSnapshotJob(storages.Backend, cfg.Storage.SnapshotsDir, logger),
	}
}

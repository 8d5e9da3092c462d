package store

import (
	"context"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/models"
)

// bookingRepository persists the bookings collection under [KeyBookings].
type bookingRepository struct {
	storage Storage
	logger  *logger.Logger
}

// NewBookingRepository constructs a [BookingRepository] backed by the
// provided storage and logger.
func NewBookingRepository(storage Storage, logger *logger.Logger) BookingRepository {
	logger.Debug().Msg("creating booking repository")
	return &bookingRepository{
		storage: storage,
		logger:  logger,
	}
}

// Load returns all bookings. Status normalization happens here, once, so
// records written by older versions without a status field come back as
// confirmed and no read site ever needs a fallback check.
func (r *bookingRepository) Load(ctx context.Context) ([]models.Booking, error) {
	bookings, err := loadCollection[models.Booking](ctx, r.storage, KeyBookings)
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		if bookings[i].Status == "" {
			bookings[i].Status = models.StatusConfirmed
		}
	}

	return bookings, nil
}

func (r *bookingRepository) Save(ctx context.Context, bookings []models.Booking) error {
	return saveCollection(ctx, r.storage, KeyBookings, bookings)
}

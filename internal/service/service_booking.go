// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Palmcar Rentals

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/store"
	"github.com/palmcar/rentaldesk/internal/utils"
	"github.com/palmcar/rentaldesk/models"
)

// defaultLocation is stored when the booking flow leaves a branch blank.
const defaultLocation = "To be confirmed"

// bookingService is the concrete implementation of BookingService.
//
// Availability is defined over confirmed bookings only: completed and
// cancelled bookings never block a date range. Create re-checks
// availability under the same mutex that guards the write, so two
// concurrent bookings of the same vehicle and range cannot both succeed
// within one process.
type bookingService struct {
	bookingRepository store.BookingRepository
	generator         *utils.UUIDGenerator

	// mu serializes the availability check against the write that depends
	// on it.
	mu sync.Mutex

	logger *logger.Logger
}

func NewBookingService(bookingRepository store.BookingRepository, logger *logger.Logger) BookingService {
	return &bookingService{
		bookingRepository: bookingRepository,
		generator:         utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

func (b *bookingService) ListAll(ctx context.Context) ([]models.Booking, error) {
	log := logger.FromContext(ctx)

	bookings, err := b.bookingRepository.Load(ctx)
	if err != nil {
		log.Err(err).Msg("loading bookings failed")
		return nil, fmt.Errorf("loading bookings failed: %w", err)
	}

	return bookings, nil
}

func (b *bookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := b.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.UserID == userID {
			matched = append(matched, booking)
		}
	}

	return matched, nil
}

func (b *bookingService) ListForVehicle(ctx context.Context, vehicleID string) ([]models.Booking, error) {
	bookings, err := b.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.Vehicle.ID == vehicleID {
			matched = append(matched, booking)
		}
	}

	return matched, nil
}

func (b *bookingService) IsAvailable(ctx context.Context, vehicleID, pickupDate, returnDate, excludeBookingID string) (bool, error) {
	log := logger.FromContext(ctx)

	bookings, err := b.bookingRepository.Load(ctx)
	if err != nil {
		log.Err(err).Str("vehicleID", vehicleID).Msg("loading bookings failed")
		return false, fmt.Errorf("loading bookings failed: %w", err)
	}

	return vehicleAvailable(bookings, vehicleID, pickupDate, returnDate, excludeBookingID), nil
}

func (b *bookingService) Create(ctx context.Context, in CreateBookingInput) (models.Booking, error) {
	log := logger.FromContext(ctx)

	if in.Vehicle.ID == "" {
		log.Error().Msg("booking has no vehicle")
		return models.Booking{}, ErrInvalidDataProvided
	}

	pickup, err := parseISODate(in.PickupDate)
	if err != nil {
		log.Error().Str("pickupDate", in.PickupDate).Msg("unparseable pickup date")
		return models.Booking{}, ErrInvalidDateRange
	}
	ret, err := parseISODate(in.ReturnDate)
	if err != nil {
		log.Error().Str("returnDate", in.ReturnDate).Msg("unparseable return date")
		return models.Booking{}, ErrInvalidDateRange
	}

	days := rentalDays(pickup, ret)
	if days < 1 {
		return models.Booking{}, ErrInvalidDateRange
	}

	if in.PickupLocation == "" {
		in.PickupLocation = defaultLocation
	}
	if in.ReturnLocation == "" {
		in.ReturnLocation = defaultLocation
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	bookings, err := b.bookingRepository.Load(ctx)
	if err != nil {
		log.Err(err).Msg("loading bookings failed")
		return models.Booking{}, fmt.Errorf("loading bookings failed: %w", err)
	}

	if !vehicleAvailable(bookings, in.Vehicle.ID, in.PickupDate, in.ReturnDate, "") {
		log.Info().
			Str("vehicleID", in.Vehicle.ID).
			Str("pickupDate", in.PickupDate).
			Str("returnDate", in.ReturnDate).
			Msg("booking rejected, dates already taken")
		return models.Booking{}, ErrVehicleUnavailable
	}

	booking := models.Booking{
		BookingID:      b.newBookingReference(),
		Vehicle:        in.Vehicle,
		PickupLocation: in.PickupLocation,
		ReturnLocation: in.ReturnLocation,
		PickupDate:     in.PickupDate,
		ReturnDate:     in.ReturnDate,
		TotalDays:      days,
		TotalPrice:     float64(days) * in.Vehicle.PricePerDay,
		UserID:         in.UserID,
		CreatedAt:      time.Now(),
		Status:         models.StatusConfirmed,
	}

	bookings = append(bookings, booking)
	if err := b.bookingRepository.Save(ctx, bookings); err != nil {
		log.Err(err).Str("bookingID", booking.BookingID).Msg("persisting booking failed")
		return models.Booking{}, fmt.Errorf("persisting booking failed: %w", err)
	}

	log.Info().
		Str("bookingID", booking.BookingID).
		Str("vehicleID", in.Vehicle.ID).
		Int("totalDays", days).
		Msg("booking created")
	return booking, nil
}

func (b *bookingService) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	log := logger.FromContext(ctx)

	if !status.Valid() {
		log.Error().Str("status", string(status)).Msg("unknown booking status")
		return ErrInvalidBookingStatus
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	bookings, err := b.bookingRepository.Load(ctx)
	if err != nil {
		log.Err(err).Str("bookingID", bookingID).Msg("loading bookings failed")
		return fmt.Errorf("loading bookings failed: %w", err)
	}

	for i := range bookings {
		if bookings[i].BookingID != bookingID {
			continue
		}

		bookings[i].Status = status
		if err := b.bookingRepository.Save(ctx, bookings); err != nil {
			log.Err(err).Str("bookingID", bookingID).Msg("persisting booking status failed")
			return fmt.Errorf("persisting booking status failed: %w", err)
		}

		log.Info().Str("bookingID", bookingID).Str("status", string(status)).Msg("booking status updated")
		return nil
	}

	return ErrBookingNotFound
}

// vehicleAvailable is the availability rule shared by IsAvailable and
// Create. Dates compare as strings, which is safe because both sides are
// YYYY-MM-DD.
func vehicleAvailable(bookings []models.Booking, vehicleID, pickupDate, returnDate, excludeBookingID string) bool {
	for _, booking := range bookings {
		if booking.Vehicle.ID != vehicleID {
			continue
		}
		if booking.Status != models.StatusConfirmed {
			continue
		}
		if excludeBookingID != "" && booking.BookingID == excludeBookingID {
			continue
		}
		if rangesOverlap(booking.PickupDate, booking.ReturnDate, pickupDate, returnDate) {
			return false
		}
	}

	return true
}

// newBookingReference builds a short human-quotable reference like
// BK-0198E2B41F7C.
func (b *bookingService) newBookingReference() string {
	compact := strings.ToUpper(strings.ReplaceAll(b.generator.Generate(), "-", ""))
	if len(compact) > 12 {
		compact = compact[:12]
	}

	return "BK-" + compact
}

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/store"
	"github.com/palmcar/rentaldesk/internal/utils"
	"github.com/palmcar/rentaldesk/models"
)

// fleetService is the concrete implementation of FleetService.
//
// The first List call against a store that has never been seeded persists
// the default catalog. The seed marker is separate from the catalog itself,
// so an admin who deletes every vehicle ends up with an empty catalog that
// stays empty.
type fleetService struct {
	fleetRepository store.FleetRepository
	generator       *utils.UUIDGenerator

	// disableSeed skips the first-run catalog seed entirely.
	disableSeed bool

	// mu serializes read-modify-write cycles on the vehicle collection.
	mu sync.Mutex

	logger *logger.Logger
}

func NewFleetService(fleetRepository store.FleetRepository, disableSeed bool, logger *logger.Logger) FleetService {
	return &fleetService{
		fleetRepository: fleetRepository,
		generator:       utils.NewUUIDGenerator(),
		disableSeed:     disableSeed,
		logger:          logger,
	}
}

func (f *fleetService) List(ctx context.Context) ([]models.Vehicle, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	vehicles, err := f.fleetRepository.Load(ctx)
	if err != nil {
		log.Err(err).Msg("loading vehicle catalog failed")
		return nil, fmt.Errorf("loading vehicle catalog failed: %w", err)
	}

	if len(vehicles) > 0 || f.disableSeed {
		return vehicles, nil
	}

	seeded, err := f.fleetRepository.Seeded(ctx)
	if err != nil {
		log.Err(err).Msg("checking catalog seed marker failed")
		return nil, fmt.Errorf("checking catalog seed marker failed: %w", err)
	}
	if seeded {
		return vehicles, nil
	}

	vehicles = store.DefaultFleet()
	if err := f.fleetRepository.Save(ctx, vehicles); err != nil {
		log.Err(err).Msg("persisting default catalog failed")
		return nil, fmt.Errorf("persisting default catalog failed: %w", err)
	}
	if err := f.fleetRepository.MarkSeeded(ctx); err != nil {
		log.Err(err).Msg("persisting catalog seed marker failed")
		return nil, fmt.Errorf("persisting catalog seed marker failed: %w", err)
	}

	log.Info().Int("vehicles", len(vehicles)).Msg("seeded default vehicle catalog")
	return vehicles, nil
}

func (f *fleetService) GetByID(ctx context.Context, id string) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	vehicles, err := f.fleetRepository.Load(ctx)
	if err != nil {
		log.Err(err).Str("id", id).Msg("loading vehicle catalog failed")
		return models.Vehicle{}, fmt.Errorf("loading vehicle catalog failed: %w", err)
	}

	for _, vehicle := range vehicles {
		if vehicle.ID == id {
			return vehicle, nil
		}
	}

	return models.Vehicle{}, ErrVehicleNotFound
}

func (f *fleetService) Create(ctx context.Context, fields models.Vehicle) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	if fields.Name == "" || fields.PricePerDay <= 0 {
		log.Error().Any("fields", fields).Msg("invalid vehicle data provided")
		return models.Vehicle{}, ErrInvalidDataProvided
	}

	fields.ID = "car-" + f.generator.Generate()

	f.mu.Lock()
	defer f.mu.Unlock()

	vehicles, err := f.fleetRepository.Load(ctx)
	if err != nil {
		log.Err(err).Msg("loading vehicle catalog failed")
		return models.Vehicle{}, fmt.Errorf("loading vehicle catalog failed: %w", err)
	}

	vehicles = append(vehicles, fields)
	if err := f.fleetRepository.Save(ctx, vehicles); err != nil {
		log.Err(err).Str("id", fields.ID).Msg("persisting vehicle failed")
		return models.Vehicle{}, fmt.Errorf("persisting vehicle failed: %w", err)
	}

	log.Info().Str("id", fields.ID).Str("name", fields.Name).Msg("vehicle created")
	return fields, nil
}

func (f *fleetService) Update(ctx context.Context, id string, patch models.VehiclePatch) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	vehicles, err := f.fleetRepository.Load(ctx)
	if err != nil {
		log.Err(err).Str("id", id).Msg("loading vehicle catalog failed")
		return models.Vehicle{}, fmt.Errorf("loading vehicle catalog failed: %w", err)
	}

	for i := range vehicles {
		if vehicles[i].ID != id {
			continue
		}

		applyVehiclePatch(&vehicles[i], patch)
		if err := f.fleetRepository.Save(ctx, vehicles); err != nil {
			log.Err(err).Str("id", id).Msg("persisting vehicle update failed")
			return models.Vehicle{}, fmt.Errorf("persisting vehicle update failed: %w", err)
		}

		return vehicles[i], nil
	}

	return models.Vehicle{}, ErrVehicleNotFound
}

func (f *fleetService) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	vehicles, err := f.fleetRepository.Load(ctx)
	if err != nil {
		log.Err(err).Str("id", id).Msg("loading vehicle catalog failed")
		return false, fmt.Errorf("loading vehicle catalog failed: %w", err)
	}

	for i := range vehicles {
		if vehicles[i].ID != id {
			continue
		}

		vehicles = append(vehicles[:i], vehicles[i+1:]...)
		if err := f.fleetRepository.Save(ctx, vehicles); err != nil {
			log.Err(err).Str("id", id).Msg("persisting vehicle deletion failed")
			return false, fmt.Errorf("persisting vehicle deletion failed: %w", err)
		}

		log.Info().Str("id", id).Msg("vehicle deleted")
		return true, nil
	}

	return false, nil
}

func applyVehiclePatch(vehicle *models.Vehicle, patch models.VehiclePatch) {
	if patch.Name != nil {
		vehicle.Name = *patch.Name
	}
	if patch.Category != nil {
		vehicle.Category = *patch.Category
	}
	if patch.Image != nil {
		vehicle.Image = *patch.Image
	}
	if patch.Images != nil {
		vehicle.Images = *patch.Images
	}
	if patch.PricePerDay != nil {
		vehicle.PricePerDay = *patch.PricePerDay
	}
	if patch.Seats != nil {
		vehicle.Seats = *patch.Seats
	}
	if patch.Transmission != nil {
		vehicle.Transmission = *patch.Transmission
	}
	if patch.Fuel != nil {
		vehicle.Fuel = *patch.Fuel
	}
	if patch.AC != nil {
		vehicle.AC = *patch.AC
	}
	if patch.Description != nil {
		vehicle.Description = *patch.Description
	}
}

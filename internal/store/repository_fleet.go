package store

import (
	"context"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/models"
)

// fleetRepository persists the vehicle catalog under [KeyFleet] and the
// seed marker under [KeyFleetSeeded].
type fleetRepository struct {
	storage Storage
	logger  *logger.Logger
}

// NewFleetRepository constructs a [FleetRepository] backed by the provided
// storage and logger.
func NewFleetRepository(storage Storage, logger *logger.Logger) FleetRepository {
	logger.Debug().Msg("creating fleet repository")
	return &fleetRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *fleetRepository) Load(ctx context.Context) ([]models.Vehicle, error) {
	return loadCollection[models.Vehicle](ctx, r.storage, KeyFleet)
}

func (r *fleetRepository) Save(ctx context.Context, vehicles []models.Vehicle) error {
	return saveCollection(ctx, r.storage, KeyFleet, vehicles)
}

func (r *fleetRepository) Seeded(ctx context.Context) (bool, error) {
	_, ok, err := r.storage.Get(ctx, KeyFleetSeeded)
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (r *fleetRepository) MarkSeeded(ctx context.Context) error {
	return r.storage.Set(ctx, KeyFleetSeeded, []byte("1"))
}

package store

import (
	"context"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/models"
)

// userRepository persists the account collection under [KeyUsers].
type userRepository struct {
	storage Storage
	logger  *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// storage and logger.
func NewUserRepository(storage Storage, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *userRepository) Load(ctx context.Context) ([]models.User, error) {
	return loadCollection[models.User](ctx, r.storage, KeyUsers)
}

func (r *userRepository) Save(ctx context.Context, users []models.User) error {
	return saveCollection(ctx, r.storage, KeyUsers, users)
}

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/models"
)

// sessionRepository persists the active session pointer under [KeySession].
// Unlike the collections, the session is a single JSON object and its
// absence is a well-defined state (nobody logged in), reported as
// [ErrSessionNotFound].
type sessionRepository struct {
	storage Storage
	logger  *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided storage and logger.
func NewSessionRepository(storage Storage, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *sessionRepository) Get(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	raw, ok, err := r.storage.Get(ctx, KeySession)
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	var session models.Session
	if err = json.Unmarshal(raw, &session); err != nil {
		// A malformed session pointer is treated as "not logged in" rather
		// than an error; the user can simply log in again.
		log.Warn().
			Str("func", "sessionRepository.Get").
			Err(err).
			Msg("stored session is malformed; treating as logged out")
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (r *sessionRepository) Set(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = r.storage.Set(ctx, KeySession, payload); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.storage.Delete(ctx, KeySession)
}

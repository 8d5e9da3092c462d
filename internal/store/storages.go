// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Palmcar Rentals

package store

import (
	"context"
	"fmt"

	"github.com/palmcar/rentaldesk/internal/config"
	"github.com/palmcar/rentaldesk/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// around the service layer, together with the backend they persist through.
type Storages struct {
	// Backend is the key-value store every repository writes into. Exposed
	// so the snapshot worker can enumerate and copy raw collections.
	Backend Storage

	Fleet    FleetRepository
	Bookings BookingRepository
	Users    UserRepository
	Session  SessionRepository
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the configured key-value backend (sqlite, file or memory);
//     for sqlite this creates the database file if needed and runs
//     pending schema migrations.
//  2. Constructs and returns a [Storages] value wired to fresh
//     repositories sharing that backend.
//
// Returns an error if the backend cannot be opened or migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating storages...")

	backend, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Backend:  backend,
		Fleet:    NewFleetRepository(backend, logger),
		Bookings: NewBookingRepository(backend, logger),
		Users:    NewUserRepository(backend, logger),
		Session:  NewSessionRepository(backend, logger),
	}, nil
}

func openBackend(ctx context.Context, cfg config.Storage, logger *logger.Logger) (Storage, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		backend, err := NewSQLiteStorage(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite storage: %w", err)
		}
		return backend, nil
	case config.BackendFile:
		backend, err := NewFileStorage(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("file storage: %w", err)
		}
		return backend, nil
	case config.BackendMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Close releases the underlying backend.
func (s *Storages) Close() error {
	return s.Backend.Close()
}

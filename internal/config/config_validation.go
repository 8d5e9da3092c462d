// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Palmcar Rentals

package config

import "time"

const (
	// BackendSQLite stores collections in a local SQLite key-value table.
	BackendSQLite = "sqlite"
	// BackendFile stores collections in a single JSON document on disk.
	BackendFile = "file"
	// BackendMemory keeps collections in memory only. All state is lost at
	// exit; intended for tests and demos.
	BackendMemory = "memory"
)

// applyDefaults fills in defaults for fields no source provided, so a bare
// `rentaldesk` invocation works out of the box.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendSQLite
	}
	if cfg.Storage.DB.Path == "" {
		cfg.Storage.DB.Path = "rentaldesk.db"
	}
	if cfg.Storage.FilePath == "" {
		cfg.Storage.FilePath = "rentaldesk.json"
	}
	if cfg.Storage.ExportsDir == "" {
		cfg.Storage.ExportsDir = "."
	}
	if cfg.Storage.SnapshotsDir == "" {
		cfg.Storage.SnapshotsDir = "snapshots"
	}
	if cfg.Workers.SnapshotInterval == 0 {
		cfg.Workers.SnapshotInterval = 10 * time.Minute
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Backend == BackendSQLite && cfg.Storage.DB.Path == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Backend == BackendFile && cfg.Storage.FilePath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SnapshotInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

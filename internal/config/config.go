// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Palmcar Rentals

package config

import "time"

// StructuredConfig is the top-level configuration container for the
// rentaldesk application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the seed toggle and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend and the
	// export/backup directories.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown on the start screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DisableSeed skips seeding the default catalog and demo accounts on
	// first access. Intended for tests and for operators restoring from a
	// snapshot.
	// Env: APP_DISABLE_SEED
	DisableSeed bool `env:"DISABLE_SEED"`
}

// Storage groups the configuration for the persistence layer.
type Storage struct {
	// Backend selects the key-value backend: "sqlite", "file" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the SQLite backend settings.
	DB DB `envPrefix:"DB_"`

	// FilePath is the JSON document path used by the "file" backend.
	// Env: STORAGE_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// ExportsDir is the directory CSV export files are written into.
	// Env: STORAGE_EXPORTS_DIR
	ExportsDir string `env:"EXPORTS_DIR"`

	// SnapshotsDir is the directory the snapshot worker writes backups
	// into.
	// Env: STORAGE_SNAPSHOTS_DIR
	SnapshotsDir string `env:"SNAPSHOTS_DIR"`
}

// DB holds connection settings for the SQLite key-value backend.
type DB struct {
	// Path is the SQLite database file path (e.g. "rentaldesk.db").
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SnapshotInterval controls how often the snapshot worker writes a
	// backup of all collections (e.g. "10m", "1h"). Zero disables the
	// worker.
	// Env: WORKERS_SNAPSHOT_INTERVAL
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

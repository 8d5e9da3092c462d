// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Palmcar Rentals

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":      "1.2.3",
		"APP_DISABLE_SEED": "true",

		"STORAGE_BACKEND":       "sqlite",
		"STORAGE_DB_PATH":       "/var/lib/rentaldesk/rentaldesk.db",
		"STORAGE_FILE_PATH":     "/var/lib/rentaldesk/rentaldesk.json",
		"STORAGE_EXPORTS_DIR":   "/var/exports",
		"STORAGE_SNAPSHOTS_DIR": "/var/snapshots",

		"WORKERS_SNAPSHOT_INTERVAL": "15m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.True(t, cfg.App.DisableSeed)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/rentaldesk/rentaldesk.db", cfg.Storage.DB.Path)
	assert.Equal(t, "/var/lib/rentaldesk/rentaldesk.json", cfg.Storage.FilePath)
	assert.Equal(t, "/var/exports", cfg.Storage.ExportsDir)
	assert.Equal(t, "/var/snapshots", cfg.Storage.SnapshotsDir)

	assert.Equal(t, 15*time.Minute, cfg.Workers.SnapshotInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"STORAGE_BACKEND": "memory",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Empty(t, cfg.Storage.DB.Path)
	assert.Empty(t, cfg.Storage.ExportsDir)
	assert.Zero(t, cfg.Workers.SnapshotInterval)
	assert.Equal(t, App{}, cfg.App)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// In this version all nested fields are non-pointer values,
	// so "empty" state is represented by zero values.
	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",
		"APP_DISABLE_SEED",

		"STORAGE_BACKEND",
		"STORAGE_DB_PATH",
		"STORAGE_FILE_PATH",
		"STORAGE_EXPORTS_DIR",
		"STORAGE_SNAPSHOTS_DIR",

		"WORKERS_SNAPSHOT_INTERVAL",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}

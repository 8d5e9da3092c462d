package service

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotJob_Snapshot(t *testing.T) {
	backend := store.NewMemoryStorage()
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, store.KeyFleet, []byte(`[{"id":"car-1"}]`)))
	require.NoError(t, backend.Set(ctx, store.KeyFleetSeeded, []byte("1")))

	dir := t.TempDir()
	job := NewSnapshotJob(backend, dir, logger.Nop())

	path, err := job.Snapshot(ctx)
	require.NoError(t, err)

	payload, err := os.ReadFile(path)
	require.NoError(t, err)

	var dump map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &dump))
	assert.Contains(t, dump, store.KeyFleet)
	assert.Contains(t, dump, store.KeyFleetSeeded)
	assert.JSONEq(t, `[{"id":"car-1"}]`, string(dump[store.KeyFleet]))
}

func TestSnapshotJob_SnapshotEmptyStore(t *testing.T) {
	job := NewSnapshotJob(store.NewMemoryStorage(), t.TempDir(), logger.Nop())

	path, err := job.Snapshot(context.Background())
	require.NoError(t, err)

	payload, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(payload))
}

func TestSnapshotJob_StartAndStop(t *testing.T) {
	backend := store.NewMemoryStorage()
	require.NoError(t, backend.Set(context.Background(), store.KeyUsers, []byte(`[]`)))

	dir := t.TempDir()
	job := NewSnapshotJob(backend, dir, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	job.Stop()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries, "ticker should have written at least one snapshot")

	// Stop is idempotent and restart works.
	job.Stop()
	job.Start(context.Background(), time.Hour)
	job.Stop()
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/palmcar/rentaldesk/internal/logger"
	"github.com/palmcar/rentaldesk/internal/store"
)

type snapshotJob struct {
	backend      store.Storage
	snapshotsDir string

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSnapshotJob creates a snapshotJob that dumps every stored collection
// to a timestamped JSON file on a ticker. The job is idle until Start is
// called.
func NewSnapshotJob(backend store.Storage, snapshotsDir string, logger *logger.Logger) SnapshotJob {
	return &snapshotJob{
		backend:      backend,
		snapshotsDir: snapshotsDir,
		logger:       logger,
	}
}

// Start stops any previously running job, then launches a background
// goroutine that writes a snapshot every interval. If interval is zero or
// negative it defaults to 10 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *snapshotJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.Snapshot(jobCtx); err != nil {
					j.logger.Err(err).Msg("periodic snapshot failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running.
func (j *snapshotJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Snapshot writes one snapshot immediately and returns the file path.
func (j *snapshotJob) Snapshot(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	keys, err := j.backend.Keys(ctx)
	if err != nil {
		return "", fmt.Errorf("listing storage keys failed: %w", err)
	}

	dump := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		value, ok, err := j.backend.Get(ctx, key)
		if err != nil {
			return "", fmt.Errorf("reading key %q failed: %w", key, err)
		}
		if !ok {
			continue
		}
		if !json.Valid(value) {
			// Raw marker values are stored as plain strings.
			value, _ = json.Marshal(string(value))
		}
		dump[key] = json.RawMessage(value)
	}

	if err := os.MkdirAll(j.snapshotsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating snapshots directory failed: %w", err)
	}

	payload, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot failed: %w", err)
	}

	name := "snapshot-" + time.Now().Format("20060102-150405") + ".json"
	path := filepath.Join(j.snapshotsDir, name)
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", fmt.Errorf("writing snapshot failed: %w", err)
	}

	log.Debug().Str("path", path).Int("keys", len(dump)).Msg("snapshot written")
	return path, nil
}

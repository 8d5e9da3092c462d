package workers

import (
	"context"
	"time"

	"github.com/palmcar/rentaldesk/internal/service"
)

// snapshotWorker adapts the service snapshot job to the Worker interface.
type snapshotWorker struct {
	ctx      context.Context
	job      service.SnapshotJob
	interval time.Duration
}

// NewSnapshotWorker wraps job so it can run under a Workers aggregate.
// A zero or negative interval disables the worker entirely.
func NewSnapshotWorker(ctx context.Context, job service.SnapshotJob, interval time.Duration) Worker {
	return &snapshotWorker{ctx: ctx, job: job, interval: interval}
}

func (w *snapshotWorker) Run() {
	if w.interval <= 0 {
		return
	}
	w.job.Start(w.ctx, w.interval)
}

func (w *snapshotWorker) Stop() {
	w.job.Stop()
}

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/passhold/vault-engine/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type shareSyncWorker struct {
	source SyncSource

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewShareSyncWorker creates a worker that forces a share refresh on a
// ticker. The worker is idle until Start is called.
func NewShareSyncWorker(source SyncSource) Worker {
	return &shareSyncWorker{source: source}
}

// Start implements Worker. It stops any previously running refresh
// loop, then launches a goroutine that forces a remote share fetch
// every interval. A non-positive interval defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (w *shareSyncWorker) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				w.refresh(workerCtx)
			}
		}
	}()
}

// refresh forces one remote fetch. Failures are logged and swallowed:
// the cache keeps serving its last good state until the next tick.
func (w *shareSyncWorker) refresh(ctx context.Context) {
	log := logger.FromContext(ctx)

	if _, err := w.source.GetShares(ctx, true); err != nil {
		log.Err(err).
			Str("func", "shareSyncWorker.refresh").
			Msg("background share refresh failed")
	}
}

// Stop implements Worker. It cancels the refresh goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when
// the worker is not running.
func (w *shareSyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Workers aggregates background jobs so the application can manage them
// as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context, interval time.Duration) {
	for _, worker := range w.workers {
		worker.Start(ctx, interval)
	}
}

// Stop stops every worker, blocking until all have exited.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}

// Package workers runs the engine's background jobs. Its single
// resident job keeps the local share cache warm by periodically forcing
// a refresh from the remote datasource.
package workers

import (
	"context"
	"time"

	"github.com/passhold/vault-engine/models"
)

// Worker is a background job with an explicit lifecycle. Start launches
// the job's goroutine and returns immediately; Stop blocks until the
// goroutine has fully exited. Both are safe to call more than once.
type Worker interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// SyncSource is the slice of the share repository the sync worker
// needs: a forced GetShares refreshes the cache as a side effect.
type SyncSource interface {
	GetShares(ctx context.Context, forceUpdate bool) ([]models.Share, error)
}

// Package workers provides the engine's background jobs: the periodic sync
// job with reconnect triggering, and the pending-count poller feeding the
// status badge. The Workers aggregate runs them in a unified way.
package workers

import (
	"context"
	"time"

	"github.com/retailpoint/possync/models"
)

// Worker is a background job with a start/stop lifecycle. Run must not
// block: implementations spawn their goroutines internally and exit them
// when ctx is cancelled or Stop is called.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Syncer runs one full sync pass. The orchestrator satisfies it.
type Syncer interface {
	SyncAll(ctx context.Context, tenantID string) models.SyncResult
}

// ChangeNotifier delivers connectivity transitions. The connectivity monitor
// satisfies it.
type ChangeNotifier interface {
	OnChange(cb func(online bool)) func()
}

// Pruner removes synced sales older than the retention window. The pending
// queue satisfies it.
type Pruner interface {
	Prune(ctx context.Context, tenantID string, retention time.Duration) (int64, error)
}

// Counter reports the number of unsynced sales. The pending queue satisfies
// it.
type Counter interface {
	Count(ctx context.Context, tenantID string) (int, error)
}

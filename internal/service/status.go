package service

import (
	"sync"
	"time"

	"github.com/retailpoint/possync/models"
)

// Status is a point-in-time snapshot of the engine for the diagnostics
// endpoint and the pending-count badge.
type Status struct {
	PendingCount int                `json:"pending_count"`
	LastSyncAt   *time.Time         `json:"last_sync_at,omitempty"`
	LastResult   *models.SyncResult `json:"last_result,omitempty"`
}

// StatusTracker aggregates observations from the orchestrator and the
// pending-count poller. All methods are safe for concurrent use.
type StatusTracker struct {
	mu           sync.Mutex
	pendingCount int
	lastSyncAt   time.Time
	lastResult   *models.SyncResult
}

func NewStatusTracker() *StatusTracker {
	return &StatusTracker{}
}

func (t *StatusTracker) SetPendingCount(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pendingCount = n
}

func (t *StatusTracker) SetLastResult(res models.SyncResult, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastResult = &res
	t.lastSyncAt = at
}

func (t *StatusTracker) Snapshot() Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Status{PendingCount: t.pendingCount}
	if t.lastResult != nil {
		res := *t.lastResult
		s.LastResult = &res
	}
	if !t.lastSyncAt.IsZero() {
		at := t.lastSyncAt
		s.LastSyncAt = &at
	}
	return s
}

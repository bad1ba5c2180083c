package workers

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/internal/service"
)

// SyncWorker runs full sync passes on three triggers: a fixed interval, a
// reconnect transition from the connectivity monitor, and backoff re-triggers
// after a failed pass. All triggers funnel into one channel, so passes never
// overlap from this worker's side (the orchestrator's single-flight guard
// covers external triggers).
type SyncWorker struct {
	syncer   Syncer
	notifier ChangeNotifier
	pruner   Pruner
	tenantID string
	interval time.Duration
	policy   service.RetryPolicy

	// pruneAfter is the retention window for synced sales. Zero disables
	// pruning.
	pruneAfter time.Duration

	logger *logger.Logger

	trigger chan struct{}

	mu          sync.Mutex
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup

	// backoff is non-nil only while the worker is recovering from a failed
	// pass; a successful pass resets it.
	backoff retry.Backoff

	// retryTimer re-arms the trigger after a failed pass. The one timer is
	// reused across retries so a long outage does not accumulate timers.
	// Touched only from the worker goroutine.
	retryTimer *time.Timer
}

func NewSyncWorker(
	syncer Syncer,
	notifier ChangeNotifier,
	pruner Pruner,
	tenantID string,
	interval time.Duration,
	policy service.RetryPolicy,
	pruneAfter time.Duration,
	log *logger.Logger,
) *SyncWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &SyncWorker{
		syncer:     syncer,
		notifier:   notifier,
		pruner:     pruner,
		tenantID:   tenantID,
		interval:   interval,
		policy:     policy,
		pruneAfter: pruneAfter,
		logger:     log,
		trigger:    make(chan struct{}, 1),
	}
}

// Run starts the worker. It stops any previously running instance first, so
// calling Run twice does not leak goroutines.
func (w *SyncWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	// A reconnect is the canonical moment to drain the queue: trigger one
	// pass per Offline -> Online transition.
	w.unsubscribe = w.notifier.OnChange(func(online bool) {
		if online {
			w.requestPass()
		}
	})
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		defer w.stopRetryTimer()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			case <-w.trigger:
			}
			w.pass(jobCtx)
		}
	}()
}

// Stop cancels the background goroutine, drops the monitor subscription, and
// blocks until the goroutine has fully exited. Safe to call when the worker
// is not running.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	unsubscribe := w.unsubscribe
	w.cancel = nil
	w.unsubscribe = nil
	w.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// requestPass queues a single pass without blocking. A trigger arriving while
// one is already queued collapses into it.
func (w *SyncWorker) requestPass() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

func (w *SyncWorker) pass(ctx context.Context) {
	res := w.syncer.SyncAll(ctx, w.tenantID)

	if res.Failed > 0 {
		w.scheduleRetry()
		return
	}
	w.backoff = nil
	w.stopRetryTimer()

	if res.Success && w.pruner != nil && w.pruneAfter > 0 {
		if _, err := w.pruner.Prune(ctx, w.tenantID, w.pruneAfter); err != nil {
			w.logger.Err(err).Str("func", "pass").Msg("error pruning synced sales")
		}
	}
}

// scheduleRetry arms a backoff-delayed re-trigger after a failed pass.
// Records are never retried inside a pass; the next pass simply picks up
// whatever is still queued.
func (w *SyncWorker) scheduleRetry() {
	if w.backoff == nil {
		w.backoff = w.policy.Backoff()
	}
	delay, stop := w.backoff.Next()
	if stop {
		return
	}

	w.logger.Debug().Dur("delay", delay).Msg("sync pass failed, retry scheduled")

	if w.retryTimer == nil {
		w.retryTimer = time.AfterFunc(delay, w.requestPass)
		return
	}
	w.retryTimer.Stop()
	w.retryTimer.Reset(delay)
}

func (w *SyncWorker) stopRetryTimer() {
	if w.retryTimer != nil {
		w.retryTimer.Stop()
	}
}

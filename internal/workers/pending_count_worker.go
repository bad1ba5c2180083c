package workers

import (
	"context"
	"sync"
	"time"

	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/internal/service"
)

// PendingCountWorker polls the queue depth and publishes it to the status
// tracker for the pending-count badge.
type PendingCountWorker struct {
	counter  Counter
	status   *service.StatusTracker
	tenantID string
	interval time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPendingCountWorker(
	counter Counter,
	status *service.StatusTracker,
	tenantID string,
	interval time.Duration,
	log *logger.Logger,
) *PendingCountWorker {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	return &PendingCountWorker{
		counter:  counter,
		status:   status,
		tenantID: tenantID,
		interval: interval,
		logger:   log,
	}
}

func (w *PendingCountWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	// Publish once up front so the badge is correct before the first tick.
	w.poll(jobCtx)

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.poll(jobCtx)
			}
		}
	}()
}

func (w *PendingCountWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *PendingCountWorker) poll(ctx context.Context) {
	count, err := w.counter.Count(ctx, w.tenantID)
	if err != nil {
		w.logger.Err(err).Str("func", "poll").Msg("error counting pending sales")
		return
	}
	w.status.SetPendingCount(count)
}

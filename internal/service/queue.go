package service

import (
	"context"
	"fmt"
	"time"

	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/internal/store"
	"github.com/retailpoint/possync/internal/utils"
	"github.com/retailpoint/possync/models"
)

// Queue fronts the durable pending-sale repository. Every sale passes
// through Enqueue before any network interaction: capture is local-first,
// and a sale is only ever pushed from its persisted form.
type Queue struct {
	sales  store.PendingSaleRepository
	ids    *utils.UUIDGenerator
	logger *logger.Logger

	now func() time.Time
}

func NewQueue(sales store.PendingSaleRepository, log *logger.Logger) *Queue {
	return &Queue{
		sales:  sales,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
		now:    time.Now,
	}
}

// Enqueue validates the sale and persists it synchronously. The returned
// sale carries the assigned id (also the remote idempotency key) and the
// capture timestamp. Validation failures reject the sale before it touches
// storage, wrapped in models.ErrValidation.
func (q *Queue) Enqueue(ctx context.Context, sale models.PendingSale) (models.PendingSale, error) {
	if sale.ID == "" {
		sale.ID = q.ids.Generate()
	}
	if sale.CreatedAt == 0 {
		sale.CreatedAt = q.now().UnixMilli()
	}
	sale.Synced = false
	sale.Attempts = 0
	sale.LastError = ""

	if err := sale.Validate(); err != nil {
		return models.PendingSale{}, err
	}

	persisted, err := q.sales.Put(ctx, sale)
	if err != nil {
		q.logger.Err(err).Str("func", "Enqueue").Str("sale_id", sale.ID).
			Msg("error persisting pending sale")
		return models.PendingSale{}, fmt.Errorf("enqueue sale %s: %w", sale.ID, err)
	}

	q.logger.Debug().Str("sale_id", persisted.ID).Float64("total", persisted.Total).
		Msg("sale queued")
	return persisted, nil
}

// Pending returns the tenant's unsynced sales oldest-first, the order in
// which they must be pushed.
func (q *Queue) Pending(ctx context.Context, tenantID string) ([]models.PendingSale, error) {
	return q.sales.GetPending(ctx, tenantID)
}

// Count returns the number of unsynced sales for the tenant.
func (q *Queue) Count(ctx context.Context, tenantID string) (int, error) {
	return q.sales.CountPending(ctx, tenantID)
}

// MarkSynced flips the sale to synced and clears its failure bookkeeping.
// A synced sale is immutable from this point on.
func (q *Queue) MarkSynced(ctx context.Context, sale models.PendingSale) error {
	sale.Synced = true
	sale.LastError = ""

	if _, err := q.sales.Put(ctx, sale); err != nil {
		return fmt.Errorf("mark sale %s synced: %w", sale.ID, err)
	}
	return nil
}

// RecordFailure increments the sale's attempt counter and stores the cause
// for diagnostics. The sale stays in the queue for the next trigger.
func (q *Queue) RecordFailure(ctx context.Context, sale models.PendingSale, cause error) error {
	sale.Attempts++
	sale.LastError = cause.Error()

	if _, err := q.sales.Put(ctx, sale); err != nil {
		q.logger.Err(err).Str("func", "RecordFailure").Str("sale_id", sale.ID).
			Msg("error recording push failure")
		return fmt.Errorf("record failure for sale %s: %w", sale.ID, err)
	}

	q.logger.Warn().Str("sale_id", sale.ID).Int("attempts", sale.Attempts).
		Err(cause).Msg("sale push failed")
	return nil
}

// Prune deletes synced sales older than retention and reports the number of
// removed records. Unsynced sales are never pruned.
func (q *Queue) Prune(ctx context.Context, tenantID string, retention time.Duration) (int64, error) {
	cutoff := q.now().Add(-retention).UnixMilli()

	removed, err := q.sales.PruneSynced(ctx, tenantID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune synced sales: %w", err)
	}
	if removed > 0 {
		q.logger.Debug().Int64("removed", removed).Msg("pruned synced sales")
	}
	return removed, nil
}

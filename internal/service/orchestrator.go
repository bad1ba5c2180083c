package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/internal/remote"
	"github.com/retailpoint/possync/internal/store"
	"github.com/retailpoint/possync/internal/utils"
	"github.com/retailpoint/possync/models"
)

// OnlineChecker reports current connectivity. The connectivity monitor
// satisfies it.
type OnlineChecker interface {
	IsOnline() bool
}

// Orchestrator drives the two sync flows: pushing locally captured sales to
// the remote store and pulling the product catalog down into the local
// cache. At most one pass runs at a time; a trigger arriving while a pass is
// in flight is a silent no-op.
//
// Triggers (reconnect, interval tick, manual request) all funnel into the
// same entry points, so every pass has identical semantics regardless of
// what started it.
type Orchestrator struct {
	queue    *Queue
	products store.ProductCacheRepository
	resolver *ConflictResolver
	remote   remote.Store
	online   OnlineChecker
	status   *StatusTracker
	ids      *utils.UUIDGenerator
	logger   *logger.Logger

	inFlight atomic.Bool
	now      func() time.Time
}

func NewOrchestrator(
	queue *Queue,
	products store.ProductCacheRepository,
	resolver *ConflictResolver,
	remoteStore remote.Store,
	online OnlineChecker,
	status *StatusTracker,
	log *logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		queue:    queue,
		products: products,
		resolver: resolver,
		remote:   remoteStore,
		online:   online,
		status:   status,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
		now:      time.Now,
	}
}

// SyncAll runs a full pass: push pending sales first, then pull the product
// catalog. Push-before-pull keeps the stock levels arriving with the pull
// consistent with the sales this device just applied.
func (o *Orchestrator) SyncAll(ctx context.Context, tenantID string) models.SyncResult {
	return o.run(ctx, func(ctx context.Context) models.SyncResult {
		res := o.pushPending(ctx, tenantID)
		return res.Merge(o.pullProducts(ctx, tenantID))
	})
}

// PushPending runs a push-only pass.
func (o *Orchestrator) PushPending(ctx context.Context, tenantID string) models.SyncResult {
	return o.run(ctx, func(ctx context.Context) models.SyncResult {
		return o.pushPending(ctx, tenantID)
	})
}

// PullProducts runs a pull-only pass.
func (o *Orchestrator) PullProducts(ctx context.Context, tenantID string) models.SyncResult {
	return o.run(ctx, func(ctx context.Context) models.SyncResult {
		return o.pullProducts(ctx, tenantID)
	})
}

// run enforces the single-flight and offline guards shared by all passes.
func (o *Orchestrator) run(ctx context.Context, pass func(ctx context.Context) models.SyncResult) models.SyncResult {
	if !o.inFlight.CompareAndSwap(false, true) {
		o.logger.Debug().Msg("sync already in flight, trigger ignored")
		return models.SyncResult{}
	}
	defer o.inFlight.Store(false)

	if !o.online.IsOnline() {
		o.logger.Debug().Msg("device offline, sync skipped")
		return models.SyncResult{}
	}

	res := pass(ctx)
	if o.status != nil {
		o.status.SetLastResult(res, o.now())
	}
	return res
}

// pushPending pushes the tenant's unsynced sales oldest-first. A failing
// record is recorded and skipped; the rest of the batch still runs.
func (o *Orchestrator) pushPending(ctx context.Context, tenantID string) models.SyncResult {
	sales, err := o.queue.Pending(ctx, tenantID)
	if err != nil {
		o.logger.Err(err).Str("func", "pushPending").Msg("error loading pending queue")
		return models.SyncResult{Failed: 1}
	}

	res := models.SyncResult{Success: true}
	for _, sale := range sales {
		if err = o.pushOne(ctx, sale); err != nil {
			res.Success = false
			res.Failed++
			continue
		}
		res.Synced++
	}

	if len(sales) > 0 {
		o.logger.Info().Int("synced", res.Synced).Int("failed", res.Failed).
			Msg("push pass finished")
	}
	return res
}

// pushOne applies a single sale remotely. The sale id doubles as the
// idempotency key, so a sale that was already applied (a previous pass died
// between the remote write and the local synced flag) is detected up front
// and only re-marked locally.
//
// The remote write is two steps (sale header, then items). If the items step
// fails, the header is deleted so the remote store never keeps a partial
// sale.
func (o *Orchestrator) pushOne(ctx context.Context, sale models.PendingSale) error {
	existing, err := o.remote.FindSaleByKey(ctx, sale.ID)
	switch {
	case err == nil:
		o.logger.Debug().Str("sale_id", sale.ID).Str("remote_id", existing.RemoteID).
			Msg("sale already durable remotely")
		return o.markSynced(ctx, sale)
	case !errors.Is(err, remote.ErrNotFound):
		return o.fail(ctx, sale, fmt.Errorf("lookup sale: %w", err))
	}

	remoteID, err := o.remote.CreateSale(ctx, sale)
	if err != nil {
		return o.fail(ctx, sale, fmt.Errorf("create sale: %w", err))
	}

	if err = o.remote.CreateSaleItems(ctx, remoteID, sale.Items); err != nil {
		if delErr := o.remote.DeleteSale(ctx, remoteID); delErr != nil {
			// The compensating delete failed too: the remote sale is now
			// orphaned and needs manual reconciliation.
			o.logger.Error().Err(delErr).
				Str("sale_id", sale.ID).
				Str("remote_id", remoteID).
				Msg("compensating delete failed, orphaned remote sale")
		}
		return o.fail(ctx, sale, fmt.Errorf("create sale items: %w", err))
	}

	if err = o.deductStock(ctx, sale); err != nil {
		return o.fail(ctx, sale, err)
	}

	return o.markSynced(ctx, sale)
}

// deductStock decrements remote stock per item and appends a stock-history
// movement for each deduction. Stock is clamped at zero: an oversell leaves
// zero on hand, never a negative level.
func (o *Orchestrator) deductStock(ctx context.Context, sale models.PendingSale) error {
	occurredAt := o.now().UnixMilli()

	for _, item := range sale.Items {
		stock, err := o.remote.GetProductStock(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("get stock for %s: %w", item.ProductID, err)
		}

		next := stock - item.Quantity
		if next < 0 {
			o.logger.Warn().Str("product_id", item.ProductID).
				Float64("stock", stock).Float64("quantity", item.Quantity).
				Msg("stock deduction clamped at zero")
			next = 0
		}

		if err = o.remote.SetProductStock(ctx, item.ProductID, next, occurredAt); err != nil {
			return fmt.Errorf("set stock for %s: %w", item.ProductID, err)
		}

		movement := models.StockMovement{
			ProductID:   item.ProductID,
			Delta:       -item.Quantity,
			Reason:      models.StockReasonSale,
			ReferenceID: sale.ID,
			OccurredAt:  occurredAt,
		}
		if err = o.remote.AppendStockHistory(ctx, movement); err != nil {
			return fmt.Errorf("append stock history for %s: %w", item.ProductID, err)
		}
	}

	return nil
}

func (o *Orchestrator) markSynced(ctx context.Context, sale models.PendingSale) error {
	if err := o.queue.MarkSynced(ctx, sale); err != nil {
		o.logger.Err(err).Str("func", "markSynced").Str("sale_id", sale.ID).
			Msg("sale durable remotely but local synced flag not persisted")
		return err
	}
	return nil
}

func (o *Orchestrator) fail(ctx context.Context, sale models.PendingSale, cause error) error {
	// Bookkeeping only; the push failure itself is what the caller reports.
	_ = o.queue.RecordFailure(ctx, sale, cause)
	return cause
}

// pullProducts refreshes the local product cache from the remote snapshot of
// active products.
//
// Per remote record: insert when unseen, overwrite when the cached copy is
// clean, resolve last-write-wins when the cached copy carries unsynced local
// edits. Records failing validation are skipped and counted as failures.
// Cached clean products absent from the snapshot were deactivated remotely
// and are evicted; dirty ones are kept so local edits are never silently
// dropped.
func (o *Orchestrator) pullProducts(ctx context.Context, tenantID string) models.SyncResult {
	snapshot, err := o.remote.ListActiveProducts(ctx, tenantID)
	if err != nil {
		o.logger.Err(err).Str("func", "pullProducts").Msg("error fetching product snapshot")
		return models.SyncResult{Failed: 1}
	}

	res := models.SyncResult{Success: true}
	active := make(map[string]struct{}, len(snapshot))

	for _, remoteProd := range snapshot {
		if remoteProd.TenantID == "" {
			remoteProd.TenantID = tenantID
		}
		if err = remoteProd.Validate(); err != nil {
			o.logger.Warn().Err(err).Str("remote_id", remoteProd.RemoteID).
				Msg("invalid product record skipped")
			res.Success = false
			res.Failed++
			// Still active remotely: skipping the record must leave the
			// cached copy alone, so it must not fall out of the active set.
			if remoteProd.RemoteID != "" {
				active[remoteProd.RemoteID] = struct{}{}
			}
			continue
		}
		active[remoteProd.RemoteID] = struct{}{}

		local, err := o.products.GetByRemoteID(ctx, remoteProd.RemoteID)
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			remoteProd.LocalID = o.ids.Generate()
			remoteProd.Synced = true
			if _, err = o.products.Put(ctx, remoteProd); err != nil {
				o.logger.Err(err).Str("remote_id", remoteProd.RemoteID).
					Msg("error caching new product")
				res.Success = false
				res.Failed++
				continue
			}
			res.Synced++

		case err != nil:
			o.logger.Err(err).Str("remote_id", remoteProd.RemoteID).
				Msg("error reading cached product")
			res.Success = false
			res.Failed++

		case local.Synced:
			if err = o.overwrite(ctx, local.LocalID, remoteProd); err != nil {
				res.Success = false
				res.Failed++
				continue
			}
			res.Synced++

		default:
			entry, err := o.resolver.ResolveAndLog(ctx,
				tenantID, models.EntityTypeProduct, remoteProd.RemoteID,
				local, remoteProd,
				local.UpdatedAt, remoteProd.UpdatedAt)
			if err != nil {
				res.Success = false
				res.Failed++
				continue
			}
			res.Conflicts = append(res.Conflicts, entry)

			if entry.Resolution == models.ResolutionRemote {
				if err = o.overwrite(ctx, local.LocalID, remoteProd); err != nil {
					res.Success = false
					res.Failed++
					continue
				}
			}
			// Local win: the cache keeps the local copy untouched. Product
			// edits are not propagated upstream; the winning copy simply
			// survives until the remote version overtakes it.
			res.Synced++
		}
	}

	o.evictInactive(ctx, tenantID, active, &res)

	o.logger.Info().Int("synced", res.Synced).Int("failed", res.Failed).
		Int("conflicts", len(res.Conflicts)).Msg("pull pass finished")
	return res
}

// overwrite replaces the cached copy with the remote version, preserving the
// device-local identifier.
func (o *Orchestrator) overwrite(ctx context.Context, localID string, remoteProd models.Product) error {
	remoteProd.LocalID = localID
	remoteProd.Synced = true

	if _, err := o.products.Put(ctx, remoteProd); err != nil {
		o.logger.Err(err).Str("func", "overwrite").Str("local_id", localID).
			Msg("error overwriting cached product")
		return err
	}
	return nil
}

// evictInactive removes clean cached products that vanished from the remote
// active set. Dirty entries and entries never pulled (empty RemoteID) stay.
func (o *Orchestrator) evictInactive(ctx context.Context, tenantID string, active map[string]struct{}, res *models.SyncResult) {
	cached, err := o.products.GetByIndex(ctx, "tenant_id", tenantID)
	if err != nil {
		o.logger.Err(err).Str("func", "evictInactive").Msg("error enumerating cached products")
		res.Success = false
		res.Failed++
		return
	}

	for _, c := range cached {
		if c.RemoteID == "" || !c.Synced {
			continue
		}
		if _, ok := active[c.RemoteID]; ok {
			continue
		}
		if err = o.products.Delete(ctx, c.LocalID); err != nil {
			o.logger.Err(err).Str("local_id", c.LocalID).Msg("error evicting inactive product")
			res.Success = false
			res.Failed++
			continue
		}
		o.logger.Debug().Str("sku", c.SKU).Msg("inactive product evicted from cache")
	}
}

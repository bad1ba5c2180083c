package store

import (
	"context"

	"github.com/retailpoint/possync/models"
)

// ProductCacheRepository is the durable local cache of remotely-owned catalog
// products. Put is an unconditional upsert by LocalID; every operation is an
// isolated atomic transaction.
type ProductCacheRepository interface {
	Put(ctx context.Context, p models.Product) (models.Product, error)
	Get(ctx context.Context, localID string) (models.Product, error)
	// GetByRemoteID resolves a cached product by its server-assigned id.
	// Returns ErrProductNotFound when the product has never been pulled.
	GetByRemoteID(ctx context.Context, remoteID string) (models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	// GetByIndex enumerates products by one of the declared secondary
	// indexes ("tenant_id", "remote_id", "sku", "synced").
	GetByIndex(ctx context.Context, index string, value any) ([]models.Product, error)
	Delete(ctx context.Context, localID string) error
	Clear(ctx context.Context) error
}

// PendingSaleRepository is the durable queue of sales awaiting remote
// application.
type PendingSaleRepository interface {
	Put(ctx context.Context, s models.PendingSale) (models.PendingSale, error)
	Get(ctx context.Context, id string) (models.PendingSale, error)
	GetAll(ctx context.Context) ([]models.PendingSale, error)
	// GetByIndex enumerates sales by one of the declared secondary indexes
	// ("tenant_id", "synced").
	GetByIndex(ctx context.Context, index string, value any) ([]models.PendingSale, error)
	// GetPending returns the unsynced sales for a tenant ordered by
	// creation timestamp ascending (oldest first).
	GetPending(ctx context.Context, tenantID string) ([]models.PendingSale, error)
	CountPending(ctx context.Context, tenantID string) (int, error)
	// PruneSynced deletes synced sales created before olderThan (ms epoch)
	// and reports how many rows were removed.
	PruneSynced(ctx context.Context, tenantID string, olderThan int64) (int64, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// ConflictLogRepository is the append-only conflict audit trail. Entries are
// immutable once written; Clear exists only for maintenance and tests.
type ConflictLogRepository interface {
	Append(ctx context.Context, e models.ConflictLogEntry) (models.ConflictLogEntry, error)
	Get(ctx context.Context, id string) (models.ConflictLogEntry, error)
	GetAll(ctx context.Context) ([]models.ConflictLogEntry, error)
	// GetByIndex enumerates entries by one of the declared secondary
	// indexes ("tenant_id", "entity_type").
	GetByIndex(ctx context.Context, index string, value any) ([]models.ConflictLogEntry, error)
	Clear(ctx context.Context) error
}

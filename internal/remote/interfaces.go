package remote

import (
	"context"

	"github.com/retailpoint/possync/models"
)

// Store is the narrow contract the sync engine holds on the remote source of
// truth. Two implementations exist: an HTTP adapter for the hosted API and a
// direct Postgres adapter for deployments without an API tier.
//
// Lookup methods return [ErrNotFound] for absent records; every other error
// is a remote-call failure the orchestrator records per-record.
type Store interface {
	// Ping reports whether the remote store is reachable. It backs the
	// connection monitor's reachability probe; success is best-effort and
	// does not guarantee the next call succeeds.
	Ping(ctx context.Context) error

	// FindSaleByKey looks up a sale by its client-generated idempotency
	// key.
	FindSaleByKey(ctx context.Context, key string) (models.RemoteSale, error)

	// CreateSale creates the remote sale record and returns its
	// server-assigned id. The sale's ID field travels as the idempotency
	// key.
	CreateSale(ctx context.Context, sale models.PendingSale) (string, error)

	// CreateSaleItems attaches the line items to a created sale.
	CreateSaleItems(ctx context.Context, remoteSaleID string, items []models.SaleItem) error

	// DeleteSale removes a sale record; used as the compensating rollback
	// when line-item creation fails after the parent was created.
	DeleteSale(ctx context.Context, remoteSaleID string) error

	GetProductStock(ctx context.Context, productID string) (float64, error)
	SetProductStock(ctx context.Context, productID string, stock float64, updatedAt int64) error
	AppendStockHistory(ctx context.Context, movement models.StockMovement) error

	// ListActiveProducts returns the remote snapshot of all active
	// products for the tenant, each carrying its server-assigned
	// last-modified timestamp.
	ListActiveProducts(ctx context.Context, tenantID string) ([]models.Product, error)
}

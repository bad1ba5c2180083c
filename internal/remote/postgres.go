package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailpoint/possync/internal/config"
	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/models"
)

const (
	pgFindSaleByKey = `
		SELECT id, idempotency_key, tenant_id, user_id, total, created_at
		FROM sales
		WHERE idempotency_key = $1;`

	pgInsertSale = `
		INSERT INTO sales (idempotency_key, tenant_id, user_id, total, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`

	pgInsertSaleItem = `
		INSERT INTO sale_items (sale_id, product_id, sku, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6);`

	pgDeleteSaleItems = `
		DELETE FROM sale_items WHERE sale_id = $1;`

	pgDeleteSale = `
		DELETE FROM sales WHERE id = $1;`

	pgGetProductStock = `
		SELECT stock FROM products WHERE id = $1;`

	pgSetProductStock = `
		UPDATE products SET stock = $2, updated_at = $3 WHERE id = $1;`

	pgAppendStockHistory = `
		INSERT INTO stock_history (product_id, delta, reason, reference_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5);`

	pgListActiveProducts = `
		SELECT id, tenant_id, sku, name, unit_price, unit, default_qty, stock, updated_at
		FROM products
		WHERE tenant_id = $1 AND active = true;`
)

type postgresStore struct {
	pool   *pgxpool.Pool
	logger *logger.Logger
}

// NewPostgresStore constructs the direct-Postgres implementation of [Store]
// for deployments that reach the hosted relational backend without an HTTP
// API tier. Construction only fails on an unparseable URI; an unreachable
// backend is reported as Offline by the monitor and surfaces on the first
// sync pass instead.
func NewPostgresStore(ctx context.Context, cfg config.Remote, log *logger.Logger) (*postgresStore, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURI)
	if err != nil {
		log.Err(err).Str("func", "NewPostgresStore").Msg("error creating remote database pool")
		return nil, fmt.Errorf("error creating remote database pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		// Startup may happen disconnected; keep the pool, it reconnects on
		// its own once the backend is reachable again.
		log.Warn().Err(err).Str("func", "NewPostgresStore").
			Msg("remote database unreachable, continuing offline")
	} else {
		log.Debug().Str("func", "NewPostgresStore").Msg("connected to remote database successfully")
	}

	return &postgresStore{pool: pool, logger: log}, nil
}

// Close releases the underlying connection pool.
func (p *postgresStore) Close() {
	p.pool.Close()
}

func (p *postgresStore) Ping(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

func (p *postgresStore) FindSaleByKey(ctx context.Context, key string) (models.RemoteSale, error) {
	var sale models.RemoteSale

	row := p.pool.QueryRow(ctx, pgFindSaleByKey, key)
	err := row.Scan(&sale.RemoteID, &sale.IdempotencyKey, &sale.TenantID, &sale.UserID, &sale.Total, &sale.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.RemoteSale{}, ErrNotFound
		}
		return models.RemoteSale{}, fmt.Errorf("find sale by key: %w", err)
	}

	return sale, nil
}

func (p *postgresStore) CreateSale(ctx context.Context, sale models.PendingSale) (string, error) {
	var remoteID string

	row := p.pool.QueryRow(ctx, pgInsertSale,
		sale.ID, sale.TenantID, sale.UserID, sale.Total, sale.CreatedAt)
	err := row.Scan(&remoteID)
	if err != nil {
		// A concurrent or earlier push may have won the race on the
		// idempotency key; the sale is durable either way.
		if isUniqueViolation(err) {
			existing, findErr := p.FindSaleByKey(ctx, sale.ID)
			if findErr != nil {
				return "", fmt.Errorf("resolve duplicate sale %s: %w", sale.ID, findErr)
			}
			return existing.RemoteID, nil
		}
		return "", fmt.Errorf("create sale: %w", err)
	}

	return remoteID, nil
}

func (p *postgresStore) CreateSaleItems(ctx context.Context, remoteSaleID string, items []models.SaleItem) error {
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(pgInsertSaleItem,
			remoteSaleID, it.ProductID, it.SKU, it.Quantity, it.UnitPrice, it.Subtotal)
	}

	results := p.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("create sale items for %s: %w", remoteSaleID, err)
		}
	}

	return nil
}

func (p *postgresStore) DeleteSale(ctx context.Context, remoteSaleID string) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete sale %s: %w", remoteSaleID, err)
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, pgDeleteSaleItems, remoteSaleID); err != nil {
		return fmt.Errorf("delete sale items for %s: %w", remoteSaleID, err)
	}
	if _, err = tx.Exec(ctx, pgDeleteSale, remoteSaleID); err != nil {
		return fmt.Errorf("delete sale %s: %w", remoteSaleID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete sale %s: %w", remoteSaleID, err)
	}
	return nil
}

func (p *postgresStore) GetProductStock(ctx context.Context, productID string) (float64, error) {
	var stock float64

	row := p.pool.QueryRow(ctx, pgGetProductStock, productID)
	if err := row.Scan(&stock); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("get product stock %s: %w", productID, err)
	}

	return stock, nil
}

func (p *postgresStore) SetProductStock(ctx context.Context, productID string, stock float64, updatedAt int64) error {
	tag, err := p.pool.Exec(ctx, pgSetProductStock, productID, stock, updatedAt)
	if err != nil {
		return fmt.Errorf("set product stock %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *postgresStore) AppendStockHistory(ctx context.Context, movement models.StockMovement) error {
	_, err := p.pool.Exec(ctx, pgAppendStockHistory,
		movement.ProductID, movement.Delta, movement.Reason, movement.ReferenceID, movement.OccurredAt)
	if err != nil {
		return fmt.Errorf("append stock history for %s: %w", movement.ProductID, err)
	}
	return nil
}

func (p *postgresStore) ListActiveProducts(ctx context.Context, tenantID string) ([]models.Product, error) {
	rows, err := p.pool.Query(ctx, pgListActiveProducts, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var prod models.Product
		err = rows.Scan(
			&prod.RemoteID,
			&prod.TenantID,
			&prod.SKU,
			&prod.Name,
			&prod.UnitPrice,
			&prod.Unit,
			&prod.DefaultQty,
			&prod.Stock,
			&prod.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product snapshot: %w", err)
		}
		products = append(products, prod)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product snapshot: %w", err)
	}

	return products, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

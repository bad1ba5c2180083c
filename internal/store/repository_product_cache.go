package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/models"
)

var productColumns = []string{
	"local_id", "remote_id", "tenant_id", "sku", "name",
	"unit_price", "unit", "default_qty", "stock", "updated_at", "synced",
}

// productIndexes whitelists the secondary indexes GetByIndex may query.
var productIndexes = map[string]struct{}{
	"tenant_id": {},
	"remote_id": {},
	"sku":       {},
	"synced":    {},
}

type productCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewProductCacheRepository(db *DB, logger *logger.Logger) ProductCacheRepository {
	return &productCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *productCacheRepository) Put(ctx context.Context, p models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertProduct,
		p.LocalID,
		p.RemoteID,
		p.TenantID,
		p.SKU,
		p.Name,
		p.UnitPrice,
		p.Unit,
		p.DefaultQty,
		p.Stock,
		p.UpdatedAt,
		p.Synced,
	)
	if err != nil {
		log.Err(err).
			Str("func", "productCacheRepository.Put").
			Str("local_id", p.LocalID).
			Str("sku", p.SKU).
			Msg("failed to execute upsert for cached product")
		return models.Product{}, fmt.Errorf("failed to save cached product (local_id=%s): %w", p.LocalID, err)
	}

	return p, nil
}

func (r *productCacheRepository) Get(ctx context.Context, localID string) (models.Product, error) {
	return r.getOne(ctx, getProduct, localID)
}

func (r *productCacheRepository) GetByRemoteID(ctx context.Context, remoteID string) (models.Product, error) {
	return r.getOne(ctx, getProductByRemoteID, remoteID)
}

func (r *productCacheRepository) getOne(ctx context.Context, query, key string) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, query, key)

	p, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).
			Str("func", "productCacheRepository.getOne").
			Str("key", key).
			Msg("failed to scan cached product row")
		return models.Product{}, fmt.Errorf("failed to scan cached product row: %w", err)
	}

	return p, nil
}

func (r *productCacheRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.queryMany(ctx, getAllProducts)
}

func (r *productCacheRepository) GetByIndex(ctx context.Context, index string, value any) ([]models.Product, error) {
	if _, ok := productIndexes[index]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndex, index)
	}

	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(productColumns...).
		From("product_cache").
		Where(sq.Eq{index: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build index query: %w", err)
	}

	return r.queryMany(ctx, query, args...)
}

func (r *productCacheRepository) queryMany(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "productCacheRepository.queryMany").
			Msg("failed to execute query for cached products")
		return nil, fmt.Errorf("failed to query cached products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, scanErr := scanProduct(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "productCacheRepository.queryMany").
				Msg("failed to scan cached product rows")
			return nil, fmt.Errorf("failed to scan cached product rows: %w", scanErr)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached product rows: %w", err)
	}

	return products, nil
}

func (r *productCacheRepository) Delete(ctx context.Context, localID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteProduct, localID); err != nil {
		log.Err(err).
			Str("func", "productCacheRepository.Delete").
			Str("local_id", localID).
			Msg("failed to delete cached product")
		return fmt.Errorf("failed to delete cached product (local_id=%s): %w", localID, err)
	}

	return nil
}

func (r *productCacheRepository) Clear(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, clearProducts); err != nil {
		return fmt.Errorf("failed to clear product cache: %w", err)
	}

	return nil
}

func scanProduct(scan func(dest ...any) error) (models.Product, error) {
	var p models.Product
	var remoteID sql.NullString

	err := scan(
		&p.LocalID,
		&remoteID,
		&p.TenantID,
		&p.SKU,
		&p.Name,
		&p.UnitPrice,
		&p.Unit,
		&p.DefaultQty,
		&p.Stock,
		&p.UpdatedAt,
		&p.Synced,
	)
	if err != nil {
		return models.Product{}, err
	}

	p.RemoteID = remoteID.String
	return p, nil
}

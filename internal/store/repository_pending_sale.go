package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/models"
)

var pendingSaleColumns = []string{
	"id", "tenant_id", "user_id", "items", "total",
	"created_at", "synced", "attempts", "last_error",
}

// pendingSaleIndexes whitelists the secondary indexes GetByIndex may query.
var pendingSaleIndexes = map[string]struct{}{
	"tenant_id": {},
	"synced":    {},
}

type pendingSaleRepository struct {
	*DB
	logger *logger.Logger
}

func NewPendingSaleRepository(db *DB, logger *logger.Logger) PendingSaleRepository {
	return &pendingSaleRepository{
		DB:     db,
		logger: logger,
	}
}

// Put upserts the sale in a single statement, so the write is atomic: it
// either fully commits or has no effect. Line items travel as a JSON column;
// the remote side is the only consumer that needs them relational.
func (r *pendingSaleRepository) Put(ctx context.Context, s models.PendingSale) (models.PendingSale, error) {
	log := logger.FromContext(ctx)

	items, err := json.Marshal(s.Items)
	if err != nil {
		return models.PendingSale{}, fmt.Errorf("failed to encode sale items (id=%s): %w", s.ID, err)
	}

	_, err = r.DB.ExecContext(ctx, upsertPendingSale,
		s.ID,
		s.TenantID,
		s.UserID,
		string(items),
		s.Total,
		s.CreatedAt,
		s.Synced,
		s.Attempts,
		s.LastError,
	)
	if err != nil {
		log.Err(err).
			Str("func", "pendingSaleRepository.Put").
			Str("sale_id", s.ID).
			Msg("failed to execute upsert for pending sale")
		return models.PendingSale{}, fmt.Errorf("failed to save pending sale (id=%s): %w", s.ID, err)
	}

	return s, nil
}

func (r *pendingSaleRepository) Get(ctx context.Context, id string) (models.PendingSale, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getPendingSale, id)

	s, err := scanPendingSale(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PendingSale{}, ErrSaleNotFound
		}
		log.Err(err).
			Str("func", "pendingSaleRepository.Get").
			Str("sale_id", id).
			Msg("failed to scan pending sale row")
		return models.PendingSale{}, fmt.Errorf("failed to scan pending sale row: %w", err)
	}

	return s, nil
}

func (r *pendingSaleRepository) GetAll(ctx context.Context) ([]models.PendingSale, error) {
	return r.queryMany(ctx, getAllPendingSales)
}

func (r *pendingSaleRepository) GetByIndex(ctx context.Context, index string, value any) ([]models.PendingSale, error) {
	if _, ok := pendingSaleIndexes[index]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndex, index)
	}

	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(pendingSaleColumns...).
		From("pending_sales").
		Where(sq.Eq{index: value}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build index query: %w", err)
	}

	return r.queryMany(ctx, query, args...)
}

func (r *pendingSaleRepository) GetPending(ctx context.Context, tenantID string) ([]models.PendingSale, error) {
	return r.queryMany(ctx, getPendingQueue, tenantID)
}

func (r *pendingSaleRepository) CountPending(ctx context.Context, tenantID string) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	row := r.DB.QueryRowContext(ctx, countPendingSales, tenantID)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "pendingSaleRepository.CountPending").
			Str("tenant_id", tenantID).
			Msg("failed to count pending sales")
		return 0, fmt.Errorf("failed to count pending sales: %w", err)
	}

	return count, nil
}

func (r *pendingSaleRepository) PruneSynced(ctx context.Context, tenantID string, olderThan int64) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, pruneSyncedSales, tenantID, olderThan)
	if err != nil {
		log.Err(err).
			Str("func", "pendingSaleRepository.PruneSynced").
			Str("tenant_id", tenantID).
			Msg("failed to prune synced sales")
		return 0, fmt.Errorf("failed to prune synced sales: %w", err)
	}

	pruned, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read pruned row count: %w", err)
	}

	return pruned, nil
}

func (r *pendingSaleRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deletePendingSale, id); err != nil {
		log.Err(err).
			Str("func", "pendingSaleRepository.Delete").
			Str("sale_id", id).
			Msg("failed to delete pending sale")
		return fmt.Errorf("failed to delete pending sale (id=%s): %w", id, err)
	}

	return nil
}

func (r *pendingSaleRepository) Clear(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, clearPendingSales); err != nil {
		return fmt.Errorf("failed to clear pending sales: %w", err)
	}

	return nil
}

func (r *pendingSaleRepository) queryMany(ctx context.Context, query string, args ...any) ([]models.PendingSale, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "pendingSaleRepository.queryMany").
			Msg("failed to execute query for pending sales")
		return nil, fmt.Errorf("failed to query pending sales: %w", err)
	}
	defer rows.Close()

	var sales []models.PendingSale
	for rows.Next() {
		s, scanErr := scanPendingSale(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "pendingSaleRepository.queryMany").
				Msg("failed to scan pending sale rows")
			return nil, fmt.Errorf("failed to scan pending sale rows: %w", scanErr)
		}
		sales = append(sales, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending sale rows: %w", err)
	}

	return sales, nil
}

func scanPendingSale(scan func(dest ...any) error) (models.PendingSale, error) {
	var s models.PendingSale
	var items string

	err := scan(
		&s.ID,
		&s.TenantID,
		&s.UserID,
		&items,
		&s.Total,
		&s.CreatedAt,
		&s.Synced,
		&s.Attempts,
		&s.LastError,
	)
	if err != nil {
		return models.PendingSale{}, err
	}

	if err = json.Unmarshal([]byte(items), &s.Items); err != nil {
		return models.PendingSale{}, fmt.Errorf("failed to decode sale items (id=%s): %w", s.ID, err)
	}

	return s, nil
}

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

var conflictColumns = []string{
	"id", "tenant_id", "entity_type", "entity_id",
	"local_snapshot", "remote_snapshot", "resolution", "resolved_at",
}

// conflictIndexes whitelists the secondary indexes GetByIndex may query.
var conflictIndexes = map[string]struct{}{
	"tenant_id":   {},
	"entity_type": {},
}

type conflictLogRepository struct {
	*DB
	logger *logger.Logger
}

func NewConflictLogRepository(db *DB, logger *logger.Logger) ConflictLogRepository {
	return &conflictLogRepository{
		DB:     db,
		logger: logger,
	}
}

// Append writes one audit entry. The table is insert-only: entries are never
// updated, so a plain INSERT keeps the append-only invariant.
func (r *conflictLogRepository) Append(ctx context.Context, e models.ConflictLogEntry) (models.ConflictLogEntry, error) {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertConflictEntry,
		e.ID,
		e.TenantID,
		e.EntityType,
		e.EntityID,
		e.LocalSnapshot,
		e.RemoteSnapshot,
		string(e.Resolution),
		e.ResolvedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "conflictLogRepository.Append").
			Str("entity_id", e.EntityID).
			Msg("failed to append conflict log entry")
		return models.ConflictLogEntry{}, fmt.Errorf("failed to append conflict entry (entity_id=%s): %w", e.EntityID, err)
	}

	return e, nil
}

func (r *conflictLogRepository) Get(ctx context.Context, id string) (models.ConflictLogEntry, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getConflictEntry, id)

	e, err := scanConflictEntry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ConflictLogEntry{}, ErrConflictEntryNotFound
		}
		log.Err(err).
			Str("func", "conflictLogRepository.Get").
			Str("id", id).
			Msg("failed to scan conflict log row")
		return models.ConflictLogEntry{}, fmt.Errorf("failed to scan conflict log row: %w", err)
	}

	return e, nil
}

func (r *conflictLogRepository) GetAll(ctx context.Context) ([]models.ConflictLogEntry, error) {
	return r.queryMany(ctx, getAllConflictEntries)
}

func (r *conflictLogRepository) GetByIndex(ctx context.Context, index string, value any) ([]models.ConflictLogEntry, error) {
	if _, ok := conflictIndexes[index]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndex, index)
	}

	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(conflictColumns...).
		From("conflict_log").
		Where(sq.Eq{index: value}).
		OrderBy("resolved_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build index query: %w", err)
	}

	return r.queryMany(ctx, query, args...)
}

func (r *conflictLogRepository) Clear(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, clearConflictEntries); err != nil {
		return fmt.Errorf("failed to clear conflict log: %w", err)
	}

	return nil
}

func (r *conflictLogRepository) queryMany(ctx context.Context, query string, args ...any) ([]models.ConflictLogEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "conflictLogRepository.queryMany").
			Msg("failed to execute query for conflict log")
		return nil, fmt.Errorf("failed to query conflict log: %w", err)
	}
	defer rows.Close()

	var entries []models.ConflictLogEntry
	for rows.Next() {
		e, scanErr := scanConflictEntry(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "conflictLogRepository.queryMany").
				Msg("failed to scan conflict log rows")
			return nil, fmt.Errorf("failed to scan conflict log rows: %w", scanErr)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conflict log rows: %w", err)
	}

	return entries, nil
}

func scanConflictEntry(scan func(dest ...any) error) (models.ConflictLogEntry, error) {
	var e models.ConflictLogEntry
	var resolution string

	err := scan(
		&e.ID,
		&e.TenantID,
		&e.EntityType,
		&e.EntityID,
		&e.LocalSnapshot,
		&e.RemoteSnapshot,
		&resolution,
		&e.ResolvedAt,
	)
	if err != nil {
		return models.ConflictLogEntry{}, err
	}

	e.Resolution = models.Resolution(resolution)
	return e, nil
}

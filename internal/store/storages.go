package store

import (
	"context"
	"fmt"

	"github.com/retailpoint/possync/internal/config"
	"github.com/retailpoint/possync/internal/logger"
)

// Storages groups the three on-device collections into a single value that is
// passed around the engine.
type Storages struct {
	// Products is the local cache of remotely-owned catalog products.
	Products ProductCacheRepository
	// PendingSales is the durable queue of sales awaiting remote
	// application.
	PendingSales PendingSaleRepository
	// Conflicts is the append-only conflict audit trail.
	Conflicts ConflictLogRepository

	// Degraded is true when the on-device database could not be opened and
	// the repositories above are volatile in-memory fallbacks.
	Degraded bool
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to the SQLite-backed
//     repositories.
//
// If the database cannot be opened or migrated, NewStorages returns a usable
// *Storages backed by in-memory repositories together with
// [ErrStorageUnavailable]. Callers must treat that error as a warning, not a
// fatal condition: sales captured in degraded mode are lost on restart, but
// the operator's workflow continues.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		log.Warn().Err(err).Msg("local database unavailable, falling back to in-memory storage")
		return newMemoryStorages(), fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := db.Migrate(); err != nil {
		log.Warn().Err(err).Msg("migration failed, falling back to in-memory storage")
		return newMemoryStorages(), fmt.Errorf("%w: migration failed: %w", ErrStorageUnavailable, err)
	}

	return &Storages{
		Products:     NewProductCacheRepository(db, log),
		PendingSales: NewPendingSaleRepository(db, log),
		Conflicts:    NewConflictLogRepository(db, log),
	}, nil
}

func newMemoryStorages() *Storages {
	return &Storages{
		Products:     NewMemoryProductRepository(),
		PendingSales: NewMemoryPendingSaleRepository(),
		Conflicts:    NewMemoryConflictLogRepository(),
		Degraded:     true,
	}
}

package store

import (
	"database/sql"

	"github.com/retailpoint/possync/internal/logger"
	"github.com/retailpoint/possync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

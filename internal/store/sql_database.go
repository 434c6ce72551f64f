package store

import (
	"database/sql"

	"github.com/MKhiriev/go-album-client/internal/logger"
	"github.com/MKhiriev/go-album-client/migrations"
)

// DB wraps the SQLite connection pool used by the session storage.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

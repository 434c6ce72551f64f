package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-album-client/internal/config"
	"github.com/MKhiriev/go-album-client/internal/logger"
)

// ClientStorages groups the client-side storage used by the album client.
type ClientStorages struct {
	// SessionID identifies the storage session. Empty when no session
	// storage is configured.
	SessionID string

	// TokenStore persists the bearer token. It is a [NopTokenStore] when no
	// session storage is configured.
	TokenStore TokenStore

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. With cfg.Session.InMemory, session items live in process memory for
//     the lifetime of the client.
//  2. Without a DSN, session storage is unavailable and the token store is a
//     [NopTokenStore].
//  3. Otherwise it opens the SQLite database at cfg.DB.DSN, runs pending
//     migrations and scopes a [SessionStorage] to cfg.Session.ID, or to a
//     fresh session id when none is configured.
//
// With cfg.Session.Reset every item of the session is deleted before the
// storages are returned.
//
// Returns an error if the database connection cannot be established, if
// migration fails or if the session cannot be reset.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if !cfg.Session.InMemory && cfg.DB.DSN == "" {
		logger.Info().Msg("session storage is not configured, token is kept in memory only")
		return &ClientStorages{TokenStore: NopTokenStore{}}, nil
	}

	sessionID := cfg.Session.ID
	if sessionID == "" {
		sessionID = NewSessionID()
	}

	storages := &ClientStorages{SessionID: sessionID}

	var sessions SessionStorage
	if cfg.Session.InMemory {
		logger.Info().Msg("using in-memory session storage")
		sessions = NewMemorySessionStorage()
	} else {
		logger.Info().Msg("creating new storages...")

		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		storages.db = db
		sessions = NewSQLiteSessionStorage(db, sessionID, logger)
	}

	if cfg.Session.Reset {
		if err := sessions.Clear(ctx); err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("reset session: %w", err)
		}
		logger.Info().Str("session_id", sessionID).Msg("session storage cleared")
	}

	storages.TokenStore = NewTokenStore(sessions, cfg.Session.TokenKey)
	logger.Info().Str("session_id", sessionID).Msg("session storage is ready")

	return storages, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-album-client/internal/logger"
)

const sessionStorageTable = "session_storage"

type sqliteSessionStorage struct {
	db        *DB
	sessionID string
	builder   sq.StatementBuilderType
	logger    *logger.Logger
}

// NewSQLiteSessionStorage returns a [SessionStorage] whose items live in the
// session_storage table, scoped to sessionID.
func NewSQLiteSessionStorage(db *DB, sessionID string, logger *logger.Logger) SessionStorage {
	return &sqliteSessionStorage{
		db:        db,
		sessionID: sessionID,
		builder:   sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:    logger,
	}
}

func (s *sqliteSessionStorage) GetItem(ctx context.Context, key string) (string, error) {
	query, args, err := s.builder.
		Select("value").
		From(sessionStorageTable).
		Where(s.itemFilter(key)).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrItemNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSessionStorage.GetItem").
			Str("session_id", s.sessionID).
			Str("key", key).
			Msg("failed to query session item")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteSessionStorage) SetItem(ctx context.Context, key, value string) error {
	query, args, err := s.builder.
		Insert(sessionStorageTable).
		Columns("session_id", "key", "value", "updated_at").
		Values(s.sessionID, key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (session_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSessionStorage.SetItem").
			Str("session_id", s.sessionID).
			Str("key", key).
			Msg("failed to upsert session item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSessionStorage) RemoveItem(ctx context.Context, key string) error {
	return s.delete(ctx, s.itemFilter(key), "sqliteSessionStorage.RemoveItem")
}

func (s *sqliteSessionStorage) Clear(ctx context.Context) error {
	return s.delete(ctx, sq.Eq{"session_id": s.sessionID}, "sqliteSessionStorage.Clear")
}

func (s *sqliteSessionStorage) delete(ctx context.Context, where sq.Sqlizer, funcName string) error {
	query, args, err := s.builder.
		Delete(sessionStorageTable).
		Where(where).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", funcName).
			Str("session_id", s.sessionID).
			Msg("failed to delete session items")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSessionStorage) itemFilter(key string) sq.And {
	return sq.And{
		sq.Eq{"session_id": s.sessionID},
		sq.Eq{"key": key},
	}
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-album-client/internal/config"
	"github.com/MKhiriev/go-album-client/internal/logger"
)

func newTestSQLiteDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), config.ClientDB{
		DSN: filepath.Join(t.TempDir(), "nested", "session.db"),
	}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newMockedStorage(t *testing.T) (SessionStorage, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	l := logger.Nop()
	return NewSQLiteSessionStorage(&DB{DB: conn, logger: l}, "sid", l), mock
}

// ── SQLite round trips ───────────────────────────────────────────────────────

func TestSQLiteSessionStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteSessionStorage(newTestSQLiteDB(t), "session-a", logger.Nop())

	_, err := s.GetItem(ctx, "token")
	assert.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, s.SetItem(ctx, "token", "abc"))
	got, err := s.GetItem(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	require.NoError(t, s.SetItem(ctx, "token", "def"))
	got, err = s.GetItem(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "def", got)

	require.NoError(t, s.RemoveItem(ctx, "token"))
	_, err = s.GetItem(ctx, "token")
	assert.ErrorIs(t, err, ErrItemNotFound)

	// removing a missing key is fine
	require.NoError(t, s.RemoveItem(ctx, "token"))
}

func TestSQLiteSessionStorage_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLiteDB(t)
	a := NewSQLiteSessionStorage(db, "session-a", logger.Nop())
	b := NewSQLiteSessionStorage(db, "session-b", logger.Nop())

	require.NoError(t, a.SetItem(ctx, "token", "for-a"))
	require.NoError(t, b.SetItem(ctx, "token", "for-b"))
	require.NoError(t, a.SetItem(ctx, "other", "x"))

	require.NoError(t, a.Clear(ctx))

	_, err := a.GetItem(ctx, "token")
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, err = a.GetItem(ctx, "other")
	assert.ErrorIs(t, err, ErrItemNotFound)

	got, err := b.GetItem(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "for-b", got)
}

func TestSQLiteSessionStorage_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	first, err := NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Migrate())
	require.NoError(t, NewSQLiteSessionStorage(first, "resumed", logger.Nop()).SetItem(ctx, "token", "kept"))
	require.NoError(t, first.Close())

	second, err := NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer second.Close()
	require.NoError(t, second.Migrate())

	got, err := NewSQLiteSessionStorage(second, "resumed", logger.Nop()).GetItem(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "kept", got)
}

// ── SQL error paths ──────────────────────────────────────────────────────────

func TestSQLiteSessionStorage_GetItem_QueryError(t *testing.T) {
	s, mock := newMockedStorage(t)

	mock.ExpectQuery("SELECT value FROM session_storage").
		WithArgs("sid", "token").
		WillReturnError(errors.New("database is locked"))

	_, err := s.GetItem(context.Background(), "token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStorage_GetItem_NoRows(t *testing.T) {
	s, mock := newMockedStorage(t)

	mock.ExpectQuery("SELECT value FROM session_storage").
		WithArgs("sid", "token").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetItem(context.Background(), "token")
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStorage_SetItem_ExecError(t *testing.T) {
	s, mock := newMockedStorage(t)

	mock.ExpectExec("INSERT INTO session_storage").
		WithArgs("sid", "token", "abc", sqlmock.AnyArg()).
		WillReturnError(errors.New("readonly database"))

	err := s.SetItem(context.Background(), "token", "abc")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStorage_RemoveItem_ExecError(t *testing.T) {
	s, mock := newMockedStorage(t)

	mock.ExpectExec("DELETE FROM session_storage").
		WithArgs("sid", "token").
		WillReturnError(errors.New("readonly database"))

	err := s.RemoveItem(context.Background(), "token")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSessionStorage_Clear_ScopedToSession(t *testing.T) {
	s, mock := newMockedStorage(t)

	mock.ExpectExec("DELETE FROM session_storage WHERE session_id = \\?").
		WithArgs("sid").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, s.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

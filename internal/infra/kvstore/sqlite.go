package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hotel-fastbill/internal/pkg/clock"
)

const (
	sqliteGet = `SELECT value FROM kv_entries WHERE key = ?`
	sqlitePut = `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

type SQLiteStore struct {
	db      *sql.DB
	clock   clock.Clock
	cleanup func()
}

// NewSQLiteStore expects a handle whose migrations have already been applied.
func NewSQLiteStore(db *sql.DB, clk clock.Clock, cleanup func()) *SQLiteStore {
	return &SQLiteStore{db: db, clock: clk, cleanup: cleanup}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, sqliteGet, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQLiteStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, sqlitePut, key, string(value), s.clock.Now().UTC().Format(time.RFC3339Nano))
	return err
}

func (s *SQLiteStore) Close() error {
	if s.cleanup != nil {
		s.cleanup()
	}
	return nil
}

package kvstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	postgresGet = `SELECT value FROM kv_entries WHERE key = $1`
	postgresPut = `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

type PostgresStore struct {
	pool    *pgxpool.Pool
	cleanup func()
}

func NewPostgresStore(pool *pgxpool.Pool, cleanup func()) *PostgresStore {
	return &PostgresStore{pool: pool, cleanup: cleanup}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.pool.QueryRow(ctx, postgresGet, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, postgresPut, key, string(value))
	return err
}

func (s *PostgresStore) Close() error {
	if s.cleanup != nil {
		s.cleanup()
	}
	return nil
}

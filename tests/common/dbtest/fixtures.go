//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// writes v as the JSON value of key, replacing any previous value
func SeedEntry(t *testing.T, db DBLike, key string, v any) {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), `
		INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, string(raw))
	require.NoError(t, err)
}

// seeds a raw value, for payloads that are not valid JSON
func SeedRawEntry(t *testing.T, db DBLike, key, raw string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, raw)
	require.NoError(t, err)
}

// decodes the stored value of key into target; false when the key is absent
func ReadEntry(t *testing.T, db DBLike, key string, target any) bool {
	t.Helper()

	var raw string
	err := db.QueryRow(context.Background(), "SELECT value FROM kv_entries WHERE key = $1", key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return false
	}
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(raw), target), "stored value is not JSON: %s", raw)
	return true
}

// removes every stored collection
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE kv_entries")
	return err
}

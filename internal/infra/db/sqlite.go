package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens the database file at path, creating its directory, and applies the
// embedded migrations.
func OpenSQLite(path string) (*sql.DB, func(), error) {
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite3", ensureBusyTimeoutDSN(path))
	if err != nil {
		return nil, nil, fmt.Errorf("error opening database: %w", err)
	}
	// a single writer keeps whole-collection writes serialized
	sqlDB.SetMaxOpenConns(1)

	if err := migrateSQLite(sqlDB); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("error running migrations: %w", err)
	}

	cleanup := func() {
		_ = sqlDB.Close()
	}
	return sqlDB, cleanup, nil
}

func ensureBusyTimeoutDSN(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_busy_timeout=5000"
	}
	return dsn + "?_busy_timeout=5000"
}

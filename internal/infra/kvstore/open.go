package kvstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hotel-fastbill/internal/infra/db"
	"hotel-fastbill/internal/pkg/clock"
	"hotel-fastbill/internal/pkg/config"

	redis "github.com/redis/go-redis/v9"
)

// Open connects the backend selected by cfg.Driver and prepares its schema.
func Open(ctx context.Context, cfg config.StoreConfig, clk clock.Clock, logger *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("Using in-memory store; data is lost on restart")
		return NewMemoryStore(), nil

	case config.DriverSQLite:
		sqlDB, cleanup, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("SQLite store opened", "path", cfg.SQLitePath)
		return NewSQLiteStore(sqlDB, clk, cleanup), nil

	case config.DriverPostgres:
		if err := db.MigratePostgres(cfg.DB); err != nil {
			return nil, err
		}
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		logger.Info("Postgres store connected", "host", cfg.DB.Host, "database", cfg.DB.DBName)
		return NewPostgresStore(pool, cleanup), nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		logger.Info("Redis store connected", "addr", cfg.Redis.Addr)
		return NewRedisStore(client, cfg.Redis.Prefix), nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Driver)
	}
}

package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"hotel-fastbill/internal/infra"
	"hotel-fastbill/internal/infra/kvstore"
)

// Storage keys of the three persisted collections.
const (
	KeyRooms    = "hfb_rooms"
	KeyBookings = "hfb_bookings"
	KeySettings = "hfb_settings"
)

// Collection loads and saves one JSON value stored under a single key. There is no partial
// update: Save always replaces the whole value.
type Collection[T any] struct {
	store    kvstore.Store
	key      string
	fallback func() T
	logger   *slog.Logger
}

func NewCollection[T any](store kvstore.Store, key string, fallback func() T, logger *slog.Logger) *Collection[T] {
	return &Collection[T]{store: store, key: key, fallback: fallback, logger: logger}
}

// Load returns the fallback when the key is absent or holds JSON null.
func (c *Collection[T]) Load(ctx context.Context) (T, error) {
	var zero T

	raw, err := c.store.Get(ctx, c.key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return c.fallback(), nil
	}
	if err != nil {
		return zero, infra.WrapRepoErr(c.logger, infra.KindStoreFailure, c.key, "load", err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return c.fallback(), nil
	}

	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return zero, infra.WrapRepoErr(c.logger, infra.KindDecodeFailure, c.key, "decode", err)
	}
	return v, nil
}

func (c *Collection[T]) Save(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindDecodeFailure, c.key, "encode", err)
	}
	if err := c.store.Put(ctx, c.key, raw); err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindStoreFailure, c.key, "save", err)
	}
	return nil
}

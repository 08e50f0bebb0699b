package bootstrap

import (
	"context"
	"log/slog"

	"hotel-fastbill/internal/infra/kvstore"
	"hotel-fastbill/internal/pkg/clock"
	"hotel-fastbill/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

func NewStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (kvstore.Store, error) {
	store, err := kvstore.Open(context.Background(), cfg.Store, clk, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

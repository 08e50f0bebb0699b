package bootstrap

import (
	"log/slog"

	"hotel-fastbill/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig records the choices that decide where data lives, never secrets.
func logConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("Configuration loaded",
		"store", string(cfg.Store.Driver),
		"invoice_lang", cfg.Invoice.Lang,
		"backup_cron", cfg.Backup.Cron,
		"log_level", cfg.Log.Level)
}

package bootstrap

import (
	"context"
	"log/slog"

	"hotel-fastbill/internal/pkg/config"
	"hotel-fastbill/internal/scheduler"
	"hotel-fastbill/internal/usecase/queries"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(
		StartBackupScheduler,
	),
)

// StartBackupScheduler does nothing unless BACKUP_CRON is set.
func StartBackupScheduler(lc fx.Lifecycle, cfg config.Config, exports queries.ExportQueries, logger *slog.Logger) error {
	if cfg.Backup.Cron == "" {
		logger.Info("Scheduled backups disabled")
		return nil
	}

	svc, err := scheduler.New(logger)
	if err != nil {
		return err
	}
	if err := svc.ScheduleBackups(cfg.Backup.Cron, scheduler.NewBackupWriter(exports, cfg.Backup.Dir)); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			svc.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return svc.Stop()
		},
	})
	return nil
}

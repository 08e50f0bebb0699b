package repository

import (
	"log/slog"

	"hotel-fastbill/internal/domain/settings"
	"hotel-fastbill/internal/infra/kvstore"
	"hotel-fastbill/internal/usecase/shared"
)

type settingsRepository struct {
	*Collection[settings.Settings]
}

// NewSettingsRepository falls back to settings.Default when nothing was saved yet.
func NewSettingsRepository(store kvstore.Store, logger *slog.Logger) shared.SettingsRepository {
	return &settingsRepository{
		Collection: NewCollection(store, KeySettings, settings.Default, logger),
	}
}

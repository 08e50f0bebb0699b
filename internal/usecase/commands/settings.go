package commands

import (
	"context"
	"log/slog"

	"hotel-fastbill/internal/domain/money"
	"hotel-fastbill/internal/domain/settings"
	"hotel-fastbill/internal/pkg/patch"
	"hotel-fastbill/internal/usecase/shared"
)

type UpdateSettingsRequest struct {
	AppName           *string
	Rounding          *settings.RoundingPolicy
	DefaultHourlyRate *money.Amount
	DefaultWaterPrice *money.Amount
	RoomTypes         *[]settings.RoomType
}

type SettingsCommands interface {
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (settings.Settings, error)
}

type settingsUseCaseImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewSettingsUseCase(uow shared.UnitOfWork, logger *slog.Logger) SettingsCommands {
	return &settingsUseCaseImpl{uow: uow, logger: logger}
}

func (uc *settingsUseCaseImpl) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (settings.Settings, error) {
	var updated settings.Settings
	err := uc.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		current := tx.State().Settings
		next := settings.Settings{
			AppName:           patch.Coalesce(req.AppName, current.AppName),
			Rounding:          patch.Coalesce(req.Rounding, current.Rounding),
			DefaultHourlyRate: patch.Coalesce(req.DefaultHourlyRate, current.DefaultHourlyRate),
			DefaultWaterPrice: patch.Coalesce(req.DefaultWaterPrice, current.DefaultWaterPrice),
			RoomTypes:         patch.Coalesce(req.RoomTypes, current.RoomTypes),
		}
		if derr := next.Validate(); derr != nil {
			return validationErr(derr)
		}
		tx.SetSettings(next)
		updated = next
		return nil
	})
	if err != nil {
		return settings.Settings{}, err
	}

	uc.logger.Info("Settings updated", "app_name", updated.AppName, "rounding", updated.Rounding.String())
	return updated, nil
}

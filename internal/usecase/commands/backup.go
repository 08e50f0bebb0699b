package commands

import (
	"context"
	"log/slog"

	"hotel-fastbill/internal/export"
	"hotel-fastbill/internal/pkg/errs"
	"hotel-fastbill/internal/usecase/shared"
)

type ImportResult struct {
	Rooms    bool
	Bookings bool
	Settings bool
}

type BackupCommands interface {
	// ImportBackup replaces each collection present in the file and leaves the others alone.
	ImportBackup(ctx context.Context, raw []byte) (*ImportResult, error)
}

type backupUseCaseImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewBackupUseCase(uow shared.UnitOfWork, logger *slog.Logger) BackupCommands {
	return &backupUseCaseImpl{uow: uow, logger: logger}
}

func (uc *backupUseCaseImpl) ImportBackup(ctx context.Context, raw []byte) (*ImportResult, error) {
	data, err := export.DecodeBackup(raw)
	if err != nil {
		uc.logger.Warn("Backup rejected", "error", err.Error())
		return nil, errs.Mark(err, ErrInvalidBackup)
	}

	result := &ImportResult{}
	err = uc.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		if data.Rooms != nil {
			tx.SetRooms(data.Rooms)
			result.Rooms = true
		}
		if data.Bookings != nil {
			tx.SetBookings(data.Bookings)
			result.Bookings = true
		}
		if data.Settings != nil {
			tx.SetSettings(*data.Settings)
			result.Settings = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Backup imported",
		"rooms", result.Rooms,
		"bookings", result.Bookings,
		"settings", result.Settings)
	return result, nil
}

package components

import (
	"hotel-fastbill/internal/infra/repository"
	"hotel-fastbill/internal/infra/uow"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewRoomRepository,
		repository.NewBookingRepository,
		repository.NewSettingsRepository,
		uow.NewStateUoW,
	),
)

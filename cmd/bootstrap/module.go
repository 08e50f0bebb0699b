package bootstrap

import (
	"hotel-fastbill/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.UseCaseModule,
	StoreModule,
	components.RepositoryModule,
	components.HandlerModule,
	SchedulerModule,
)

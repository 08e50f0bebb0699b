package components

import (
	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/infra/metrics"
	"hotel-fastbill/internal/invoice"
	"hotel-fastbill/internal/pkg/clock"
	"hotel-fastbill/internal/pkg/config"
	"hotel-fastbill/internal/usecase/commands"
	"hotel-fastbill/internal/usecase/queries"
	"hotel-fastbill/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultCalculator,
		fx.As(new(pricing.Calculator)),
	),
	metrics.NewMetrics,
	func(m *metrics.Metrics) shared.BillingRecorder {
		return m
	},
	func(cfg config.Config) *invoice.HTMLRenderer {
		return invoice.NewHTMLRenderer(cfg.Invoice.Lang, true)
	},
	func(cfg config.Config) *invoice.PDFRenderer {
		return invoice.NewPDFRenderer(cfg.Invoice.Lang)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomUseCase,
		commands.NewBookingUseCase,
		commands.NewSettingsUseCase,
		commands.NewBackupUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewBookingQueries,
		queries.NewSettingsQueries,
		queries.NewExportQueries,
		queries.NewInvoiceQueries,
	),
)

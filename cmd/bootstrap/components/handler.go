package components

import (
	"hotel-fastbill/internal/handler"
	"hotel-fastbill/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSettingsHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewInvoiceHandler,
		api.NewExportHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-fastbill/internal/handler/api"
	"hotel-fastbill/internal/handler/middleware"
	"hotel-fastbill/internal/infra/metrics"
	"hotel-fastbill/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Settings *api.SettingsHandler
	Rooms    *api.RoomHandler
	Bookings *api.BookingHandler
	Invoices *api.InvoiceHandler
	Exports  *api.ExportHandler
}

func NewHandlers(
	settings *api.SettingsHandler,
	rooms *api.RoomHandler,
	bookings *api.BookingHandler,
	invoices *api.InvoiceHandler,
	exports *api.ExportHandler,
) Handlers {
	return Handlers{Settings: settings, Rooms: rooms, Bookings: bookings, Invoices: invoices, Exports: exports}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, h Handlers) {
	noStore := []gin.HandlerFunc{middleware.NoStore()}

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/settings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Settings.Get},
			{Method: http.MethodPut, Path: "", Handler: h.Settings.Update},
		})

		addRoutes(apiGroup.Group("/rooms"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Rooms.List},
			{Method: http.MethodPost, Path: "", Handler: h.Rooms.Create},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Rooms.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Rooms.Delete},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Bookings.List},
			{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Bookings.Delete},
			{Method: http.MethodGet, Path: "/:id/price", Handler: h.Bookings.Price},
			{Method: http.MethodGet, Path: "/:id/invoice", Handler: h.Invoices.HTML, Mw: noStore},
			{Method: http.MethodGet, Path: "/:id/invoice/pdf", Handler: h.Invoices.PDF, Mw: noStore},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/export/bookings.csv", Handler: h.Exports.BookingsCSV, Mw: noStore},
			{Method: http.MethodGet, Path: "/backup", Handler: h.Exports.Backup, Mw: noStore},
			{Method: http.MethodPost, Path: "/backup", Handler: h.Exports.Restore},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

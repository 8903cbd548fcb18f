package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"temple-booking/internal/handler/api"
	"temple-booking/internal/handler/middleware"
	"temple-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Resource    *api.ResourceHandler
	Reservation *api.ReservationHandler
	Calendar    *api.CalendarHandler
	Seva        *api.SevaHandler
	SevaBooking *api.SevaBookingHandler
	Aggregation *api.AggregationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/halls"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Resource.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Resource.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Resource.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Resource.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Resource.Delete},
		})

		addRoutes(apiGroup.Group("/hall-bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Reservation.UpdateStatus},
		})

		addRoutes(apiGroup.Group("/calendar"), []route{
			{Method: http.MethodGet, Path: "/day", Handler: h.Calendar.Day},
			{Method: http.MethodGet, Path: "/week", Handler: h.Calendar.Week},
			{Method: http.MethodGet, Path: "/month", Handler: h.Calendar.Month},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/sevas", Handler: h.Seva.ListSevas},
			{Method: http.MethodGet, Path: "/sevas/:id", Handler: h.Seva.GetSeva},
			{Method: http.MethodGet, Path: "/gotras", Handler: h.Seva.ListGotras},
			{Method: http.MethodGet, Path: "/gotras/:id", Handler: h.Seva.GetGotra},
		})

		sevaBookings := apiGroup.Group("/seva-bookings")
		{
			// static segments win over :id in gin's tree
			addRoutes(sevaBookings.Group("/aggregation"), []route{
				{Method: http.MethodGet, Path: "/by-seva", Handler: h.Aggregation.ByService},
				{Method: http.MethodGet, Path: "/by-date", Handler: h.Aggregation.ByDate},
				{Method: http.MethodPost, Path: "/selection", Handler: h.Aggregation.BySelection},
			})
			addRoutes(sevaBookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.SevaBooking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.SevaBooking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.SevaBooking.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.SevaBooking.Update},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.SevaBooking.UpdateStatus},
			})
		}
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

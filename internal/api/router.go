package api

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/fipepulse/internal/middleware"
)

// RouterOptions tunes the global middlewares.
type RouterOptions struct {
	// RateLimitPerMinute is the per-IP request budget. <= 0 uses 120.
	RateLimitPerMinute int
	// RequestTimeout bounds each request context. <= 0 uses 30s.
	RequestTimeout time.Duration
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Bounds every request context with opts.RequestTimeout.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1/catalog, /periods, /history, /sessions).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - opts (RouterOptions): Rate limit and timeout; zero values use the defaults.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	if opts.RateLimitPerMinute <= 0 {
		opts.RateLimitPerMinute = 120
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimitPerMinute),
		middleware.Timeout(opts.RequestTimeout),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		catalog := v1.Group("/catalog/:type")
		catalog.GET("/brands", handler.ListBrands)
		catalog.GET("/brands/:brand/models", handler.ListModels)
		catalog.GET("/brands/:brand/models/:model/years", handler.ListYears)
		catalog.GET("/brands/:brand/models/:model/years/:year", handler.GetAttributes)

		v1.GET("/periods", handler.ListPeriods)
		v1.GET("/history/:type/:brand/:model/:year", handler.GetHistory)

		sessions := v1.Group("/sessions")
		sessions.POST("", handler.CreateSession)
		sessions.GET("/:id", handler.GetSession)
		sessions.DELETE("/:id", handler.DeleteSession)
		sessions.PUT("/:id/months", handler.SetMonths)
		sessions.PUT("/:id/selection/:level", handler.Select)
		sessions.POST("/:id/vehicles", handler.AddVehicle)
		sessions.DELETE("/:id/vehicles/:key", handler.RemoveVehicle)
		sessions.GET("/:id/chart", handler.GetChart)
	}

	return router
}

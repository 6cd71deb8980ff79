package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/metrics"
	"github.com/guttosm/pizzeria-service/internal/middleware"
	"github.com/guttosm/pizzeria-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	EnableIdempotency bool
	IdempotencyTTL    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService
	Sessions          middleware.SessionProvider

	limiter     *middleware.RateLimiter
	idempotency *middleware.IdempotencyConfig
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    30 * time.Second,
		EnableIdempotency: true,
		IdempotencyTTL:    24 * time.Hour,
	}
}

// Handlers groups the route handlers mounted by NewRouter. Tracker and Admin
// are optional.
type Handlers struct {
	Menu    *Handler
	Tracker *TrackerHandler
	Admin   *AdminHandler
	Health  *HealthHandler
}

// NewRouter creates and configures the Gin router for the pizzeria service.
func NewRouter(handlers Handlers, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, handlers.Health, &cfg)

	api := router.Group("/api")

	// The tracker websocket outlives any request timeout.
	if handlers.Tracker != nil {
		tracker := api.Group("")
		if cfg.limiter != nil {
			tracker.Use(cfg.limiter.RateLimit())
		}
		handlers.Tracker.RegisterRoutes(tracker, &cfg)
	}

	timed := api.Group("")
	if cfg.RequestTimeout > 0 {
		timed.Use(middleware.Timeout(middleware.TimeoutConfig{
			Timeout: cfg.RequestTimeout,
			Skip:    middleware.SkipPaths(checkoutSubmitPath),
		}))
	}

	if handlers.Menu != nil && cfg.Sessions != nil {
		customer := timed.Group("", middleware.Session(cfg.Sessions))
		if cfg.limiter != nil {
			customer.Use(cfg.limiter.SessionRateLimit())
		}
		handlers.Menu.RegisterRoutes(customer, &cfg)
	}

	if handlers.Admin != nil {
		handlers.Admin.RegisterRoutes(timed, &cfg)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "accept", "Cache-Control", "X-Requested-With", "Idempotency-Key", "X-Request-ID", "X-Session-ID", "If-None-Match"},
		ExposeHeaders:    []string{"X-Request-ID", "X-Session-ID", "ETag", middleware.HeaderRateLimit, middleware.HeaderRateRemaining, middleware.HeaderRateReset, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(trackerPath),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	router.Use(func(c *gin.Context) {
		c.Set(LoggingServiceKey, cfg.LoggingService)
		c.Next()
	})

	if cfg.RateLimit > 0 {
		cfg.limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if cfg.EnableIdempotency {
		idempotencyCfg := middleware.NewIdempotencyConfig(cfg.IdempotencyTTL)
		cfg.idempotency = &idempotencyCfg
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

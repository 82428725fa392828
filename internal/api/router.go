package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/eventhub/booking-system/docs"
	"github.com/eventhub/booking-system/internal/api/handler"
	"github.com/eventhub/booking-system/internal/api/middleware"
	"github.com/eventhub/booking-system/internal/core/domain"
	"github.com/eventhub/booking-system/internal/core/ports"
	"github.com/eventhub/booking-system/internal/core/service"
	mongodb "github.com/eventhub/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/eventhub/booking-system/internal/infrastructure/db/redis"
)

// RouterConfig carries the settings the HTTP layer needs.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// BodyLimit bounds request bodies; events carry inline base64 images.
	BodyLimit string
	CacheTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, activity ports.ActivitySink, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(cfg.BodyLimit))
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	eventCache := redisdb.NewEventCache(rdb, cfg.CacheTTL)

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, activity)
	eventService := service.NewEventService(eventRepo, eventCache, activity, log)
	bookingService := service.NewBookingService(bookingRepo, eventRepo, activity, log)

	authHandler := handler.NewAuthHandler(authService)
	eventHandler := handler.NewEventHandler(eventService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	authGuard := middleware.Auth(tokens, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authHandler.Me, authGuard)
	authGroup.GET("/users", authHandler.ListUsers, authGuard, adminOnly)
	authGroup.PUT("/users/:id/role", authHandler.UpdateRole, authGuard, adminOnly)

	// --- Event routes (listing is public, mutation is admin-only) ---
	events := e.Group("/api/events")
	events.GET("", eventHandler.List)
	events.GET("/:id", eventHandler.Get)
	events.POST("", eventHandler.Create, authGuard, adminOnly)
	events.PUT("/:id", eventHandler.Update, authGuard, adminOnly)
	events.DELETE("/:id", eventHandler.Delete, authGuard, adminOnly)

	// --- Booking routes ---
	bookings := e.Group("/api/bookings", authGuard)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("/user", bookingHandler.ListMine)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

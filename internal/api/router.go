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

	_ "github.com/orderdesk/order-management-api/docs"
	"github.com/orderdesk/order-management-api/internal/api/handler"
	"github.com/orderdesk/order-management-api/internal/api/middleware"
	"github.com/orderdesk/order-management-api/internal/core/service"
	"github.com/orderdesk/order-management-api/internal/infrastructure/config"
	mongodb "github.com/orderdesk/order-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/orderdesk/order-management-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("orders"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	tokens, err := service.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.Algorithm,
		time.Duration(cfg.JWT.TTLMinutes)*time.Minute,
	)
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(userRepo, tokens, log)
	orderService := service.NewOrderService(orderRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	orderHandler := handler.NewOrderHandler(orderService)
	adminHandler := handler.NewAdminHandler(authService)

	authMW := middleware.Auth(tokens, userRepo)
	limiter := redisdb.NewRateLimiter(rdb,
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)
	throttle := middleware.RateLimit(limiter, log)

	// --- Auth routes (rate limited per client address) ---
	e.POST("/auth/register", authHandler.Register, throttle)
	e.POST("/auth/login", authHandler.Login, throttle)

	// --- Order routes (bearer token required) ---
	orders := e.Group("/orders", authMW)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id", orderHandler.UpdateStatus)
	orders.DELETE("/:id", orderHandler.Delete)

	// --- Admin routes ---
	admin := e.Group("/admin", authMW, middleware.RequireAdmin())
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:email/role", adminHandler.SetRole)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}

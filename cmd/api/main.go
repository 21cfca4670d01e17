// @title        Order Management API
// @version      1.0
// @description  Registers and authenticates users and manages their orders.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/orderdesk/order-management-api/internal/api"
	"github.com/orderdesk/order-management-api/internal/core/service"
	"github.com/orderdesk/order-management-api/internal/infrastructure/config"
	mongodb "github.com/orderdesk/order-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/orderdesk/order-management-api/internal/infrastructure/db/redis"
	"github.com/orderdesk/order-management-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not configured yet; stderr is all we have.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := orderRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("order indexes failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	// --- Bootstrap admin (optional) ---
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		tokens, err := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.Algorithm,
			time.Duration(cfg.JWT.TTLMinutes)*time.Minute)
		if err != nil {
			log.Fatal().Err(err).Msg("token service init failed")
		}
		authService := service.NewAuthService(userRepo, tokens, log)
		if err := authService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("bootstrap admin failed")
		}
	}

	// --- HTTP server ---
	e, err := api.NewRouter(cfg, db, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router init failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	// --- Graceful shutdown ---
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

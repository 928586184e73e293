package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/merchantry/storefront-api/internal/api"
	"github.com/merchantry/storefront-api/internal/core/service"
	mongodb "github.com/merchantry/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/merchantry/storefront-api/internal/infrastructure/db/redis"
	"github.com/merchantry/storefront-api/internal/infrastructure/queue"
	"github.com/merchantry/storefront-api/internal/pkg/config"
	"github.com/merchantry/storefront-api/pkg/logger"

	_ "github.com/merchantry/storefront-api/docs"
)

// @title Storefront API
// @version 1.0
// @description Back-office and storefront API with role-based access control.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet, so write straight to stderr.
		os.Stderr.WriteString("storefront-api: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "storefront-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	accountRepo := mongodb.NewAccountRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account index creation failed")
	}
	if err := catalogRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("catalog index creation failed")
	}

	auditRepo := mongodb.NewAuditRepository(db)
	dispatcher := queue.NewAuditDispatcher(0, auditRepo, log)
	dispatcher.Start(ctx)

	if err := service.BootstrapAdmin(ctx, accountRepo, dispatcher, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	limiter := redisdb.NewLoginLimiter(rdb,
		int64(cfg.Limiter.MaxFailures),
		time.Duration(cfg.Limiter.WindowMinutes)*time.Minute)

	e := api.NewRouter(api.Dependencies{
		Mongo:      db,
		Redis:      rdb,
		Tokens:     service.NewTokenService(cfg.JWTSecret, cfg.CustomerJWTSecret),
		Audit:      dispatcher,
		AuditStore: auditRepo,
		Limiter:    limiter,
		Logger:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

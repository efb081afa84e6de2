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
	"github.com/rs/zerolog"

	"github.com/helpdesk/ticketing-system/internal/api"
	"github.com/helpdesk/ticketing-system/internal/core/service"
	"github.com/helpdesk/ticketing-system/internal/infrastructure/db/mongo"
	"github.com/helpdesk/ticketing-system/internal/infrastructure/db/redis"
	"github.com/helpdesk/ticketing-system/internal/pkg/config"
	"github.com/helpdesk/ticketing-system/pkg/logger"
)

func main() {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Durable stores ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongo.NewUserRepository(db)
	ticketRepo := mongo.NewTicketRepository(db)
	commentRepo := mongo.NewCommentRepository(db)

	for _, ensure := range []func(context.Context) error{
		userRepo.EnsureIndexes,
		ticketRepo.EnsureIndexes,
		commentRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure indexes")
		}
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.Admin.Username, cfg.Admin.Password, log)
	sessionStore := redis.NewSessionStore(rdb, redis.DefaultSessionTTL)
	sessionService := service.NewSessionService(sessionStore, cfg.SessionSecret, log)
	ticketService := service.NewTicketService(ticketRepo, commentRepo, userRepo, log)

	if err := authService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin user")
	}

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Mongo:        db,
		Redis:        rdb,
		Auth:         authService,
		Sessions:     sessionService,
		Tickets:      ticketService,
		SessionTTL:   redis.DefaultSessionTTL,
		SecureCookie: cfg.IsProduction(),
		StaticRoot:   cfg.StaticRoot,
		Logger:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	waitForShutdown(log)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func waitForShutdown(log zerolog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutting down")
}

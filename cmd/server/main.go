package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Calvin-222/COMP-4117-back-end/internal/api"
	"github.com/Calvin-222/COMP-4117-back-end/internal/config"
	"github.com/Calvin-222/COMP-4117-back-end/internal/store"
	"github.com/Calvin-222/COMP-4117-back-end/internal/whatsapp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	ctx := context.Background()

	// Initialize MongoDB store
	mongoStore, err := store.NewMongoStore(ctx, cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoStore.Close(closeCtx); err != nil {
			logger.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()
	logger.Info().Str("db", cfg.MongoDB).Msg("connected to MongoDB")

	// Initialize Redis store (optional; backs rate limiting)
	var redisStore *store.RedisStore
	if cfg.RedisURL != "" {
		redisStore, err = store.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis connection failed")
		}
		defer redisStore.Close()
		logger.Info().Msg("connected to Redis")
	} else {
		logger.Warn().Msg("REDIS_URL not set, rate limiting disabled")
	}

	// WhatsApp Cloud API client
	wa := whatsapp.New(cfg.WhatsAppBaseURL, cfg.WhatsAppToken, cfg.WhatsAppPhoneID)

	// Create router
	router := api.NewRouter(logger, cfg, mongoStore, redisStore, wa)

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Msg("starting wts-admin server")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server...")

	// Graceful shutdown with 30 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}

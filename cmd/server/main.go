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
	"github.com/redis/go-redis/v9"

	"github.com/ibraschwan/karagul/internal/api"
	"github.com/ibraschwan/karagul/internal/core/ports"
	"github.com/ibraschwan/karagul/internal/infrastructure/config"
	"github.com/ibraschwan/karagul/internal/infrastructure/session"
	"github.com/ibraschwan/karagul/internal/infrastructure/strapi"
	"github.com/ibraschwan/karagul/pkg/logger"
)

func main() {
	// A missing .env is fine; the environment itself may carry everything.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		sessions ports.SessionStore
		rdb      *redis.Client
	)
	switch cfg.Session.Backend {
	case "redis":
		var err error
		rdb, err = session.Connect(ctx, session.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, time.Duration(cfg.Session.TTLHours)*time.Hour)
	case "file":
		sessions = session.NewFileStore(cfg.Session.Dir)
	default:
		sessions = session.NewMemoryStore()
	}

	client := strapi.New(cfg.Strapi.URL,
		strapi.WithTokenSource(sessions),
		strapi.WithLogger(log),
	)

	e := api.NewRouter(cfg, client, sessions, rdb, log)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("backend", cfg.Strapi.URL).
			Str("session_backend", cfg.Session.Backend).
			Msg("gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			// Funnel the failure through the signal context so the deferred
			// cleanup still runs.
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}

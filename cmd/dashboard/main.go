package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/digitaltwin/dashboard-core/internal/api"
	"github.com/digitaltwin/dashboard-core/internal/core/ports"
	"github.com/digitaltwin/dashboard-core/internal/core/service"
	"github.com/digitaltwin/dashboard-core/internal/infrastructure/config"
	"github.com/digitaltwin/dashboard-core/internal/infrastructure/db/redis"
	"github.com/digitaltwin/dashboard-core/internal/infrastructure/session"
	"github.com/digitaltwin/dashboard-core/internal/infrastructure/twinapi"
	"github.com/digitaltwin/dashboard-core/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	sessions := buildSessionStore(ctx, cfg, log)

	client := twinapi.NewClient(cfg.ServiceURL, cfg.HTTPTimeout, sessions, log)
	dashboard := service.NewDashboard(client, sessions, cfg.RefreshInterval, log)
	client.OnAuthFailure(dashboard.HandleAuthFailure)

	// A session restored from redis resumes without a new login.
	if err := dashboard.Resume(ctx); err != nil {
		log.Warn().Err(err).Msg("could not resume restored session")
	}

	router := api.NewRouter(dashboard, log)

	if err := runServer(ctx, router, ":"+cfg.Port, log); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// buildSessionStore connects to redis for a durable session, falling back to
// the in-memory store when redis is unreachable.
func buildSessionStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) ports.SessionStore {
	client, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, sessions will not survive restarts")
		return session.NewMemoryStore()
	}

	store := redis.NewSessionStore(client, log)
	if err := store.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("could not restore persisted session")
	}
	return store
}

func runServer(ctx context.Context, e *echo.Echo, addr string, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()
	log.Info().Str("addr", addr).Msg("dashboard listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

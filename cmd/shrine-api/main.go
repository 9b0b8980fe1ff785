package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/shrine-api/internal/config"
	"github.com/deppfellow/shrine-api/internal/database"
	"github.com/deppfellow/shrine-api/internal/handler"
	"github.com/deppfellow/shrine-api/internal/logger"
	"github.com/deppfellow/shrine-api/internal/middleware"
	"github.com/deppfellow/shrine-api/internal/repository"
	"github.com/deppfellow/shrine-api/internal/router"
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/deppfellow/shrine-api/internal/service"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// The real logger needs the config; fall back to a bare one.
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	err = run(cfg, &log, loggerService)
	loggerService.Shutdown()
	if err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func run(cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, log, cfg.Database.DSN()); err != nil {
		return err
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)

	seedCtx := logger.WithContext(ctx, log)
	if err := services.Auth.EnsureAdmin(seedCtx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		_ = srv.Shutdown(context.Background())
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv, services.Tokens)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers, middlewares))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = srv.Shutdown(context.Background())
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}

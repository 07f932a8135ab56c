package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/debemdeboas/devlog/internal/apiclient"
	"github.com/debemdeboas/devlog/internal/config"
	"github.com/debemdeboas/devlog/internal/editor"
	"github.com/debemdeboas/devlog/internal/logger"
	"github.com/debemdeboas/devlog/internal/render"
	"github.com/debemdeboas/devlog/internal/repository"
	"github.com/debemdeboas/devlog/internal/server"
	"github.com/debemdeboas/devlog/internal/web"
)

const (
	sessionMaxIdle    = 2 * time.Hour
	sessionPruneEvery = 10 * time.Minute
	shutdownTimeout   = 30 * time.Second
)

func main() {
	envErr := godotenv.Load()

	path := configPath()
	if err := config.LoadConfig(path); err != nil {
		// The logger depends on the config, so fall back to a bare one here
		l := logger.New("info", logger.FileOptions{})
		l.Fatal().Err(err).Msgf(config.ErrLoadConfigFmt, err)
	}

	cfg := config.AppConfig.Logging
	l := logger.New(cfg.Level, logger.FileOptions{
		Path:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	})
	if envErr != nil {
		l.Debug().Err(envErr).Msg("No .env file loaded")
	}

	config.SetLogger(l.With().Str("component", "config").Logger())
	render.SetLogger(l.With().Str("component", "render").Logger())
	repository.SetLogger(l.With().Str("component", "repository").Logger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, l); err != nil {
		l.Fatal().Err(err).Msg("Server stopped")
	}
}

func configPath() string {
	if p := os.Getenv(config.EnvConfigPath); p != "" {
		return p
	}
	return config.DefaultConfigPath
}

func run(ctx context.Context, l zerolog.Logger) error {
	client := apiclient.New(config.AppConfig.API.BaseURL,
		apiclient.WithLogger(l.With().Str("component", "apiclient").Logger()),
	)
	posts := repository.NewAPIPostRepository(client)
	sessions := editor.NewMemoryRepository(posts, l.With().Str("component", "editor").Logger())

	srv := server.New(sessions, web.Content, l.With().Str("component", "server").Logger())
	if err := srv.HashStatic(); err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              net.JoinHostPort(config.AppConfig.Server.Host, config.AppConfig.Server.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go pruneSessions(ctx, sessions)

	errCh := make(chan error, 1)
	go func() {
		l.Info().
			Str("addr", httpServer.Addr).
			Str("api", client.BaseURL()).
			Msg("Serving devlog")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	l.Info().Msg("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	l.Info().Msg("HTTP server shutdown complete")
	return nil
}

func pruneSessions(ctx context.Context, sessions *editor.MemoryRepository) {
	ticker := time.NewTicker(sessionPruneEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessions.PruneIdle(sessionMaxIdle)
		}
	}
}

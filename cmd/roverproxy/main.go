package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"roverdeck/internal/nasa"
	"roverdeck/internal/proxy"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := proxy.LoadConfig()
	if err != nil {
		logger.Error().Err(err).Msg("load config")
		return 1
	}
	if cfg.APIKey == "" {
		logger.Warn().Msg("API_KEY is not set; upstream calls will fail auth")
	}

	upstream := nasa.NewClient(cfg.UpstreamURL, cfg.APIKey)
	server := proxy.New(upstream, logger)

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.Routes(),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("server running")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server failed")
			return 1
		}
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
			return 1
		}
		logger.Info().Msg("server stopped")
	}
	return 0
}

package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mribalta/babelchat-server/internal/config"
	"github.com/mribalta/babelchat-server/internal/core"
	"github.com/mribalta/babelchat-server/internal/translate"
	transporthttp "github.com/mribalta/babelchat-server/internal/transport/http"
)

// App wires together the translator, the hub, and the transport layer.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	translator      core.Translator
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(ctx context.Context, cfg config.Config, logger *zerolog.Logger) (*App, error) {
	var translator core.Translator = translate.Noop{}
	if cfg.Translate.Enabled {
		google, err := translate.NewGoogle(ctx)
		if err != nil {
			return nil, fmt.Errorf("init translator: %w", err)
		}
		translator = google
		logger.Info().Str("target_lang", cfg.Translate.TargetLang).Msg("translation enabled")
	} else {
		logger.Info().Msg("translation disabled, messages pass through untouched")
	}

	hub := core.NewHub(translator, cfg.Translate.TargetLang, logger)
	server := transporthttp.NewServer(hub, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		translator:      translator,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.hub.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup releases the translator's API client.
func (a *App) cleanup() {
	if closer, ok := a.translator.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close translator")
		} else {
			a.log.Info().Msg("translator closed")
		}
	}
}

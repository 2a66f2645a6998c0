package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/heartmarshall/word-definition/internal/adapter/provider/wiktionary"
	"github.com/heartmarshall/word-definition/internal/config"
	"github.com/heartmarshall/word-definition/internal/domain"
	"github.com/heartmarshall/word-definition/internal/service/definition"
	"github.com/heartmarshall/word-definition/internal/transport/middleware"
	"github.com/heartmarshall/word-definition/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the
// resolver to the HTTP API and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	client, svc := NewResolver(cfg, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, client, svc, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// NewHandler assembles the API routes behind the middleware chain.
func NewHandler(cfg *config.Config, logger *slog.Logger, client *wiktionary.Client, svc *definition.Service, limiter *middleware.RateLimiter) http.Handler {
	defs := rest.NewDefinitionHandler(svc, domain.ParseLanguage(cfg.Resolver.DefaultLanguage), logger)
	health := rest.NewHealthHandler(client, BuildVersion())

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RateLimit.PerMinute),
	)(rest.NewRouter(defs, health))
}

// NewResolver builds the Wiktionary client and the definition service on
// top of it.
func NewResolver(cfg *config.Config, logger *slog.Logger) (*wiktionary.Client, *definition.Service) {
	client := wiktionary.NewClient(wiktionary.Options{
		Endpoint:     cfg.Wiktionary.Endpoint,
		UserAgent:    cfg.Wiktionary.UserAgent,
		Timeout:      cfg.Wiktionary.Timeout,
		PingLanguage: domain.ParseLanguage(cfg.Wiktionary.PingLanguage),
	}, logger)

	return client, definition.NewService(logger, client, cfg.Domain())
}

// serve runs srv until ctx is done, then drains in-flight requests within
// the shutdown timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

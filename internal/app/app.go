package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ecoideias/ecoideias-backend/internal/config"
)

// Run is the application entry point. It loads configuration, wires every
// component and serves HTTP until ctx is cancelled, then shuts down in
// order: HTTP drain, activity listener, e-mail dispatcher, pools.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("ai_enabled", cfg.AI.Enabled()),
		slog.Bool("email_enabled", cfg.Email.Enabled()),
		slog.Bool("cache_enabled", cfg.Cache.RedisAddr != ""),
	)

	c, err := build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.close()

	srv := newServer(cfg.Server, c.handler, c.hub)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return c.activity.Run(gctx, c.listener)
	})

	if cfg.Auth.TokenCleanupInterval > 0 {
		g.Go(func() error {
			sweepTokens(gctx, c.auth, cfg.Auth.TokenCleanupInterval, logger)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("application stopped with error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("application stopped", slog.Duration("uptime", time.Since(c.startedAt)))
	return nil
}

type streamCloser interface {
	Close()
}

// newServer builds the HTTP server. Request contexts are detached from the
// process signal so Shutdown can drain in-flight requests; long-lived
// streams are ended through streams.Close when Shutdown begins.
func newServer(cfg config.ServerConfig, h http.Handler, streams streamCloser) *http.Server {
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
	srv.RegisterOnShutdown(streams.Close)
	return srv
}

type tokenCleaner interface {
	CleanupTokens(ctx context.Context) (int, error)
}

// sweepTokens purges reset tokens every interval until ctx is cancelled.
func sweepTokens(ctx context.Context, cleaner tokenCleaner, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := cleaner.CleanupTokens(ctx)
			if err != nil {
				if ctx.Err() == nil {
					logger.WarnContext(ctx, "reset token sweep failed", slog.String("error", err.Error()))
				}
				continue
			}
			if n > 0 {
				logger.InfoContext(ctx, "reset tokens purged", slog.Int("deleted", n))
			}
		}
	}
}

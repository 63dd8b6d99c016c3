package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Listener relays NOTIFY payloads on one channel to a callback.
// It owns a dedicated connection and reconnects with exponential backoff.
type Listener struct {
	pool    *pgxpool.Pool
	channel string
	log     *slog.Logger
}

// NewListener creates a Listener for channel.
func NewListener(pool *pgxpool.Pool, channel string, logger *slog.Logger) *Listener {
	return &Listener{
		pool:    pool,
		channel: channel,
		log:     logger.With("component", "pg_listener", "channel", channel),
	}
}

// Listen blocks until ctx is cancelled, calling fn for every notification.
// fn runs on the listener goroutine and must not block for long.
func (l *Listener) Listen(ctx context.Context, fn func(payload string)) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 0
	b.MaxInterval = 30 * time.Second

	for {
		err := l.listenOnce(ctx, fn, b.Reset)
		if ctx.Err() != nil {
			return nil
		}

		wait := b.NextBackOff()
		l.log.WarnContext(ctx, "listener disconnected, retrying",
			slog.String("error", err.Error()),
			slog.Duration("retry_in", wait),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}

func (l *Listener) listenOnce(ctx context.Context, fn func(string), connected func()) error {
	pc, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire: %w", err)
	}
	conn := pc.Hijack()
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	connected()
	l.log.InfoContext(ctx, "listening")

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait: %w", err)
		}
		fn(n.Payload)
	}
}

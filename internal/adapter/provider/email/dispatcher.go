package email

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sourcegraph/conc/pool"
)

const sendTimeout = 30 * time.Second

// defaultQueueSize bounds pending messages when NewDispatcher gets no size.
const defaultQueueSize = 256

// Dispatcher sends messages in the background with bounded concurrency
// and exponential-backoff retries. Failures are logged, never returned.
type Dispatcher struct {
	sender     Sender
	queue      chan Message
	pool       *pool.Pool
	maxRetries uint64
	interval   time.Duration
	log        *slog.Logger

	mu     sync.Mutex
	closed bool
}

// NewDispatcher starts workers goroutines draining a queue of queueSize
// pending messages.
func NewDispatcher(sender Sender, workers, queueSize int, maxRetries uint64, interval time.Duration, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	d := &Dispatcher{
		sender:     sender,
		queue:      make(chan Message, queueSize),
		pool:       pool.New().WithMaxGoroutines(workers),
		maxRetries: maxRetries,
		interval:   interval,
		log:        logger.With("component", "email_dispatcher"),
	}
	for range workers {
		d.pool.Go(d.work)
	}
	return d
}

func (d *Dispatcher) work() {
	for msg := range d.queue {
		d.deliver(msg)
	}
}

// Enqueue schedules msg for delivery and never blocks. The message is
// dropped when the queue is full or the dispatcher is closed.
func (d *Dispatcher) Enqueue(msg Message) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.log.Warn("dispatcher closed, dropping email", slog.String("subject", msg.Subject))
		return
	}

	select {
	case d.queue <- msg:
	default:
		d.log.Error("email queue full, dropping email",
			slog.String("subject", msg.Subject),
			slog.Int("capacity", cap(d.queue)),
		)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(d.interval),
		backoff.WithMaxInterval(10*d.interval),
		backoff.WithMaxElapsedTime(sendTimeout),
	), d.maxRetries)

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		_, err := d.sender.Send(ctx, msg)
		if err != nil {
			d.log.Warn("email send attempt failed",
				slog.Int("attempt", attempt),
				slog.String("subject", msg.Subject),
				slog.String("error", err.Error()),
			)
		}
		return err
	}, backoff.WithContext(b, ctx))
	if err != nil {
		d.log.Error("email delivery failed",
			slog.Int("attempts", attempt),
			slog.String("subject", msg.Subject),
			slog.String("error", err.Error()),
		)
	}
}

// Close stops accepting messages and waits until queued and in-flight
// deliveries finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.pool.Wait()
}

// Package activity serves the recent-activity feed and its live stream.
package activity

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// activityRepo defines the activity repository interface needed by activity service.
type activityRepo interface {
	Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}

// notifier delivers change notifications until ctx is cancelled.
type notifier interface {
	Listen(ctx context.Context, fn func(payload string)) error
}

// Service implements the activity feed.
type Service struct {
	log  *slog.Logger
	repo activityRepo
	hub  *Hub
}

// NewService creates a new activity service instance.
func NewService(logger *slog.Logger, repo activityRepo, hub *Hub) *Service {
	return &Service{
		log:  logger.With("service", "activity"),
		repo: repo,
		hub:  hub,
	}
}

// NormalizeLimit applies the default and the upper bound.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Recent returns the newest activities with their rendered messages.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	entries, err := s.repo.Recent(ctx, NormalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("activity.Recent: %w", err)
	}
	return entries, nil
}

// Subscribe returns the current feed and a subscription that receives a
// fresh snapshot after every insert. The subscription ends with ctx.
func (s *Service) Subscribe(ctx context.Context) ([]domain.ActivityEntry, *Subscriber, error) {
	sub := s.hub.Subscribe()
	context.AfterFunc(ctx, func() { s.hub.Unsubscribe(sub) })

	initial, err := s.Recent(ctx, DefaultLimit)
	if err != nil {
		s.hub.Unsubscribe(sub)
		return nil, nil, err
	}
	return initial, sub, nil
}

// Run relays insert notifications to subscribers until ctx is cancelled.
// Bursts of notifications collapse into a single refetch.
func (s *Service) Run(ctx context.Context, n notifier) error {
	changed := make(chan struct{}, 1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return n.Listen(ctx, func(string) {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-changed:
				s.refresh(ctx)
			}
		}
	})

	return g.Wait()
}

func (s *Service) refresh(ctx context.Context) {
	if s.hub.Len() == 0 {
		return
	}
	entries, err := s.repo.Recent(ctx, DefaultLimit)
	if err != nil {
		s.log.ErrorContext(ctx, "activity refetch failed", slog.String("error", err.Error()))
		return
	}
	s.hub.Broadcast(entries)
}

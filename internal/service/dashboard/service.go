// Package dashboard builds the admin overview and the effective settings view.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/pkg/ctxutil"
)

type ideaCounter interface {
	CountByStatus(ctx context.Context) (map[domain.IdeaStatus]int, error)
	CountByCategory(ctx context.Context) (map[domain.Category]int, error)
}

type userCounter interface {
	Count(ctx context.Context) (int, error)
}

type pointsSummer interface {
	Sum(ctx context.Context) (int, error)
}

// Service implements admin reporting.
type Service struct {
	log      *slog.Logger
	ideas    ideaCounter
	users    userCounter
	points   pointsSummer
	settings Settings
}

// NewService creates a new dashboard service instance.
func NewService(logger *slog.Logger, ideas ideaCounter, users userCounter, points pointsSummer, settings Settings) *Service {
	return &Service{
		log:      logger.With("service", "dashboard"),
		ideas:    ideas,
		users:    users,
		points:   points,
		settings: settings,
	}
}

// Stats loads the aggregates concurrently (admin only).
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	var stats domain.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m, err := s.ideas.CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("count by status: %w", err)
		}
		stats.IdeasByStatus = m
		return nil
	})
	g.Go(func() error {
		m, err := s.ideas.CountByCategory(gctx)
		if err != nil {
			return fmt.Errorf("count by category: %w", err)
		}
		stats.IdeasByCategory = m
		return nil
	})
	g.Go(func() error {
		n, err := s.users.Count(gctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		stats.TotalUsers = n
		return nil
	})
	g.Go(func() error {
		n, err := s.points.Sum(gctx)
		if err != nil {
			return fmt.Errorf("sum points: %w", err)
		}
		stats.TotalPoints = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard.Stats: %w", err)
	}

	if stats.IdeasByStatus == nil {
		stats.IdeasByStatus = make(map[domain.IdeaStatus]int)
	}
	if stats.IdeasByCategory == nil {
		stats.IdeasByCategory = make(map[domain.Category]int)
	}
	for _, st := range []domain.IdeaStatus{domain.IdeaStatusPending, domain.IdeaStatusApproved, domain.IdeaStatusRejected} {
		if _, ok := stats.IdeasByStatus[st]; !ok {
			stats.IdeasByStatus[st] = 0
		}
	}
	for _, c := range domain.Categories {
		if _, ok := stats.IdeasByCategory[c]; !ok {
			stats.IdeasByCategory[c] = 0
		}
	}
	for _, n := range stats.IdeasByStatus {
		stats.TotalIdeas += n
	}

	return &stats, nil
}

// Package ranking serves the points leaderboard.
package ranking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/pkg/ctxutil"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// pointsRepo defines the points repository interface needed by ranking service.
type pointsRepo interface {
	Top(ctx context.Context, limit int) ([]domain.RankingEntry, error)
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserPoints, error)
}

// rankingCache defines the leaderboard cache interface needed by ranking service.
type rankingCache interface {
	Get(ctx context.Context, limit int) ([]domain.RankingEntry, bool, error)
	Set(ctx context.Context, limit int, entries []domain.RankingEntry) error
	Invalidate(ctx context.Context) error
}

// Service implements leaderboard reads. The cache is optional.
type Service struct {
	log    *slog.Logger
	points pointsRepo
	cache  rankingCache
}

// NewService creates a new ranking service instance. cache may be nil.
func NewService(logger *slog.Logger, points pointsRepo, cache rankingCache) *Service {
	return &Service{
		log:    logger.With("service", "ranking"),
		points: points,
		cache:  cache,
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

// Top returns the leaderboard, highest total first.
func (s *Service) Top(ctx context.Context, limit int) ([]domain.RankingEntry, error) {
	limit = NormalizeLimit(limit)

	if s.cache != nil {
		entries, ok, err := s.cache.Get(ctx, limit)
		if err != nil {
			s.log.WarnContext(ctx, "ranking cache read failed", slog.String("error", err.Error()))
		} else if ok {
			return entries, nil
		}
	}

	entries, err := s.points.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("ranking.Top: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, limit, entries); err != nil {
			s.log.WarnContext(ctx, "ranking cache write failed", slog.String("error", err.Error()))
		}
	}
	return entries, nil
}

// MyPoints returns the authenticated user's aggregate.
func (s *Service) MyPoints(ctx context.Context) (*domain.UserPoints, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.points.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ranking.MyPoints: %w", err)
	}
	return p, nil
}

// Invalidate drops cached leaderboards after points change. Errors are logged.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "ranking cache invalidation failed", slog.String("error", err.Error()))
	}
}

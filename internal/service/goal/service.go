// Package goal manages organization-wide idea targets and their progress.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/pkg/ctxutil"
)

const (
	maxTitleLen = 200

	// progressConcurrency bounds parallel progress queries per listing.
	progressConcurrency = 4
)

// goalRepo defines the goal repository interface needed by goal service.
type goalRepo interface {
	List(ctx context.Context) ([]domain.Goal, error)
	Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountApproved(ctx context.Context, category *domain.Category, deadline *time.Time) (int, error)
}

// Service implements goal operations.
type Service struct {
	log   *slog.Logger
	goals goalRepo
}

// NewService creates a new goal service instance.
func NewService(logger *slog.Logger, goals goalRepo) *Service {
	return &Service{
		log:   logger.With("service", "goal"),
		goals: goals,
	}
}

// Input holds the mutable goal fields.
type Input struct {
	Title       string
	Category    *domain.Category
	TargetIdeas int
	Deadline    *time.Time
}

// Validate validates the goal input.
func (i Input) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}
	if i.TargetIdeas < 1 {
		errs = append(errs, domain.FieldError{Field: "target_ideas", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns every goal with its current progress.
func (s *Service) List(ctx context.Context) ([]domain.GoalProgress, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("goal.List: %w", err)
	}

	out := make([]domain.GoalProgress, len(goals))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(progressConcurrency)
	for i, goal := range goals {
		g.Go(func() error {
			n, err := s.goals.CountApproved(gctx, goal.Category, goal.Deadline)
			if err != nil {
				return fmt.Errorf("progress %s: %w", goal.ID, err)
			}
			out[i] = domain.NewGoalProgress(goal, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("goal.List: %w", err)
	}
	return out, nil
}

// Create adds a goal (admin only).
func (s *Service) Create(ctx context.Context, input Input) (*domain.Goal, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.goals.Create(ctx, &domain.Goal{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Category:    input.Category,
		TargetIdeas: input.TargetIdeas,
		Deadline:    input.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("goal.Create: %w", err)
	}

	s.log.InfoContext(ctx, "goal created", slog.String("goal_id", created.ID.String()))
	return created, nil
}

// Update replaces a goal's fields (admin only).
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input) (*domain.Goal, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.goals.Update(ctx, &domain.Goal{
		ID:          id,
		Title:       strings.TrimSpace(input.Title),
		Category:    input.Category,
		TargetIdeas: input.TargetIdeas,
		Deadline:    input.Deadline,
	})
	if err != nil {
		return nil, fmt.Errorf("goal.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a goal (admin only).
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if err := s.goals.Delete(ctx, id); err != nil {
		return fmt.Errorf("goal.Delete: %w", err)
	}
	s.log.InfoContext(ctx, "goal deleted", slog.String("goal_id", id.String()))
	return nil
}

package idea

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/pkg/ctxutil"
)

// Create submits a new idea for the authenticated user. The idea, the
// submission counter and the activity entry are written atomically.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	idea := &domain.Idea{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Impact:      input.Impact,
		Status:      domain.IdeaStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.Idea
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.ideas.Create(ctx, idea)
		if err != nil {
			return fmt.Errorf("create idea: %w", err)
		}
		if err := s.points.Apply(ctx, userID, domain.PointsDelta{IdeasSubmitted: 1}); err != nil {
			return fmt.Errorf("count submission: %w", err)
		}
		act := s.newActivity(created, domain.ActionIdeaCreated, map[string]any{"category": string(created.Category)})
		if err := s.activities.Create(ctx, act); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("idea.Create: %w", err)
	}

	s.ranking.Invalidate(ctx)

	s.log.InfoContext(ctx, "idea submitted",
		slog.String("idea_id", created.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("category", string(created.Category)))

	return created, nil
}

// ListMine returns the authenticated user's ideas, newest first.
func (s *Service) ListMine(ctx context.Context) ([]domain.IdeaWithAuthor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ideas, err := s.ideas.List(ctx, domain.IdeaFilter{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("idea.ListMine: %w", err)
	}
	return ideas, nil
}

// Get returns an idea visible to the caller. Ideas owned by someone else
// are reported as not found unless the caller is an admin.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	idea, err := s.ideas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("idea.Get: %w", err)
	}
	if idea.UserID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("idea %s: %w", id, domain.ErrNotFound)
	}
	return idea, nil
}

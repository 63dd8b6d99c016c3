package idea

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/internal/service/notification"
	"github.com/ecoideias/ecoideias-backend/pkg/ctxutil"
)

// ListAll returns a page of all ideas and the total count (admin only).
func (s *Service) ListAll(ctx context.Context, input ListInput) ([]domain.IdeaWithAuthor, int, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	filter := domain.IdeaFilter{
		Status:   input.Status,
		Category: input.Category,
		Limit:    input.limit(),
		Offset:   input.Offset,
	}

	ideas, err := s.ideas.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("idea.ListAll: %w", err)
	}
	total, err := s.ideas.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("idea.ListAll count: %w", err)
	}
	return ideas, total, nil
}

// Evaluate sets an idea's review status (admin only). Approval points and
// the approval counter are granted at most once per idea; later status
// changes never take them back.
func (s *Service) Evaluate(ctx context.Context, id uuid.UUID, input EvaluateInput) (*domain.Idea, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	reviewerID, _ := ctxutil.UserIDFromCtx(ctx)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated    *domain.Idea
		transition domain.StatusTransition
		changed    bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.ideas.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if current.Status == input.Status && sameFeedback(current.Feedback, input.Feedback) {
			updated = current
			return nil
		}
		changed = true

		transition = current.Transition(input.Status)
		updated, err = s.ideas.UpdateReview(ctx, id, input.Status, input.Feedback, transition.AwardPoints)
		if err != nil {
			return fmt.Errorf("update review: %w", err)
		}

		if transition.AwardPoints {
			delta := domain.PointsDelta{Points: s.cfg.Approval, IdeasApproved: 1}
			if err := s.points.Apply(ctx, current.UserID, delta); err != nil {
				return fmt.Errorf("award points: %w", err)
			}
		}

		if transition.From == transition.To {
			return nil
		}

		act := s.newActivity(updated, transition.Action, map[string]any{
			"old_status":  string(transition.From),
			"new_status":  string(transition.To),
			"reviewer_id": reviewerID.String(),
		})
		if err := s.activities.Create(ctx, act); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("idea.Evaluate: %w", err)
	}
	if !changed {
		return updated, nil
	}

	if transition.AwardPoints {
		s.ranking.Invalidate(ctx)
	}

	s.log.InfoContext(ctx, "idea evaluated",
		slog.String("idea_id", id.String()),
		slog.String("reviewer_id", reviewerID.String()),
		slog.String("from", string(transition.From)),
		slog.String("to", string(transition.To)),
		slog.Bool("points_awarded", transition.AwardPoints))

	if transition.From != transition.To {
		s.notifyOwner(ctx, updated, transition)
	}
	return updated, nil
}

// notifyOwner queues the status e-mail. Lookup failures are logged only.
func (s *Service) notifyOwner(ctx context.Context, idea *domain.Idea, t domain.StatusTransition) {
	owner, err := s.users.GetByID(ctx, idea.UserID)
	if err != nil {
		s.log.WarnContext(ctx, "status notification skipped: owner lookup failed",
			slog.String("idea_id", idea.ID.String()),
			slog.String("error", err.Error()))
		return
	}

	name := owner.Name
	if name == "" {
		name = domain.DefaultProfileName
	}
	s.notifier.EnqueueStatusChange(notification.StatusChange{
		Email:     owner.Email,
		UserName:  name,
		IdeaTitle: idea.Title,
		OldStatus: string(t.From),
		NewStatus: string(t.To),
	})
}

// Implement marks an approved idea as implemented and rewards its author (admin only).
func (s *Service) Implement(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	var updated *domain.Idea
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.ideas.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current.Status != domain.IdeaStatusApproved {
			return domain.NewValidationError("status", "only approved ideas can be implemented")
		}
		if current.Implemented {
			return fmt.Errorf("idea %s already implemented: %w", id, domain.ErrConflict)
		}

		updated, err = s.ideas.MarkImplemented(ctx, id)
		if err != nil {
			return fmt.Errorf("mark implemented: %w", err)
		}

		delta := domain.PointsDelta{Points: s.cfg.Implementation, IdeasImplemented: 1}
		if err := s.points.Apply(ctx, current.UserID, delta); err != nil {
			return fmt.Errorf("award points: %w", err)
		}

		if err := s.activities.Create(ctx, s.newActivity(updated, domain.ActionIdeaImplemented, nil)); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("idea.Implement: %w", err)
	}

	s.ranking.Invalidate(ctx)
	s.log.InfoContext(ctx, "idea implemented", slog.String("idea_id", id.String()))
	return updated, nil
}

func sameFeedback(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

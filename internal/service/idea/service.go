// Package idea implements idea submission and the review workflow.
package idea

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/internal/service/notification"
)

// ideaRepo defines the idea repository interface needed by idea service.
type ideaRepo interface {
	Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	List(ctx context.Context, f domain.IdeaFilter) ([]domain.IdeaWithAuthor, error)
	Count(ctx context.Context, f domain.IdeaFilter) (int, error)
	UpdateReview(ctx context.Context, id uuid.UUID, status domain.IdeaStatus, feedback *string, pointsAwarded bool) (*domain.Idea, error)
	MarkImplemented(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
}

// pointsRepo defines the points repository interface needed by idea service.
type pointsRepo interface {
	Apply(ctx context.Context, userID uuid.UUID, d domain.PointsDelta) error
}

// activityRepo defines the activity repository interface needed by idea service.
type activityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
}

// userRepo resolves idea owners for notifications.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by idea service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// rankingInvalidator drops cached leaderboards.
type rankingInvalidator interface {
	Invalidate(ctx context.Context)
}

// statusNotifier e-mails idea owners about status changes.
type statusNotifier interface {
	EnqueueStatusChange(in notification.StatusChange)
}

// PointsConfig holds the rewards granted by the workflow.
type PointsConfig struct {
	Approval       int
	Implementation int
}

// Service implements the idea workflow.
type Service struct {
	log        *slog.Logger
	ideas      ideaRepo
	points     pointsRepo
	activities activityRepo
	users      userRepo
	tx         txManager
	ranking    rankingInvalidator
	notifier   statusNotifier
	cfg        PointsConfig
	now        func() time.Time
}

// NewService creates a new idea service instance.
func NewService(
	logger *slog.Logger,
	ideas ideaRepo,
	points pointsRepo,
	activities activityRepo,
	users userRepo,
	tx txManager,
	ranking rankingInvalidator,
	notifier statusNotifier,
	cfg PointsConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "idea"),
		ideas:      ideas,
		points:     points,
		activities: activities,
		users:      users,
		tx:         tx,
		ranking:    ranking,
		notifier:   notifier,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// newActivity builds an activity about idea i owned by its author.
func (s *Service) newActivity(i *domain.Idea, action domain.ActionType, meta map[string]any) *domain.Activity {
	if meta == nil {
		meta = map[string]any{}
	}
	meta["title"] = i.Title
	id := i.ID
	return &domain.Activity{
		ID:         uuid.New(),
		UserID:     i.UserID,
		ActionType: action,
		EntityType: domain.EntityTypeIdea,
		EntityID:   &id,
		Metadata:   meta,
		CreatedAt:  s.now(),
	}
}

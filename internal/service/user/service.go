// Package user implements admin account management.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.UserWithPoints, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, p domain.UserUpdate) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// passwordHasher hashes new passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
}

// rankingInvalidator drops cached leaderboards after account changes.
type rankingInvalidator interface {
	Invalidate(ctx context.Context)
}

// Service implements user management operations. Every method requires an admin caller.
type Service struct {
	log       *slog.Logger
	users     userRepo
	tx        txManager
	passwords passwordHasher
	ranking   rankingInvalidator
	now       func() time.Time
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	passwords passwordHasher,
	ranking rankingInvalidator,
) *Service {
	return &Service{
		log:       logger.With("service", "user"),
		users:     users,
		tx:        tx,
		passwords: passwords,
		ranking:   ranking,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

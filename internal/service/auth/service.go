package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ecoideias/ecoideias-backend/internal/config"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, p domain.UserUpdate) (*domain.User, error)
}

// tokenRepo defines the password reset token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.PasswordResetToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the token issuing interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	TTL() time.Duration
}

// passwordHasher defines the password hashing interface needed by auth service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// resetMailer delivers the password reset link.
type resetMailer interface {
	EnqueuePasswordReset(to, name, link string)
}

// Service implements authentication and password recovery.
type Service struct {
	log       *slog.Logger
	users     userRepo
	tokens    tokenRepo
	tx        txManager
	jwt       jwtManager
	passwords passwordHasher
	mailer    resetMailer
	cfg       config.AuthConfig
	baseURL   string
	now       func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	passwords passwordHasher,
	mailer resetMailer,
	cfg config.AuthConfig,
	baseURL string,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		tokens:    tokens,
		tx:        tx,
		jwt:       jwt,
		passwords: passwords,
		mailer:    mailer,
		cfg:       cfg,
		baseURL:   baseURL,
		now:       time.Now,
	}
}

package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/pkg/ctxutil"
)

// List returns every account with its points, newest first.
func (s *Service) List(ctx context.Context) ([]domain.UserWithPoints, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// Get returns a single account.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return u, nil
}

// Create registers an account with a profile and a role.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user.Create hash: %w", err)
	}

	now := s.now()
	u := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.users.Create(ctx, u)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", created.ID.String()),
		slog.String("role", created.Role.String()))

	return created, nil
}

// Update changes account fields and, optionally, the role. Admins cannot
// demote themselves.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	callerID, _ := ctxutil.UserIDFromCtx(ctx)

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Role != nil && *input.Role != domain.UserRoleAdmin && callerID == id {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	upd := domain.UserUpdate{Name: input.Name, Email: input.Email}
	if input.Password != nil {
		hash, err := s.passwords.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("user.Update hash: %w", err)
		}
		upd.PasswordHash = &hash
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.users.Update(ctx, id, upd)
		if err != nil {
			return err
		}
		if input.Role != nil && *input.Role != updated.Role {
			if err := s.users.SetRole(ctx, id, *input.Role); err != nil {
				return err
			}
			updated.Role = *input.Role
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	if input.Name != nil || input.Email != nil {
		s.ranking.Invalidate(ctx)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("user_id", id.String()),
		slog.String("role", updated.Role.String()))

	return updated, nil
}

// Delete removes an account and everything it owns. Admins cannot delete themselves.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if callerID, _ := ctxutil.UserIDFromCtx(ctx); callerID == id {
		return domain.NewValidationError("id", "cannot delete yourself")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}

	s.ranking.Invalidate(ctx)
	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", id.String()))
	return nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	authpkg "github.com/ecoideias/ecoideias-backend/internal/auth"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

var errInvalidResetToken = domain.NewValidationError("token", "invalid or expired")

// ForgotPassword issues a reset token and e-mails the reset link.
// Unknown addresses succeed silently so the endpoint cannot probe accounts.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	if !ValidEmail(email) {
		return domain.NewValidationError("email", "invalid email")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("auth.ForgotPassword get user: %w", err)
	}

	raw, hash, err := authpkg.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("auth.ForgotPassword generate token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, user.ID, hash, s.now().Add(s.cfg.ResetTokenTTL)); err != nil {
		return fmt.Errorf("auth.ForgotPassword store token: %w", err)
	}

	s.mailer.EnqueuePasswordReset(user.Email, user.Name, s.resetLink(raw))

	s.log.InfoContext(ctx, "password reset token issued", slog.String("user_id", user.ID.String()))
	return nil
}

func (s *Service) resetLink(raw string) string {
	return strings.TrimRight(s.baseURL, "/") + "/reset-password?token=" + url.QueryEscape(raw)
}

// ResetPassword redeems a reset token and sets a new password.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	input.Token = strings.TrimSpace(input.Token)
	if err := input.Validate(); err != nil {
		return err
	}

	token, err := s.tokens.GetByHash(ctx, authpkg.HashToken(input.Token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errInvalidResetToken
		}
		return fmt.Errorf("auth.ResetPassword get token: %w", err)
	}

	now := s.now()
	if token.IsUsed() || token.IsExpired(now) {
		return errInvalidResetToken
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tokens.MarkUsed(ctx, token.ID, now); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return errInvalidResetToken
			}
			return fmt.Errorf("mark token used: %w", err)
		}
		if _, err := s.users.Update(ctx, token.UserID, domain.UserUpdate{PasswordHash: &hash}); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return err
		}
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", slog.String("user_id", token.UserID.String()))
	return nil
}

// CleanupTokens deletes used and expired reset tokens.
func (s *Service) CleanupTokens(ctx context.Context) (int, error) {
	n, err := s.tokens.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupTokens: %w", err)
	}
	s.log.InfoContext(ctx, "reset tokens cleaned up", slog.Int("deleted", n))
	return n, nil
}

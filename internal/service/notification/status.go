package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/pkg/ctxutil"
)

// StatusChange is the payload of a status-change e-mail.
type StatusChange struct {
	Email     string
	UserName  string
	IdeaTitle string
	OldStatus string
	NewStatus string
}

// Validate validates the notification input.
func (in StatusChange) Validate() error {
	var errs []domain.FieldError

	if in.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if in.IdeaTitle == "" {
		errs = append(errs, domain.FieldError{Field: "ideaTitle", Message: "required"})
	}
	if in.NewStatus == "" {
		errs = append(errs, domain.FieldError{Field: "newStatus", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SendStatusChange sends a status-change e-mail synchronously and returns
// the provider message id. The caller must hold the admin role.
func (s *Service) SendStatusChange(ctx context.Context, in StatusChange) (string, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	isAdmin, err := s.roles.HasRole(ctx, callerID, domain.UserRoleAdmin)
	if err != nil {
		return "", fmt.Errorf("notification.SendStatusChange check role: %w", err)
	}
	if !isAdmin {
		return "", domain.ErrForbidden
	}

	if err := in.Validate(); err != nil {
		return "", err
	}
	if s.sender == nil {
		return "", ErrDisabled
	}

	msg, err := s.RenderStatusChange(in)
	if err != nil {
		return "", fmt.Errorf("notification.SendStatusChange: %w", err)
	}

	id, err := s.sender.Send(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("notification.SendStatusChange: %w", err)
	}

	s.log.InfoContext(ctx, "status notification sent",
		slog.String("email_id", id),
		slog.String("new_status", in.NewStatus))

	return id, nil
}

// EnqueueStatusChange schedules a status-change e-mail on the background dispatcher.
func (s *Service) EnqueueStatusChange(in StatusChange) {
	if s.queue == nil {
		s.log.Debug("email disabled, skipping status notification")
		return
	}

	msg, err := s.RenderStatusChange(in)
	if err != nil {
		s.log.Error("render status email failed", slog.String("error", err.Error()))
		return
	}
	s.queue.Enqueue(msg)
}

// EnqueuePasswordReset schedules a password reset e-mail.
func (s *Service) EnqueuePasswordReset(to, name, link string) {
	if s.queue == nil {
		s.log.Warn("email disabled, password reset link not delivered")
		return
	}

	msg, err := s.RenderPasswordReset(to, name, link)
	if err != nil {
		s.log.Error("render reset email failed", slog.String("error", err.Error()))
		return
	}
	s.queue.Enqueue(msg)
}

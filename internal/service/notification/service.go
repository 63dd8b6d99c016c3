// Package notification renders and sends the platform's e-mails.
package notification

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ecoideias/ecoideias-backend/internal/adapter/provider/email"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// ErrDisabled is returned when an e-mail must be sent synchronously but no sender is configured.
var ErrDisabled = errors.New("notification: email not configured")

// roleChecker resolves roles through the database.
type roleChecker interface {
	HasRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (bool, error)
}

// dispatcher delivers e-mails in the background.
type dispatcher interface {
	Enqueue(msg email.Message)
}

// Config holds the values rendered into e-mails.
type Config struct {
	AppName        string
	ApprovalPoints int
	ResetTokenTTL  time.Duration
}

// Service renders e-mails and hands them to a sender.
// sender and queue may be nil when e-mail is disabled.
type Service struct {
	log    *slog.Logger
	roles  roleChecker
	sender email.Sender
	queue  dispatcher
	cfg    Config
	now    func() time.Time
}

// NewService creates a new notification service instance.
func NewService(logger *slog.Logger, roles roleChecker, sender email.Sender, queue dispatcher, cfg Config) *Service {
	return &Service{
		log:    logger.With("service", "notification"),
		roles:  roles,
		sender: sender,
		queue:  queue,
		cfg:    cfg,
		now:    time.Now,
	}
}

type statusView struct {
	AppName   string
	UserName  string
	IdeaTitle string
	OldStatus string
	NewStatus string
	Emoji     string
	Color     template.CSS
	Approved  bool
	Points    int
	Year      int
}

type resetView struct {
	AppName  string
	UserName string
	Link     string
	ValidFor string
}

// StatusStyle returns the emoji and colour used for a status.
func StatusStyle(status string) (emoji, color string) {
	switch domain.IdeaStatus(status) {
	case domain.IdeaStatusApproved:
		return "✅", "#10b981"
	case domain.IdeaStatusRejected:
		return "❌", "#ef4444"
	}
	return "🔄", "#f59e0b"
}

// RenderStatusChange builds the status-change e-mail.
func (s *Service) RenderStatusChange(in StatusChange) (email.Message, error) {
	emoji, color := StatusStyle(in.NewStatus)

	view := statusView{
		AppName:   s.cfg.AppName,
		UserName:  in.UserName,
		IdeaTitle: in.IdeaTitle,
		OldStatus: in.OldStatus,
		NewStatus: in.NewStatus,
		Emoji:     emoji,
		Color:     template.CSS(color),
		Approved:  domain.IdeaStatus(in.NewStatus) == domain.IdeaStatusApproved,
		Points:    s.cfg.ApprovalPoints,
		Year:      s.now().Year(),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "status.html", view); err != nil {
		return email.Message{}, fmt.Errorf("render status email: %w", err)
	}

	return email.Message{
		To:      in.Email,
		Subject: fmt.Sprintf("%s Status da Ideia: %s", emoji, in.IdeaTitle),
		HTML:    buf.String(),
	}, nil
}

// RenderPasswordReset builds the password reset e-mail.
func (s *Service) RenderPasswordReset(to, name, link string) (email.Message, error) {
	if name == "" {
		name = domain.DefaultProfileName
	}
	view := resetView{
		AppName:  s.cfg.AppName,
		UserName: name,
		Link:     link,
		ValidFor: formatTTL(s.cfg.ResetTokenTTL),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "reset.html", view); err != nil {
		return email.Message{}, fmt.Errorf("render reset email: %w", err)
	}

	return email.Message{
		To:      to,
		Subject: fmt.Sprintf("Redefinição de senha - %s", s.cfg.AppName),
		HTML:    buf.String(),
	}, nil
}

func formatTTL(d time.Duration) string {
	switch {
	case d <= 0:
		return "tempo limitado"
	case d == time.Hour:
		return "1 hora"
	case d%time.Hour == 0:
		return fmt.Sprintf("%d horas", d/time.Hour)
	default:
		return fmt.Sprintf("%d minutos", d/time.Minute)
	}
}

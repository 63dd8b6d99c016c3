// Package email sends transactional e-mail through Resend.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/ecoideias/ecoideias-backend/internal/config"
)

// ErrDisabled is returned by NewResend when no API key is configured.
var ErrDisabled = errors.New("email: resend api key not configured")

// Message is a single outbound HTML e-mail.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a message and returns the provider message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Resend implements Sender with the Resend API.
type Resend struct {
	client *resend.Client
	from   string
	log    *slog.Logger
}

// NewResend creates a Resend sender from configuration.
func NewResend(cfg config.EmailConfig, logger *slog.Logger) (*Resend, error) {
	if !cfg.Enabled() {
		return nil, ErrDisabled
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	if cfg.BaseURL != "" {
		base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("email: parse base url: %w", err)
		}
		client.BaseURL = base
	}

	return &Resend{
		client: client,
		from:   cfg.From,
		log:    logger.With("adapter", "resend"),
	}, nil
}

// Send delivers msg from the configured sender address.
func (r *Resend) Send(ctx context.Context, msg Message) (string, error) {
	if msg.To == "" {
		return "", errors.New("email: empty recipient")
	}

	sent, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("email: resend send: %w", err)
	}

	r.log.InfoContext(ctx, "email sent", slog.String("id", sent.Id), slog.String("subject", msg.Subject))
	return sent.Id, nil
}

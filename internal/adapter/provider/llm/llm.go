// Package llm wraps the language model providers behind a single completion call.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ecoideias/ecoideias-backend/internal/config"
)

// ErrDisabled is returned by New when no provider is configured.
var ErrDisabled = errors.New("llm: provider not configured")

// Request is a single-turn completion request.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	// JSON asks the model for a bare JSON object.
	JSON bool
}

// Provider completes prompts. An empty string with a nil error means the
// model produced no text.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
	Close() error
}

// New builds the provider selected by cfg.Provider.
func New(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (Provider, error) {
	if !cfg.Enabled() {
		return nil, ErrDisabled
	}

	switch cfg.Provider {
	case "anthropic":
		return NewAnthropic(cfg, logger), nil
	case "gemini":
		return NewGemini(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

// Package assistant answers free-form sustainability questions.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ecoideias/ecoideias-backend/internal/adapter/provider/llm"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

var (
	// ErrNotConfigured is returned when no AI provider is available.
	ErrNotConfigured = errors.New("ai service not configured")
	// ErrProvider wraps failures of the upstream model.
	ErrProvider = errors.New("ai provider error")
)

// FallbackReply is returned when the model produces no text.
const FallbackReply = "Desculpe, não consegui gerar uma resposta."

const maxMessageLen = 4000

const sustainabilityContext = `
Você é um assistente especializado em sustentabilidade para uma plataforma de eco-ideias. Seu papel é:

1. ORIENTAR sobre categorias de impacto:
   - Conservação de Água
   - Eficiência Energética
   - Redução de Resíduos
   - Transporte Sustentável
   - Materiais Sustentáveis
   - Biodiversidade

2. SUGERIR melhorias e alternativas sustentáveis
3. EXPLICAR impactos ambientais e benefícios
4. FORNECER dados e estatísticas quando relevante
5. AUXILIAR na quantificação de impactos (litros, kWh, kg, toneladas, %, unidades)

Seja sempre positivo, educativo e prático. Responda em português brasileiro.
`

type completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Service implements the sustainability chat.
type Service struct {
	log         *slog.Logger
	llm         completer
	temperature float64
}

// NewService creates a new assistant service. A nil provider disables the chat.
func NewService(logger *slog.Logger, provider completer, temperature float64) *Service {
	return &Service{
		log:         logger.With("service", "assistant"),
		llm:         provider,
		temperature: temperature,
	}
}

// Reply answers a single user message.
func (s *Service) Reply(ctx context.Context, message string) (string, error) {
	if s.llm == nil {
		return "", ErrNotConfigured
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return "", domain.NewValidationError("message", "Mensagem é obrigatória")
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return "", domain.NewValidationError("message", "Mensagem muito longa")
	}

	s.log.DebugContext(ctx, "assistant query", slog.Int("length", len(message)))

	reply, err := s.llm.Complete(ctx, llm.Request{
		System:      sustainabilityContext,
		Prompt:      message,
		Temperature: s.temperature,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "assistant provider failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("assistant.Reply: %w: %w", ErrProvider, err)
	}

	if strings.TrimSpace(reply) == "" {
		return FallbackReply, nil
	}
	return reply, nil
}

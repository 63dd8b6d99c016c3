// Package analysis asks the configured language model for improvement
// suggestions and duplicate detection on a draft idea.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ecoideias/ecoideias-backend/internal/adapter/provider/llm"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

// ErrNotConfigured is returned when no AI provider is available.
var ErrNotConfigured = errors.New("ai service not configured")

const (
	suggestionsSystem = "Você é um especialista em sustentabilidade que fornece sugestões práticas e acionáveis."
	similaritySystem  = "Você é um especialista em análise de similaridade de textos."

	maxExistingIdeas = 50
)

type completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Config holds sampling temperatures per call.
type Config struct {
	SuggestionTemperature float64
	SimilarityTemperature float64
}

// Service implements idea analysis.
type Service struct {
	log *slog.Logger
	llm completer
	cfg Config
}

// NewService creates a new analysis service. A nil provider disables analysis.
func NewService(logger *slog.Logger, provider completer, cfg Config) *Service {
	return &Service{
		log: logger.With("service", "analysis"),
		llm: provider,
		cfg: cfg,
	}
}

// ExistingIdea is a previously submitted idea to compare against.
type ExistingIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Input is a draft idea to analyze.
type Input struct {
	Title         string
	Description   string
	Category      string
	ExistingIdeas []ExistingIdea
}

// Validate validates the analysis input.
func (i Input) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if len(i.ExistingIdeas) > maxExistingIdeas {
		errs = append(errs, domain.FieldError{Field: "existingIdeas", Message: "too many ideas"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Suggestion is one proposed improvement.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SimilarIdea points at an entry of Input.ExistingIdeas.
type SimilarIdea struct {
	Index           int     `json:"index"`
	SimilarityScore float64 `json:"similarity_score"`
	Reason          string  `json:"reason"`
}

// Result is the combined analysis.
type Result struct {
	Suggestions     []Suggestion
	SimilarIdeas    []SimilarIdea
	SimilarityScore float64
}

// Analyze requests suggestions and, when existing ideas are given, a
// similarity report. A failed similarity call yields an empty report.
func (s *Service) Analyze(ctx context.Context, in Input) (*Result, error) {
	if s.llm == nil {
		return nil, ErrNotConfigured
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "analyzing idea",
		slog.String("title", in.Title),
		slog.String("category", in.Category))

	raw, err := s.llm.Complete(ctx, llm.Request{
		System:      suggestionsSystem,
		Prompt:      suggestionsPrompt(in),
		Temperature: s.cfg.SuggestionTemperature,
		JSON:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("analysis.Analyze suggestions: %w", err)
	}

	var sug struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := decodeJSON(raw, &sug); err != nil {
		return nil, fmt.Errorf("analysis.Analyze suggestions: %w", err)
	}

	res := &Result{
		Suggestions:  sug.Suggestions,
		SimilarIdeas: []SimilarIdea{},
	}
	if res.Suggestions == nil {
		res.Suggestions = []Suggestion{}
	}

	if len(in.ExistingIdeas) > 0 {
		s.similarity(ctx, in, res)
	}
	return res, nil
}

func (s *Service) similarity(ctx context.Context, in Input, res *Result) {
	raw, err := s.llm.Complete(ctx, llm.Request{
		System:      similaritySystem,
		Prompt:      similarityPrompt(in),
		Temperature: s.cfg.SimilarityTemperature,
		JSON:        true,
	})
	if err != nil {
		s.log.WarnContext(ctx, "similarity check failed", slog.String("error", err.Error()))
		return
	}

	var sim struct {
		SimilarIdeas  []SimilarIdea `json:"similar_ideas"`
		MaxSimilarity float64       `json:"max_similarity"`
	}
	if err := decodeJSON(raw, &sim); err != nil {
		s.log.WarnContext(ctx, "similarity response unreadable", slog.String("error", err.Error()))
		return
	}

	for _, si := range sim.SimilarIdeas {
		if si.Index < 0 || si.Index >= len(in.ExistingIdeas) {
			continue
		}
		res.SimilarIdeas = append(res.SimilarIdeas, si)
	}
	res.SimilarityScore = clamp01(sim.MaxSimilarity)
}

func suggestionsPrompt(in Input) string {
	return fmt.Sprintf(`
Você é um especialista em sustentabilidade. Analise a seguinte ideia e forneça 3-5 sugestões específicas para melhorá-la:

Título: %s
Descrição: %s
Categoria: %s

Retorne as sugestões em formato JSON:
{
  "suggestions": [
    { "title": "Título da sugestão", "description": "Descrição detalhada" }
  ]
}`, in.Title, in.Description, in.Category)
}

func similarityPrompt(in Input) string {
	// Numbering matches the zero-based "index" the reply refers back to.
	lines := make([]string, len(in.ExistingIdeas))
	for i, e := range in.ExistingIdeas {
		lines[i] = fmt.Sprintf("%d. %s: %s", i, e.Title, e.Description)
	}
	return fmt.Sprintf(`
Analise se a seguinte ideia é similar a alguma das ideias existentes:

NOVA IDEIA:
Título: %s
Descrição: %s

IDEIAS EXISTENTES:
%s

Retorne em formato JSON:
{
  "similar_ideas": [
    { "index": 0, "similarity_score": 0.85, "reason": "Motivo da similaridade" }
  ],
  "max_similarity": 0.85
}

Similarity score deve ser entre 0 e 1, onde 1 é idêntico.`, in.Title, in.Description, strings.Join(lines, "\n"))
}

// decodeJSON unmarshals the outermost {...} object of a model reply,
// tolerating code fences or prose around it.
func decodeJSON(raw string, v any) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return errors.New("no JSON object in model reply")
	}
	return json.Unmarshal([]byte(raw[start:end+1]), v)
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

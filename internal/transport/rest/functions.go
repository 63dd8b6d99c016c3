package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecoideias/ecoideias-backend/internal/service/analysis"
	"github.com/ecoideias/ecoideias-backend/internal/service/assistant"
	"github.com/ecoideias/ecoideias-backend/internal/service/export"
	"github.com/ecoideias/ecoideias-backend/internal/service/notification"
)

type analysisService interface {
	Analyze(ctx context.Context, in analysis.Input) (*analysis.Result, error)
}

type exportService interface {
	Export(ctx context.Context, req export.Request) (*export.Result, error)
}

type statusMailer interface {
	SendStatusChange(ctx context.Context, in notification.StatusChange) (string, error)
}

type assistantService interface {
	Reply(ctx context.Context, message string) (string, error)
}

// FunctionsHandler serves the /functions/v1 endpoints the web client calls
// for AI analysis, exports, status e-mails and the sustainability assistant.
type FunctionsHandler struct {
	analysis  analysisService
	export    exportService
	mailer    statusMailer
	assistant assistantService
	log       *slog.Logger
}

// NewFunctionsHandler creates a FunctionsHandler.
func NewFunctionsHandler(
	analysis analysisService,
	export exportService,
	mailer statusMailer,
	assistant assistantService,
	logger *slog.Logger,
) *FunctionsHandler {
	return &FunctionsHandler{
		analysis:  analysis,
		export:    export,
		mailer:    mailer,
		assistant: assistant,
		log:       logger.With("handler", "functions"),
	}
}

type analyzeIdeaRequest struct {
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Category      string                  `json:"category"`
	ExistingIdeas []analysis.ExistingIdea `json:"existingIdeas"`
}

type analyzeIdeaResponse struct {
	Suggestions     []analysis.Suggestion  `json:"suggestions"`
	SimilarIdeas    []analysis.SimilarIdea `json:"similarIdeas"`
	SimilarityScore float64                `json:"similarityScore"`
}

// AnalyzeIdea handles POST /functions/v1/ai-analyze-idea.
func (h *FunctionsHandler) AnalyzeIdea(w http.ResponseWriter, r *http.Request) {
	var req analyzeIdeaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.analysis.Analyze(r.Context(), analysis.Input{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		ExistingIdeas: req.ExistingIdeas,
	})
	if err != nil {
		if errors.Is(err, analysis.ErrNotConfigured) {
			writeError(w, http.StatusInternalServerError, "Serviço de IA não configurado")
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeIdeaResponse{
		Suggestions:     res.Suggestions,
		SimilarIdeas:    res.SimilarIdeas,
		SimilarityScore: res.SimilarityScore,
	})
}

type exportRequest struct {
	Format  string `json:"format"`
	Filters struct {
		Status    string `json:"status"`
		Category  string `json:"category"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	} `json:"filters"`
}

// ExportIdeas handles POST /functions/v1/export-ideas.
func (h *FunctionsHandler) ExportIdeas(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.export.Export(r.Context(), export.Request{
		Format: req.Format,
		Filters: export.Filters{
			Status:    req.Filters.Status,
			Category:  req.Filters.Category,
			StartDate: req.Filters.StartDate,
			EndDate:   req.Filters.EndDate,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if res.Format == export.FormatJSON {
		writeJSON(w, http.StatusOK, map[string]any{"ideas": toIdeaList(res.Ideas)})
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(res.CSV)))
	w.WriteHeader(http.StatusOK)
	w.Write(res.CSV) //nolint:errcheck
}

type statusNotificationRequest struct {
	Email     string `json:"email"`
	UserName  string `json:"userName"`
	IdeaTitle string `json:"ideaTitle"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
}

// SendStatusNotification handles POST /functions/v1/send-status-notification.
func (h *FunctionsHandler) SendStatusNotification(w http.ResponseWriter, r *http.Request) {
	var req statusNotificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := h.mailer.SendStatusChange(r.Context(), notification.StatusChange{
		Email:     req.Email,
		UserName:  req.UserName,
		IdeaTitle: req.IdeaTitle,
		OldStatus: req.OldStatus,
		NewStatus: req.NewStatus,
	})
	if err != nil {
		if errors.Is(err, notification.ErrDisabled) {
			writeError(w, http.StatusInternalServerError, "Serviço de e-mail não configurado")
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]string{"id": id},
	})
}

type assistantRequest struct {
	Message string `json:"message"`
}

// SustainabilityAI handles POST /functions/v1/sustainability-ai.
func (h *FunctionsHandler) SustainabilityAI(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.assistant.Reply(r.Context(), req.Message)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
	case errors.Is(err, assistant.ErrNotConfigured):
		writeError(w, http.StatusInternalServerError, "Serviço de IA não configurado")
	case errors.Is(err, assistant.ErrProvider):
		writeError(w, http.StatusInternalServerError, "Erro na consulta à IA")
	default:
		handleError(h.log, w, r, err)
	}
}

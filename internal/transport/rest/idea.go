package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/internal/service/idea"
)

// ideaService defines the minimal interface needed by IdeaHandler.
type ideaService interface {
	Create(ctx context.Context, input idea.CreateInput) (*domain.Idea, error)
	ListMine(ctx context.Context) ([]domain.IdeaWithAuthor, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	ListAll(ctx context.Context, input idea.ListInput) ([]domain.IdeaWithAuthor, int, error)
	Evaluate(ctx context.Context, id uuid.UUID, input idea.EvaluateInput) (*domain.Idea, error)
	Implement(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
}

// IdeaHandler serves the idea endpoints for users and reviewers.
type IdeaHandler struct {
	svc ideaService
	log *slog.Logger
}

// NewIdeaHandler creates an IdeaHandler.
func NewIdeaHandler(svc ideaService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{svc: svc, log: logger.With("handler", "idea")}
}

type createIdeaRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Impact      *string `json:"impact"`
}

type evaluateIdeaRequest struct {
	Status   string  `json:"status"`
	Feedback *string `json:"feedback"`
}

type ideaListResponse struct {
	Ideas []ideaResponse `json:"ideas"`
	Total int            `json:"total"`
}

// Create handles POST /api/ideas.
func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createIdeaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), idea.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.Category(req.Category),
		Impact:      req.Impact,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toIdeaResponse(created))
}

// ListMine handles GET /api/ideas/mine.
func (h *IdeaHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ideaListResponse{Ideas: toIdeaList(ideas), Total: len(ideas)})
}

// Get handles GET /api/ideas/{id}.
func (h *IdeaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	found, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIdeaResponse(found))
}

// ListAll handles GET /api/admin/ideas.
func (h *IdeaHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := idea.ListInput{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	if s := q.Get("status"); s != "" && s != "all" {
		status := domain.IdeaStatus(s)
		input.Status = &status
	}
	if c := q.Get("category"); c != "" && c != "all" {
		category := domain.Category(c)
		input.Category = &category
	}

	ideas, total, err := h.svc.ListAll(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ideaListResponse{Ideas: toIdeaList(ideas), Total: total})
}

// Evaluate handles POST /api/admin/ideas/{id}/evaluate.
func (h *IdeaHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req evaluateIdeaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.svc.Evaluate(r.Context(), id, idea.EvaluateInput{
		Status:   domain.IdeaStatus(req.Status),
		Feedback: req.Feedback,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIdeaResponse(updated))
}

// Implement handles POST /api/admin/ideas/{id}/implement.
func (h *IdeaHandler) Implement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.Implement(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIdeaResponse(updated))
}

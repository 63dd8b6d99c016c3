package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/internal/service/goal"
)

// goalService defines the minimal interface needed by GoalHandler.
type goalService interface {
	List(ctx context.Context) ([]domain.GoalProgress, error)
	Create(ctx context.Context, input goal.Input) (*domain.Goal, error)
	Update(ctx context.Context, id uuid.UUID, input goal.Input) (*domain.Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalHandler serves the sustainability goals.
type GoalHandler struct {
	svc goalService
	log *slog.Logger
}

// NewGoalHandler creates a GoalHandler.
func NewGoalHandler(svc goalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{svc: svc, log: logger.With("handler", "goal")}
}

type goalRequest struct {
	Title       string  `json:"title"`
	Category    *string `json:"category"`
	TargetIdeas int     `json:"target_ideas"`
	Deadline    *string `json:"deadline"`
}

func (req goalRequest) toInput() (goal.Input, error) {
	input := goal.Input{Title: req.Title, TargetIdeas: req.TargetIdeas}
	if req.Category != nil && *req.Category != "" {
		c := domain.Category(*req.Category)
		input.Category = &c
	}
	if req.Deadline != nil && *req.Deadline != "" {
		d, err := parseDeadline(*req.Deadline)
		if err != nil {
			return goal.Input{}, domain.NewValidationError("deadline", "invalid date")
		}
		input.Deadline = &d
	}
	return input, nil
}

func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// List handles GET /api/admin/goals and GET /api/goals.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]goalResponse, len(goals))
	for i := range goals {
		resp := toGoalResponse(&goals[i].Goal)
		achieved, pct := goals[i].Achieved, goals[i].Percent
		resp.Progress, resp.Percent = &achieved, &pct
		out[i] = resp
	}
	writeJSON(w, http.StatusOK, map[string]any{"goals": out})
}

// Create handles POST /api/admin/goals.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	input, err := req.toInput()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	g, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGoalResponse(g))
}

// Update handles PUT /api/admin/goals/{id}.
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req goalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	input, err := req.toInput()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	g, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// Delete handles DELETE /api/admin/goals/{id}.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

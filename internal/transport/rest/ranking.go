package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

// rankingService defines the minimal interface needed by RankingHandler.
type rankingService interface {
	Top(ctx context.Context, limit int) ([]domain.RankingEntry, error)
	MyPoints(ctx context.Context) (*domain.UserPoints, error)
}

// RankingHandler serves the leaderboard and the caller's points.
type RankingHandler struct {
	svc rankingService
	log *slog.Logger
}

// NewRankingHandler creates a RankingHandler.
func NewRankingHandler(svc rankingService, logger *slog.Logger) *RankingHandler {
	return &RankingHandler{svc: svc, log: logger.With("handler", "ranking")}
}

// Top handles GET /api/ranking?limit=.
func (h *RankingHandler) Top(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Top(r.Context(), queryInt(r, "limit"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]rankingEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = rankingEntryResponse{
			Position:         e.Position,
			UserID:           e.UserID.String(),
			Name:             e.Name,
			Email:            e.Email,
			TotalPoints:      e.TotalPoints,
			IdeasSubmitted:   e.IdeasSubmitted,
			IdeasApproved:    e.IdeasApproved,
			IdeasImplemented: e.IdeasImplemented,
			Badge:            e.Badge,
			Initials:         e.Initials,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"ranking": out})
}

// MyPoints handles GET /api/points/me.
func (h *RankingHandler) MyPoints(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.MyPoints(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPointsResponse(*p))
}

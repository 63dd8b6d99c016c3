package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/internal/service/dashboard"
)

// dashboardService defines the minimal interface needed by AdminHandler.
type dashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	Settings(ctx context.Context) (dashboard.Settings, error)
}

// AdminHandler serves the admin overview and the effective settings.
type AdminHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc dashboardService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type dashboardResponse struct {
	IdeasByStatus   map[string]int `json:"ideas_by_status"`
	IdeasByCategory map[string]int `json:"ideas_by_category"`
	TotalIdeas      int            `json:"total_ideas"`
	TotalUsers      int            `json:"total_users"`
	TotalPoints     int            `json:"total_points"`
}

type settingsResponse struct {
	AppName              string `json:"app_name"`
	ApprovalPoints       int    `json:"approval_points"`
	ImplementationPoints int    `json:"implementation_points"`
	AIEnabled            bool   `json:"ai_enabled"`
	AIProvider           string `json:"ai_provider"`
	AIModel              string `json:"ai_model"`
	EmailEnabled         bool   `json:"email_enabled"`
	ExportMaxRows        int    `json:"export_max_rows"`
	ExportTimezone       string `json:"export_timezone"`
	RankingCacheEnabled  bool   `json:"ranking_cache_enabled"`
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := dashboardResponse{
		IdeasByStatus:   make(map[string]int, len(stats.IdeasByStatus)),
		IdeasByCategory: make(map[string]int, len(stats.IdeasByCategory)),
		TotalIdeas:      stats.TotalIdeas,
		TotalUsers:      stats.TotalUsers,
		TotalPoints:     stats.TotalPoints,
	}
	for s, n := range stats.IdeasByStatus {
		resp.IdeasByStatus[s.String()] = n
	}
	for c, n := range stats.IdeasByCategory {
		resp.IdeasByCategory[c.String()] = n
	}
	writeJSON(w, http.StatusOK, resp)
}

// Settings handles GET /api/admin/settings.
func (h *AdminHandler) Settings(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Settings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{
		AppName:              s.AppName,
		ApprovalPoints:       s.ApprovalPoints,
		ImplementationPoints: s.ImplementationPoints,
		AIEnabled:            s.AIEnabled,
		AIProvider:           s.AIProvider,
		AIModel:              s.AIModel,
		EmailEnabled:         s.EmailEnabled,
		ExportMaxRows:        s.ExportMaxRows,
		ExportTimezone:       s.ExportTimezone,
		RankingCacheEnabled:  s.RankingCacheEnabled,
	})
}

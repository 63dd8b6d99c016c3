package rest

import (
	"net/http"

	"github.com/ecoideias/ecoideias-backend/internal/transport/middleware"
)

// Handlers groups every API handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Idea      *IdeaHandler
	User      *UserHandler
	Goal      *GoalHandler
	Ranking   *RankingHandler
	Activity  *ActivityHandler
	Admin     *AdminHandler
	Functions *FunctionsHandler
}

// Limits are the per-route rate limiters. Nil entries disable limiting.
type Limits struct {
	Login middleware.Middleware
	Reset middleware.Middleware
	AI    middleware.Middleware
}

// Register mounts the API on mux. Session resolution (middleware.Auth) must
// already wrap mux; the guards here only check its outcome.
func Register(mux *http.ServeMux, h Handlers, limits Limits) {
	authed := middleware.RequireAuth()
	admin := middleware.RequireAdmin()
	login := orPassthrough(limits.Login)
	reset := orPassthrough(limits.Reset)
	ai := middleware.Chain(authed, orPassthrough(limits.AI))

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /api/auth/login", login(http.HandlerFunc(h.Auth.Login)))
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)
	mux.Handle("POST /api/auth/forgot-password", reset(http.HandlerFunc(h.Auth.ForgotPassword)))
	mux.Handle("POST /api/auth/reset-password", reset(http.HandlerFunc(h.Auth.ResetPassword)))
	mux.Handle("GET /api/auth/me", authed(http.HandlerFunc(h.Auth.Me)))

	mux.Handle("POST /api/ideas", authed(http.HandlerFunc(h.Idea.Create)))
	mux.Handle("GET /api/ideas/mine", authed(http.HandlerFunc(h.Idea.ListMine)))
	mux.Handle("GET /api/ideas/{id}", authed(http.HandlerFunc(h.Idea.Get)))

	mux.Handle("GET /api/ranking", authed(http.HandlerFunc(h.Ranking.Top)))
	mux.Handle("GET /api/points/me", authed(http.HandlerFunc(h.Ranking.MyPoints)))
	mux.Handle("GET /api/activities", authed(http.HandlerFunc(h.Activity.Recent)))
	mux.Handle("GET /api/activities/stream", authed(http.HandlerFunc(h.Activity.Stream)))
	mux.Handle("GET /api/goals", authed(http.HandlerFunc(h.Goal.List)))

	mux.Handle("GET /api/admin/ideas", admin(http.HandlerFunc(h.Idea.ListAll)))
	mux.Handle("POST /api/admin/ideas/{id}/evaluate", admin(http.HandlerFunc(h.Idea.Evaluate)))
	mux.Handle("POST /api/admin/ideas/{id}/implement", admin(http.HandlerFunc(h.Idea.Implement)))

	mux.Handle("GET /api/admin/users", admin(http.HandlerFunc(h.User.List)))
	mux.Handle("POST /api/admin/users", admin(http.HandlerFunc(h.User.Create)))
	mux.Handle("GET /api/admin/users/{id}", admin(http.HandlerFunc(h.User.Get)))
	mux.Handle("PUT /api/admin/users/{id}", admin(http.HandlerFunc(h.User.Update)))
	mux.Handle("DELETE /api/admin/users/{id}", admin(http.HandlerFunc(h.User.Delete)))

	mux.Handle("GET /api/admin/goals", admin(http.HandlerFunc(h.Goal.List)))
	mux.Handle("POST /api/admin/goals", admin(http.HandlerFunc(h.Goal.Create)))
	mux.Handle("PUT /api/admin/goals/{id}", admin(http.HandlerFunc(h.Goal.Update)))
	mux.Handle("DELETE /api/admin/goals/{id}", admin(http.HandlerFunc(h.Goal.Delete)))

	mux.Handle("GET /api/admin/dashboard", admin(http.HandlerFunc(h.Admin.Dashboard)))
	mux.Handle("GET /api/admin/settings", admin(http.HandlerFunc(h.Admin.Settings)))

	mux.Handle("POST /functions/v1/ai-analyze-idea", ai(http.HandlerFunc(h.Functions.AnalyzeIdea)))
	mux.Handle("POST /functions/v1/export-ideas", authed(http.HandlerFunc(h.Functions.ExportIdeas)))
	mux.Handle("POST /functions/v1/send-status-notification", authed(http.HandlerFunc(h.Functions.SendStatusNotification)))
	mux.Handle("POST /functions/v1/sustainability-ai", ai(http.HandlerFunc(h.Functions.SustainabilityAI)))

	mux.HandleFunc("GET /api/", notFound)
	mux.HandleFunc("GET /functions/", notFound)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func orPassthrough(mw middleware.Middleware) middleware.Middleware {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}

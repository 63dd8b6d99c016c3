package dashboard

import (
	"context"

	"github.com/ecoideias/ecoideias-backend/internal/config"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/pkg/ctxutil"
)

// Settings is the non-secret view of the effective configuration.
type Settings struct {
	AppName              string
	ApprovalPoints       int
	ImplementationPoints int
	AIProvider           string
	AIModel              string
	AIEnabled            bool
	EmailEnabled         bool
	ExportMaxRows        int
	ExportTimezone       string
	RankingCacheEnabled  bool
}

// SettingsFromConfig extracts the displayable settings. Keys and secrets are never copied.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		AppName:              cfg.App.Name,
		ApprovalPoints:       cfg.Points.Approval,
		ImplementationPoints: cfg.Points.Implementation,
		AIProvider:           cfg.AI.Provider,
		AIModel:              cfg.AI.Model,
		AIEnabled:            cfg.AI.Enabled(),
		EmailEnabled:         cfg.Email.Enabled(),
		ExportMaxRows:        cfg.Export.MaxRows,
		ExportTimezone:       cfg.Export.Timezone,
		RankingCacheEnabled:  cfg.Cache.RedisAddr != "",
	}
}

// Settings returns the effective settings (admin only).
func (s *Service) Settings(ctx context.Context) (Settings, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return Settings{}, domain.ErrForbidden
	}
	return s.settings, nil
}

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ecoideias/ecoideias-backend/internal/adapter/postgres"
	tokenrepo "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres/token"
	userrepo "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres/user"
	"github.com/ecoideias/ecoideias-backend/internal/config"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
	"github.com/ecoideias/ecoideias-backend/migrations"
)

// Migrate applies or reports the embedded goose migrations.
// command is one of "up", "down" (one step) or "status".
func Migrate(ctx context.Context, command string, out io.Writer) error {
	cfg, logger, err := loadTooling()
	if err != nil {
		return err
	}

	pool, err := openPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("app.Migrate: %w", err)
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("app.Migrate: up: %w", err)
		}
		for _, r := range results {
			logger.Info("migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration),
			)
		}
		if len(results) == 0 {
			logger.Info("no migrations to apply")
		}
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("app.Migrate: down: %w", err)
		}
		logger.Info("migration rolled back", slog.Int64("version", r.Source.Version))
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("app.Migrate: status: %w", err)
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = "applied " + s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(out, "%-6d %-40s %s\n", s.Source.Version, s.Source.Path, applied)
		}
	default:
		return fmt.Errorf("app.Migrate: unknown command %q", command)
	}
	return nil
}

// Promote grants the admin role to the user registered under email.
func Promote(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.NewValidationError("email", "required")
	}

	cfg, logger, err := loadTooling()
	if err != nil {
		return err
	}

	pool, err := openPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	users := userrepo.New(pool)
	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("app.Promote: %w", err)
	}
	if u.Role == domain.UserRoleAdmin {
		logger.Info("user already admin", slog.String("email", email))
		return nil
	}
	if err := users.SetRole(ctx, u.ID, domain.UserRoleAdmin); err != nil {
		return fmt.Errorf("app.Promote: %w", err)
	}

	logger.Info("user promoted to admin", slog.String("email", email), slog.String("user_id", u.ID.String()))
	return nil
}

// CleanupTokens deletes used and expired password reset tokens.
func CleanupTokens(ctx context.Context) (int, error) {
	cfg, logger, err := loadTooling()
	if err != nil {
		return 0, err
	}

	pool, err := openPool(ctx, cfg.Database)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	n, err := tokenrepo.New(pool).DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("app.CleanupTokens: %w", err)
	}

	logger.Info("reset tokens cleaned up", slog.Int("deleted", n))
	return n, nil
}

func loadTooling() (*config.ToolingConfig, *slog.Logger, error) {
	cfg, err := config.LoadTooling()
	if err != nil {
		return nil, nil, err
	}
	return cfg, NewLogger(cfg.Log), nil
}

func openPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("app.openPool: %w", err)
	}
	return pool, nil
}

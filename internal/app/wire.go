package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ecoideias/ecoideias-backend/internal/adapter/cache"
	"github.com/ecoideias/ecoideias-backend/internal/adapter/postgres"
	activityrepo "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres/activity"
	goalrepo "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres/goal"
	idearepo "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres/idea"
	pointsrepo "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres/points"
	tokenrepo "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres/token"
	userrepo "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres/user"
	"github.com/ecoideias/ecoideias-backend/internal/adapter/provider/email"
	"github.com/ecoideias/ecoideias-backend/internal/adapter/provider/llm"
	authpkg "github.com/ecoideias/ecoideias-backend/internal/auth"
	"github.com/ecoideias/ecoideias-backend/internal/config"
	"github.com/ecoideias/ecoideias-backend/internal/service/activity"
	"github.com/ecoideias/ecoideias-backend/internal/service/analysis"
	"github.com/ecoideias/ecoideias-backend/internal/service/assistant"
	"github.com/ecoideias/ecoideias-backend/internal/service/auth"
	"github.com/ecoideias/ecoideias-backend/internal/service/dashboard"
	"github.com/ecoideias/ecoideias-backend/internal/service/export"
	"github.com/ecoideias/ecoideias-backend/internal/service/goal"
	"github.com/ecoideias/ecoideias-backend/internal/service/idea"
	"github.com/ecoideias/ecoideias-backend/internal/service/notification"
	"github.com/ecoideias/ecoideias-backend/internal/service/ranking"
	"github.com/ecoideias/ecoideias-backend/internal/service/user"
	"github.com/ecoideias/ecoideias-backend/internal/transport/middleware"
	"github.com/ecoideias/ecoideias-backend/internal/transport/rest"
	"github.com/ecoideias/ecoideias-backend/internal/transport/web"
)

// activityChannel is the NOTIFY channel fed by the activities insert trigger.
const activityChannel = "activities_changes"

// container holds the wired application and everything that must be released.
type container struct {
	handler   http.Handler
	auth      *auth.Service
	activity  *activity.Service
	hub       *activity.Hub
	listener  *postgres.Listener
	startedAt time.Time

	closers []func()
}

// close releases resources in reverse order of acquisition.
func (c *container) close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *container, err error) {
	c := &container{startedAt: time.Now()}
	defer func() {
		if err != nil {
			c.close()
		}
	}()

	// --- Database ---
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app.build: %w", err)
	}
	c.closers = append(c.closers, func() {
		pool.Close()
		logger.Info("database pool closed")
	})
	logger.Info("database connected",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
		slog.Int("min_conns", int(cfg.Database.MinConns)),
	)

	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	ideas := idearepo.New(pool)
	points := pointsrepo.New(pool)
	activities := activityrepo.New(pool)
	goals := goalrepo.New(pool)
	tokens := tokenrepo.New(pool)

	// --- Optional infrastructure ---
	rdb, rankingCache, err := buildCache(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if rdb != nil {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	provider, err := llm.New(ctx, cfg.AI, logger)
	switch {
	case errors.Is(err, llm.ErrDisabled):
		logger.Warn("ai provider not configured, ai endpoints disabled")
	case err != nil:
		return nil, fmt.Errorf("app.build: %w", err)
	default:
		c.closers = append(c.closers, func() { _ = provider.Close() })
	}

	sender, dispatcher, err := buildEmail(cfg, logger)
	if err != nil {
		return nil, err
	}

	// --- Services ---
	var notifications *notification.Service
	if dispatcher != nil {
		c.closers = append(c.closers, dispatcher.Close)
		notifications = notification.NewService(logger, users, sender, dispatcher, notificationConfig(cfg))
	} else {
		notifications = notification.NewService(logger, users, nil, nil, notificationConfig(cfg))
	}

	jwtManager := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	passwords := authpkg.NewPasswordHasher(0)

	var rankingSvc *ranking.Service
	if rankingCache != nil {
		rankingSvc = ranking.NewService(logger, points, rankingCache)
	} else {
		rankingSvc = ranking.NewService(logger, points, nil)
	}

	hub := activity.NewHub(logger)
	c.hub = hub
	activitySvc := activity.NewService(logger, activities, hub)
	c.activity = activitySvc
	c.listener = postgres.NewListener(pool, activityChannel, logger)

	authSvc := auth.NewService(logger, users, tokens, txm, jwtManager, passwords, notifications, cfg.Auth, cfg.App.BaseURL)
	c.auth = authSvc
	ideaSvc := idea.NewService(logger, ideas, points, activities, users, txm, rankingSvc, notifications, idea.PointsConfig{
		Approval:       cfg.Points.Approval,
		Implementation: cfg.Points.Implementation,
	})
	userSvc := user.NewService(logger, users, txm, passwords, rankingSvc)
	goalSvc := goal.NewService(logger, goals)
	dashboardSvc := dashboard.NewService(logger, ideas, users, points, dashboard.SettingsFromConfig(cfg))
	exportSvc := export.NewService(logger, ideas, export.Config{
		MaxRows:  cfg.Export.MaxRows,
		Location: cfg.Export.Location,
	})

	// A nil Provider interface stays nil through the conversion, so both
	// services report ErrNotConfigured when AI is off.
	analysisSvc := analysis.NewService(logger, provider, analysisConfig(cfg))
	assistantSvc := assistant.NewService(logger, provider, cfg.AI.ChatTemperature)

	// --- Transport ---
	health := rest.NewHealthHandler(pool, BuildVersion())
	if rankingCache != nil {
		health = health.WithCache(rankingCache)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	c.closers = append(c.closers, limiter.Stop)

	mux := http.NewServeMux()
	rest.Register(mux, rest.Handlers{
		Health: health,
		Auth: rest.NewAuthHandler(authSvc, rest.SessionCookie{
			Name:   cfg.Auth.CookieName,
			Secure: strings.HasPrefix(cfg.App.BaseURL, "https://"),
		}, logger),
		Idea:      rest.NewIdeaHandler(ideaSvc, logger),
		User:      rest.NewUserHandler(userSvc, logger),
		Goal:      rest.NewGoalHandler(goalSvc, logger),
		Ranking:   rest.NewRankingHandler(rankingSvc, logger),
		Activity:  rest.NewActivityHandler(activitySvc, logger),
		Admin:     rest.NewAdminHandler(dashboardSvc, logger),
		Functions: rest.NewFunctionsHandler(analysisSvc, exportSvc, notifications, assistantSvc, logger),
	}, rest.Limits{
		Login: limiter.Limit("login", cfg.RateLimit.LoginPerMinute),
		Reset: limiter.Limit("reset", cfg.RateLimit.ResetPerMinute),
		AI:    limiter.Limit("ai", cfg.AI.RequestsPerMinute),
	})
	web.NewSPA(cfg.Web.StaticDir, logger).Register(mux)

	c.handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager, users, cfg.Auth.CookieName, logger),
	)(mux)

	return c, nil
}

// buildCache connects to Redis when configured. Both results are nil when
// caching is disabled.
func buildCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*goredis.Client, *cache.RankingCache, error) {
	if cfg.Cache.RedisAddr == "" {
		logger.Info("redis not configured, ranking cache disabled")
		return nil, nil, nil
	}
	rdb, err := cache.NewClient(ctx, cfg.Cache)
	if err != nil {
		return nil, nil, fmt.Errorf("app.buildCache: %w", err)
	}
	logger.Info("redis connected", slog.String("addr", cfg.Cache.RedisAddr))
	return rdb, cache.NewRankingCache(rdb, cfg.Cache.RankingTTL, logger), nil
}

// buildEmail returns the Resend sender and its background dispatcher, or nils
// when no API key is configured.
func buildEmail(cfg *config.Config, logger *slog.Logger) (*email.Resend, *email.Dispatcher, error) {
	sender, err := email.NewResend(cfg.Email, logger)
	if errors.Is(err, email.ErrDisabled) {
		logger.Warn("resend api key not configured, e-mails disabled")
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("app.buildEmail: %w", err)
	}
	dispatcher := email.NewDispatcher(sender, cfg.Email.Workers, cfg.Email.QueueSize, cfg.Email.MaxRetries, cfg.Email.RetryBackoff, logger)
	return sender, dispatcher, nil
}

func notificationConfig(cfg *config.Config) notification.Config {
	return notification.Config{
		AppName:        cfg.App.Name,
		ApprovalPoints: cfg.Points.Approval,
		ResetTokenTTL:  cfg.Auth.ResetTokenTTL,
	}
}

func analysisConfig(cfg *config.Config) analysis.Config {
	return analysis.Config{
		SuggestionTemperature: cfg.AI.SuggestionTemperature,
		SimilarityTemperature: cfg.AI.SimilarityTemperature,
	}
}

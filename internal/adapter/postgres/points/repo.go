// Package points implements the user_points repository and the ranking query.
package points

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

// Repo provides point aggregate persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new points repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type pointsRow struct {
	UserID           uuid.UUID `db:"user_id"`
	TotalPoints      int       `db:"total_points"`
	IdeasSubmitted   int       `db:"ideas_submitted"`
	IdeasApproved    int       `db:"ideas_approved"`
	IdeasImplemented int       `db:"ideas_implemented"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type rankingRow struct {
	pointsRow
	Name  string `db:"name"`
	Email string `db:"email"`
}

func (r pointsRow) toDomain() domain.UserPoints {
	return domain.UserPoints{
		UserID:           r.UserID,
		TotalPoints:      r.TotalPoints,
		IdeasSubmitted:   r.IdeasSubmitted,
		IdeasApproved:    r.IdeasApproved,
		IdeasImplemented: r.IdeasImplemented,
		UpdatedAt:        r.UpdatedAt,
	}
}

// Apply adds delta to the user's aggregate in a single upsert.
// Negative deltas are rejected; totals only grow.
func (r *Repo) Apply(ctx context.Context, userID uuid.UUID, d domain.PointsDelta) error {
	if d.Points < 0 || d.IdeasSubmitted < 0 || d.IdeasApproved < 0 || d.IdeasImplemented < 0 {
		return errors.Join(domain.ErrValidation, errors.New("points delta must be non-negative"))
	}
	if d.IsZero() {
		return nil
	}

	sql, args, err := postgres.Builder().
		Insert("user_points").
		Columns("user_id", "total_points", "ideas_submitted", "ideas_approved", "ideas_implemented", "updated_at").
		Values(userID, d.Points, d.IdeasSubmitted, d.IdeasApproved, d.IdeasImplemented, time.Now().UTC()).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			total_points = user_points.total_points + EXCLUDED.total_points,
			ideas_submitted = user_points.ideas_submitted + EXCLUDED.ideas_submitted,
			ideas_approved = user_points.ideas_approved + EXCLUDED.ideas_approved,
			ideas_implemented = user_points.ideas_implemented + EXCLUDED.ideas_implemented,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user_points", userID)
	}
	return nil
}

// Get returns the user's aggregate, or a zero aggregate if none exists yet.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.UserPoints, error) {
	sql, args, err := postgres.Builder().
		Select("user_id", "total_points", "ideas_submitted", "ideas_approved", "ideas_implemented", "updated_at").
		From("user_points").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []pointsRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user_points", userID)
	}
	if len(rows) == 0 {
		return &domain.UserPoints{UserID: userID}, nil
	}
	p := rows[0].toDomain()
	return &p, nil
}

// Top returns the leaderboard: aggregates joined with profiles, highest total first.
func (r *Repo) Top(ctx context.Context, limit int) ([]domain.RankingEntry, error) {
	sql, args, err := postgres.Builder().
		Select(
			"up.user_id", "up.total_points", "up.ideas_submitted", "up.ideas_approved",
			"up.ideas_implemented", "up.updated_at",
			"COALESCE(p.name, '') AS name", "COALESCE(p.email, '') AS email",
		).
		From("user_points up").
		LeftJoin("profiles p ON p.user_id = up.user_id").
		OrderBy("up.total_points DESC", "up.user_id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []rankingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user_points", "ranking")
	}

	out := make([]domain.RankingEntry, len(rows))
	for i, row := range rows {
		name := row.Name
		if name == "" {
			name = domain.DefaultProfileName
		}
		out[i] = domain.RankingEntry{
			Position:         i + 1,
			UserID:           row.UserID,
			Name:             name,
			Email:            row.Email,
			TotalPoints:      row.TotalPoints,
			IdeasSubmitted:   row.IdeasSubmitted,
			IdeasApproved:    row.IdeasApproved,
			IdeasImplemented: row.IdeasImplemented,
			Badge:            domain.RankBadge(i),
			Initials:         domain.Initials(name),
		}
	}
	return out, nil
}

// Sum returns the total points awarded across all users.
func (r *Repo) Sum(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, "SELECT COALESCE(sum(total_points), 0)::int FROM user_points").
		Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "user_points", "sum")
	}
	return n, nil
}

// Package goal implements the goal repository using PostgreSQL.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

var goalColumns = []string{"id", "title", "category", "target_ideas", "deadline", "created_at", "updated_at"}

// Repo provides goal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new goal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type goalRow struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Category    *string    `db:"category"`
	TargetIdeas int        `db:"target_ideas"`
	Deadline    *time.Time `db:"deadline"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r goalRow) toDomain() domain.Goal {
	g := domain.Goal{
		ID:          r.ID,
		Title:       r.Title,
		TargetIdeas: r.TargetIdeas,
		Deadline:    r.Deadline,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Category != nil {
		c := domain.Category(*r.Category)
		g.Category = &c
	}
	return g
}

func categoryArg(c *domain.Category) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

// List returns every goal, soonest deadline first.
func (r *Repo) List(ctx context.Context) ([]domain.Goal, error) {
	sql, args, err := postgres.Builder().
		Select(goalColumns...).
		From("goals").
		OrderBy("deadline ASC NULLS LAST", "created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []goalRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "goal", "list")
	}
	out := make([]domain.Goal, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Create inserts a goal.
func (r *Repo) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	sql, args, err := postgres.Builder().
		Insert("goals").
		Columns("id", "title", "category", "target_ideas", "deadline", "created_at", "updated_at").
		Values(g.ID, g.Title, categoryArg(g.Category), g.TargetIdeas, g.Deadline, g.CreatedAt, g.UpdatedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanOne(ctx, g.ID, sql, args)
}

// Update replaces a goal's mutable fields.
func (r *Repo) Update(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	sql, args, err := postgres.Builder().
		Update("goals").
		Set("title", g.Title).
		Set("category", categoryArg(g.Category)).
		Set("target_ideas", g.TargetIdeas).
		Set("deadline", g.Deadline).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": g.ID}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanOne(ctx, g.ID, sql, args)
}

func (r *Repo) scanOne(ctx context.Context, id uuid.UUID, sql string, args []any) (*domain.Goal, error) {
	var row goalRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "goal", id)
	}
	g := row.toDomain()
	return &g, nil
}

// Delete removes a goal.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete("goals").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "goal", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("goal %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountApproved counts approved ideas, optionally restricted to a category
// and to ideas created on or before the deadline date.
func (r *Repo) CountApproved(ctx context.Context, category *domain.Category, deadline *time.Time) (int, error) {
	b := postgres.Builder().
		Select("count(*)").
		From("ideas").
		Where(squirrel.Eq{"status": string(domain.IdeaStatusApproved)})
	if category != nil {
		b = b.Where(squirrel.Eq{"category": string(*category)})
	}
	if deadline != nil {
		b = b.Where(squirrel.Lt{"created_at": deadline.AddDate(0, 0, 1)})
	}
	sql, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "goal", "progress")
	}
	return n, nil
}

func columnList() string {
	return strings.Join(goalColumns, ", ")
}

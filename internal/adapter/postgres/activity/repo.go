// Package activity implements the append-only activity log repository.
package activity

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

// Channel is the NOTIFY channel fired by the activities insert trigger.
const Channel = "activities_changes"

// Repo provides activity persistence backed by PostgreSQL.
// There is no update or delete; the table rejects both.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	ID         uuid.UUID      `db:"id"`
	UserID     uuid.UUID      `db:"user_id"`
	ActionType string         `db:"action_type"`
	EntityType string         `db:"entity_type"`
	EntityID   *uuid.UUID     `db:"entity_id"`
	Metadata   map[string]any `db:"metadata"`
	CreatedAt  time.Time      `db:"created_at"`
	UserName   string         `db:"user_name"`
}

// Create appends an activity.
func (r *Repo) Create(ctx context.Context, a *domain.Activity) error {
	meta := a.Metadata
	if meta == nil {
		meta = map[string]any{}
	}

	sql, args, err := postgres.Builder().
		Insert("activities").
		Columns("id", "user_id", "action_type", "entity_type", "entity_id", "metadata", "created_at").
		Values(a.ID, a.UserID, string(a.ActionType), string(a.EntityType), a.EntityID, meta, a.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "activity", a.ID)
	}
	return nil
}

// Recent returns the newest activities joined with the actor's profile name.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	sql, args, err := postgres.Builder().
		Select(
			"a.id", "a.user_id", "a.action_type", "a.entity_type", "a.entity_id", "a.metadata", "a.created_at",
			"COALESCE(p.name, '') AS user_name",
		).
		From("activities a").
		LeftJoin("profiles p ON p.user_id = a.user_id").
		OrderBy("a.created_at DESC", "a.id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "activity", "recent")
	}

	out := make([]domain.ActivityEntry, len(rows))
	for i, row := range rows {
		a := domain.Activity{
			ID:         row.ID,
			UserID:     row.UserID,
			ActionType: domain.ActionType(row.ActionType),
			EntityType: domain.EntityType(row.EntityType),
			EntityID:   row.EntityID,
			Metadata:   row.Metadata,
			CreatedAt:  row.CreatedAt,
		}
		name := row.UserName
		if name == "" {
			name = domain.DefaultProfileName
		}
		out[i] = domain.ActivityEntry{
			Activity: a,
			UserName: name,
			Message:  domain.ActivityMessage(a.ActionType, name, a.Title()),
		}
	}
	return out, nil
}

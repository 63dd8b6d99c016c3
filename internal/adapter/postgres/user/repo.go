// Package user implements the user, profile and role repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
// A user spans three tables: users, profiles and user_roles.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type userWithPointsRow struct {
	userRow
	TotalPoints      int `db:"total_points"`
	IdeasSubmitted   int `db:"ideas_submitted"`
	IdeasApproved    int `db:"ideas_approved"`
	IdeasImplemented int `db:"ideas_implemented"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Name:         r.Name,
		Role:         domain.UserRole(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func selectUsers() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(
			"u.id", "u.email", "u.password_hash", "u.created_at", "u.updated_at",
			"COALESCE(p.name, '') AS name",
			"CASE WHEN has_role(u.id, 'admin') THEN 'admin' ELSE 'user' END AS role",
		).
		From("users u").
		LeftJoin("profiles p ON p.user_id = u.id")
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, ref any) (*domain.User, error) {
	sql, args, err := selectUsers().Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", ref)
	}
	u := row.toDomain()
	return &u, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.id": id}, id)
}

// GetByEmail returns a user by (lower-cased) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.email": email}, email)
}

// List returns all users with their point aggregates, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.UserWithPoints, error) {
	sql, args, err := selectUsers().
		Columns(
			"COALESCE(up.total_points, 0) AS total_points",
			"COALESCE(up.ideas_submitted, 0) AS ideas_submitted",
			"COALESCE(up.ideas_approved, 0) AS ideas_approved",
			"COALESCE(up.ideas_implemented, 0) AS ideas_implemented",
		).
		LeftJoin("user_points up ON up.user_id = u.id").
		OrderBy("u.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []userWithPointsRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", "list")
	}

	out := make([]domain.UserWithPoints, len(rows))
	for i, row := range rows {
		out[i] = domain.UserWithPoints{
			User: row.toDomain(),
			Points: domain.UserPoints{
				UserID:           row.ID,
				TotalPoints:      row.TotalPoints,
				IdeasSubmitted:   row.IdeasSubmitted,
				IdeasApproved:    row.IdeasApproved,
				IdeasImplemented: row.IdeasImplemented,
			},
		}
	}
	return out, nil
}

// Create inserts the user, its profile and its role. Run inside a transaction.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert("users").
		Columns("id", "email", "password_hash", "created_at", "updated_at").
		Values(u.ID, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	sql, args, err = postgres.Builder().
		Insert("profiles").
		Columns("user_id", "name", "email", "created_at", "updated_at").
		Values(u.ID, u.Name, u.Email, u.CreatedAt, u.UpdatedAt).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", u.ID)
	}

	if err := r.SetRole(ctx, u.ID, u.Role); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, u.ID)
}

// Update modifies the user and its denormalized profile.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.UserUpdate) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	now := time.Now().UTC()

	users := postgres.Builder().Update("users").Set("updated_at", now).Where(squirrel.Eq{"id": id})
	if p.Email != nil {
		users = users.Set("email", *p.Email)
	}
	if p.PasswordHash != nil {
		users = users.Set("password_hash", *p.PasswordHash)
	}
	sql, args, err := users.ToSql()
	if err != nil {
		return nil, err
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	if p.Name != nil || p.Email != nil {
		profiles := postgres.Builder().Update("profiles").Set("updated_at", now).Where(squirrel.Eq{"user_id": id})
		if p.Name != nil {
			profiles = profiles.Set("name", *p.Name)
		}
		if p.Email != nil {
			profiles = profiles.Set("email", *p.Email)
		}
		sql, args, err = profiles.ToSql()
		if err != nil {
			return nil, err
		}
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return nil, postgres.MapError(err, "profile", id)
		}
	}

	return r.GetByID(ctx, id)
}

// SetRole replaces the user's role.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().Delete("user_roles").Where(squirrel.Eq{"user_id": id}).ToSql()
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user_role", id)
	}

	sql, args, err = postgres.Builder().
		Insert("user_roles").
		Columns("user_id", "role").
		Values(id, string(role)).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user_role", id)
	}
	return nil
}

// HasRole checks a role through the has_role SQL function.
func (r *Repo) HasRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (bool, error) {
	var ok bool
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, "SELECT has_role($1, $2)", id, string(role)).
		Scan(&ok)
	if err != nil {
		return false, postgres.MapError(err, "user_role", id)
	}
	return ok, nil
}

// Delete removes the user; profile, role, ideas, points and activities cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of registered users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, "SELECT count(*) FROM users").Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "user", "count")
	}
	return n, nil
}

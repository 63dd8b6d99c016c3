// Package token implements the password reset token repository using PostgreSQL.
package token

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

const table = "password_reset_tokens"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "used_at", "created_at"}

// Repo provides reset-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	UsedAt    *time.Time `db:"used_at"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r row) toDomain() *domain.PasswordResetToken {
	return &domain.PasswordResetToken{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		UsedAt:    r.UsedAt,
		CreatedAt: r.CreatedAt,
	}
}

// Create inserts a new reset token.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.PasswordResetToken, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "token_hash", "expires_at").
		Values(userID, tokenHash, expiresAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reset_token", userID)
	}
	return out.toDomain(), nil
}

// GetByHash returns a token by its hash regardless of state.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reset_token", "hash")
	}
	return out.toDomain(), nil
}

// MarkUsed stamps used_at. Returns ErrNotFound if the token was already used.
func (r *Repo) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("used_at", at).
		Where(squirrel.Eq{"id": id, "used_at": nil}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "reset_token", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reset_token %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteExpired removes used or expired tokens and returns how many were deleted.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Or{
			squirrel.Lt{"expires_at": now},
			squirrel.NotEq{"used_at": nil},
		}).
		ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "reset_token", "expired")
	}
	return int(tag.RowsAffected()), nil
}

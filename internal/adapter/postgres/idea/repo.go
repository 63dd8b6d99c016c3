// Package idea implements the idea repository using PostgreSQL.
package idea

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/ecoideias/ecoideias-backend/internal/adapter/postgres"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

var ideaColumns = []string{
	"i.id", "i.user_id", "i.title", "i.description", "i.category", "i.impact", "i.status",
	"i.feedback", "i.points_awarded", "i.implemented", "i.created_at", "i.updated_at",
}

// Repo provides idea persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new idea repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type ideaRow struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Category      string    `db:"category"`
	Impact        *string   `db:"impact"`
	Status        string    `db:"status"`
	Feedback      *string   `db:"feedback"`
	PointsAwarded bool      `db:"points_awarded"`
	Implemented   bool      `db:"implemented"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type ideaWithAuthorRow struct {
	ideaRow
	AuthorName  string `db:"author_name"`
	AuthorEmail string `db:"author_email"`
}

func (r ideaRow) toDomain() domain.Idea {
	return domain.Idea{
		ID:            r.ID,
		UserID:        r.UserID,
		Title:         r.Title,
		Description:   r.Description,
		Category:      domain.Category(r.Category),
		Impact:        r.Impact,
		Status:        domain.IdeaStatus(r.Status),
		Feedback:      r.Feedback,
		PointsAwarded: r.PointsAwarded,
		Implemented:   r.Implemented,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Create inserts a new idea and returns the stored row.
func (r *Repo) Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error) {
	sql, args, err := postgres.Builder().
		Insert("ideas AS i").
		Columns("id", "user_id", "title", "description", "category", "impact", "status", "created_at", "updated_at").
		Values(i.ID, i.UserID, i.Title, i.Description, string(i.Category), i.Impact, string(i.Status), i.CreatedAt, i.UpdatedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row ideaRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "idea", i.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// GetByID returns an idea by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns an idea and locks its row until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Idea, error) {
	b := postgres.Builder().Select(ideaColumns...).From("ideas i").Where(squirrel.Eq{"i.id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var row ideaRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	out := row.toDomain()
	return &out, nil
}

// List returns ideas joined with their authors' profiles, newest first.
// A zero filter.Limit means no limit.
func (r *Repo) List(ctx context.Context, f domain.IdeaFilter) ([]domain.IdeaWithAuthor, error) {
	b := postgres.Builder().
		Select(ideaColumns...).
		Columns("COALESCE(p.name, '') AS author_name", "COALESCE(p.email, '') AS author_email").
		From("ideas i").
		LeftJoin("profiles p ON p.user_id = i.user_id").
		OrderBy("i.created_at DESC", "i.id")
	b = applyFilter(b, f)
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []ideaWithAuthorRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "idea", "list")
	}

	out := make([]domain.IdeaWithAuthor, len(rows))
	for i, row := range rows {
		out[i] = domain.IdeaWithAuthor{
			Idea:        row.toDomain(),
			AuthorName:  row.AuthorName,
			AuthorEmail: row.AuthorEmail,
		}
	}
	return out, nil
}

// Count returns how many ideas match f, ignoring pagination.
func (r *Repo) Count(ctx context.Context, f domain.IdeaFilter) (int, error) {
	sql, args, err := applyFilter(postgres.Builder().Select("count(*)").From("ideas i"), f).ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "idea", "count")
	}
	return n, nil
}

func applyFilter(b squirrel.SelectBuilder, f domain.IdeaFilter) squirrel.SelectBuilder {
	if f.UserID != nil {
		b = b.Where(squirrel.Eq{"i.user_id": *f.UserID})
	}
	if f.Status != nil {
		b = b.Where(squirrel.Eq{"i.status": string(*f.Status)})
	}
	if f.Category != nil {
		b = b.Where(squirrel.Eq{"i.category": string(*f.Category)})
	}
	if f.From != nil {
		b = b.Where(squirrel.GtOrEq{"i.created_at": *f.From})
	}
	if f.To != nil {
		b = b.Where(squirrel.LtOrEq{"i.created_at": *f.To})
	}
	return b
}

// UpdateReview stores a new status and feedback. Once set, points_awarded is never cleared.
func (r *Repo) UpdateReview(ctx context.Context, id uuid.UUID, status domain.IdeaStatus, feedback *string, pointsAwarded bool) (*domain.Idea, error) {
	sql, args, err := postgres.Builder().
		Update("ideas AS i").
		Set("status", string(status)).
		Set("feedback", feedback).
		Set("points_awarded", squirrel.Expr("i.points_awarded OR ?", pointsAwarded)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"i.id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row ideaRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	out := row.toDomain()
	return &out, nil
}

// MarkImplemented flags an approved idea as implemented.
func (r *Repo) MarkImplemented(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	sql, args, err := postgres.Builder().
		Update("ideas AS i").
		Set("implemented", true).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"i.id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row ideaRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	out := row.toDomain()
	return &out, nil
}

// CountByStatus returns the number of ideas per status.
func (r *Repo) CountByStatus(ctx context.Context) (map[domain.IdeaStatus]int, error) {
	var rows []struct {
		Key   string `db:"key"`
		Count int    `db:"count"`
	}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT status AS key, count(*) AS count FROM ideas GROUP BY status`)
	if err != nil {
		return nil, postgres.MapError(err, "idea", "count_by_status")
	}

	out := make(map[domain.IdeaStatus]int, len(rows))
	for _, row := range rows {
		out[domain.IdeaStatus(row.Key)] = row.Count
	}
	return out, nil
}

// CountByCategory returns the number of ideas per category.
func (r *Repo) CountByCategory(ctx context.Context) (map[domain.Category]int, error) {
	var rows []struct {
		Key   string `db:"key"`
		Count int    `db:"count"`
	}
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT category AS key, count(*) AS count FROM ideas GROUP BY category`)
	if err != nil {
		return nil, postgres.MapError(err, "idea", "count_by_category")
	}

	out := make(map[domain.Category]int, len(rows))
	for _, row := range rows {
		out[domain.Category(row.Key)] = row.Count
	}
	return out, nil
}

func columnList() string {
	return strings.Join(ideaColumns, ", ")
}

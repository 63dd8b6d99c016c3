package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a profile and the given role.
// The password hash is a placeholder and never verifies.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		Role:         role,
		PasswordHash: "x",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO profiles (user_id, name, email, created_at, updated_at) VALUES ($1, $2, $3, $4, $4)`,
		user.ID, user.Name, user.Email, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}

	_, err = pool.Exec(ctx, `INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`, user.ID, string(role))
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert role: %v", err)
	}

	return user
}

// SeedIdea inserts an idea owned by userID.
func SeedIdea(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string, category domain.Category, status domain.IdeaStatus, createdAt time.Time) domain.Idea {
	t.Helper()

	idea := domain.Idea{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: "Descrição de " + title,
		Category:    category,
		Status:      status,
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
		UpdatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO ideas (id, user_id, title, description, category, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		idea.ID, idea.UserID, idea.Title, idea.Description, string(idea.Category), string(idea.Status),
		idea.CreatedAt, idea.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIdea: %v", err)
	}

	return idea
}

// SeedPoints upserts a user_points row.
func SeedPoints(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, total int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_points (user_id, total_points) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET total_points = EXCLUDED.total_points`,
		userID, total,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPoints: %v", err)
	}
}

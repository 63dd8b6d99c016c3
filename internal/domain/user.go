package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account together with its profile and role.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role.IsAdmin() }

// UserUpdate lists the mutable account fields. Nil fields are left unchanged.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// Profile is the public, denormalized view of a user.
type Profile struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

// UserWithPoints is a user row enriched with its point aggregate (admin user list).
type UserWithPoints struct {
	User
	Points UserPoints
}

// PasswordResetToken is a hashed single-use reset token.
type PasswordResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsUsed returns true if the token has already been redeemed.
func (t *PasswordResetToken) IsUsed() bool {
	return t.UsedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

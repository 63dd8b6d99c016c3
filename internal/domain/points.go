package domain

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// DefaultProfileName is shown when a user has no profile row.
const DefaultProfileName = "Usuário"

// UserPoints is the per-user gamification aggregate.
type UserPoints struct {
	UserID           uuid.UUID
	TotalPoints      int
	IdeasSubmitted   int
	IdeasApproved    int
	IdeasImplemented int
	UpdatedAt        time.Time
}

// PointsDelta is an atomic increment applied to a UserPoints row.
// All fields must be non-negative.
type PointsDelta struct {
	Points           int
	IdeasSubmitted   int
	IdeasApproved    int
	IdeasImplemented int
}

// IsZero reports whether applying the delta would change nothing.
func (d PointsDelta) IsZero() bool {
	return d == PointsDelta{}
}

// RankingEntry is one row of the leaderboard.
type RankingEntry struct {
	Position         int
	UserID           uuid.UUID
	Name             string
	Email            string
	TotalPoints      int
	IdeasSubmitted   int
	IdeasApproved    int
	IdeasImplemented int
	Badge            string
	Initials         string
}

// RankBadge maps a zero-based leaderboard index to its icon.
func RankBadge(index int) string {
	switch index {
	case 0:
		return "trophy"
	case 1:
		return "medal"
	case 2:
		return "award"
	}
	return "#" + strconv.Itoa(index+1)
}

// Initials returns up to two upper-case initials for name.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
		n++
		if n == 2 {
			break
		}
	}
	if n == 0 {
		return "U"
	}
	return b.String()
}

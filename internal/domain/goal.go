package domain

import (
	"time"

	"github.com/google/uuid"
)

// Goal is an organization-wide target for approved ideas.
type Goal struct {
	ID          uuid.UUID
	Title       string
	Category    *Category
	TargetIdeas int
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GoalProgress is a goal with the number of approved ideas counting towards it.
type GoalProgress struct {
	Goal
	Achieved int
	Percent  int
}

// NewGoalProgress computes the completion percentage, capped at 100.
func NewGoalProgress(g Goal, achieved int) GoalProgress {
	pct := 0
	if g.TargetIdeas > 0 {
		pct = achieved * 100 / g.TargetIdeas
	}
	if pct > 100 {
		pct = 100
	}
	return GoalProgress{Goal: g, Achieved: achieved, Percent: pct}
}

// DashboardStats is the admin overview.
type DashboardStats struct {
	IdeasByStatus   map[IdeaStatus]int
	IdeasByCategory map[Category]int
	TotalIdeas      int
	TotalUsers      int
	TotalPoints     int
}

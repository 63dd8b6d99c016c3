package domain

import (
	"time"

	"github.com/google/uuid"
)

// Idea is a sustainability proposal submitted by a user.
type Idea struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Description   string
	Category      Category
	Impact        *string
	Status        IdeaStatus
	Feedback      *string
	PointsAwarded bool
	Implemented   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IdeaWithAuthor is an idea joined with its author's profile.
type IdeaWithAuthor struct {
	Idea
	AuthorName  string
	AuthorEmail string
}

// StatusTransition describes the effects of moving an idea to a new status.
type StatusTransition struct {
	From        IdeaStatus
	To          IdeaStatus
	AwardPoints bool
	Action      ActionType
}

// Transition computes the side effects of changing status to next.
// Approval points are awarded at most once per idea.
func (i *Idea) Transition(next IdeaStatus) StatusTransition {
	t := StatusTransition{From: i.Status, To: next}
	switch next {
	case IdeaStatusApproved:
		t.Action = ActionIdeaApproved
		t.AwardPoints = !i.PointsAwarded
	case IdeaStatusRejected:
		t.Action = ActionIdeaRejected
	default:
		t.Action = ActionIdeaStatusChanged
	}
	return t
}

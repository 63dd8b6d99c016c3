package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdeaFilter contains filtering/pagination parameters for idea listings and exports.
// Nil fields are not applied.
type IdeaFilter struct {
	UserID   *uuid.UUID
	Status   *IdeaStatus
	Category *Category
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Activity is an immutable feed entry.
type Activity struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ActionType ActionType
	EntityType EntityType
	EntityID   *uuid.UUID
	Metadata   map[string]any
	CreatedAt  time.Time
}

// ActivityEntry is an activity joined with its actor's profile name.
type ActivityEntry struct {
	Activity
	UserName string
	Message  string
}

// Title returns metadata["title"] or the generic fallback.
func (a *Activity) Title() string {
	if t, ok := a.Metadata["title"].(string); ok && t != "" {
		return t
	}
	return "uma ideia"
}

// ActivityMessage renders the Portuguese feed sentence for an entry.
func ActivityMessage(action ActionType, name, title string) string {
	if name == "" {
		name = DefaultProfileName
	}
	switch action {
	case ActionIdeaCreated:
		return fmt.Sprintf("%s criou a ideia \"%s\"", name, title)
	case ActionIdeaApproved:
		return fmt.Sprintf("%s teve a ideia \"%s\" aprovada 🎉", name, title)
	case ActionIdeaRejected:
		return fmt.Sprintf("A ideia \"%s\" de %s foi reprovada", title, name)
	case ActionIdeaStatusChanged:
		return fmt.Sprintf("%s teve o status da ideia \"%s\" alterado", name, title)
	case ActionIdeaImplemented:
		return fmt.Sprintf("%s teve a ideia \"%s\" implementada", name, title)
	}
	return name + " realizou uma ação"
}

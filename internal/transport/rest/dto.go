package rest

import (
	"time"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

// Row-shaped responses keep the snake_case column names the web client reads.

type profileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ideaResponse struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	CategoryLabel string           `json:"category_label"`
	Impact        *string          `json:"impact"`
	Status        string           `json:"status"`
	Feedback      *string          `json:"feedback"`
	PointsAwarded bool             `json:"points_awarded"`
	Implemented   bool             `json:"implemented"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Profiles      *profileResponse `json:"profiles,omitempty"`
}

func toIdeaResponse(i *domain.Idea) ideaResponse {
	return ideaResponse{
		ID:            i.ID.String(),
		UserID:        i.UserID.String(),
		Title:         i.Title,
		Description:   i.Description,
		Category:      i.Category.String(),
		CategoryLabel: i.Category.Label(),
		Impact:        i.Impact,
		Status:        i.Status.String(),
		Feedback:      i.Feedback,
		PointsAwarded: i.PointsAwarded,
		Implemented:   i.Implemented,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func toIdeaWithAuthorResponse(i domain.IdeaWithAuthor) ideaResponse {
	resp := toIdeaResponse(&i.Idea)
	name := i.AuthorName
	if name == "" {
		name = domain.DefaultProfileName
	}
	resp.Profiles = &profileResponse{Name: name, Email: i.AuthorEmail}
	return resp
}

func toIdeaList(ideas []domain.IdeaWithAuthor) []ideaResponse {
	out := make([]ideaResponse, len(ideas))
	for i, idea := range ideas {
		out[i] = toIdeaWithAuthorResponse(idea)
	}
	return out
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type pointsResponse struct {
	UserID           string `json:"user_id"`
	TotalPoints      int    `json:"total_points"`
	IdeasSubmitted   int    `json:"ideas_submitted"`
	IdeasApproved    int    `json:"ideas_approved"`
	IdeasImplemented int    `json:"ideas_implemented"`
}

func toPointsResponse(p domain.UserPoints) pointsResponse {
	return pointsResponse{
		UserID:           p.UserID.String(),
		TotalPoints:      p.TotalPoints,
		IdeasSubmitted:   p.IdeasSubmitted,
		IdeasApproved:    p.IdeasApproved,
		IdeasImplemented: p.IdeasImplemented,
	}
}

type userWithPointsResponse struct {
	userResponse
	Points pointsResponse `json:"user_points"`
}

type rankingEntryResponse struct {
	Position         int    `json:"position"`
	UserID           string `json:"user_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	TotalPoints      int    `json:"total_points"`
	IdeasSubmitted   int    `json:"ideas_submitted"`
	IdeasApproved    int    `json:"ideas_approved"`
	IdeasImplemented int    `json:"ideas_implemented"`
	Badge            string `json:"badge"`
	Initials         string `json:"initials"`
}

type activityResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	ActionType string         `json:"action_type"`
	EntityType string         `json:"entity_type"`
	EntityID   *string        `json:"entity_id"`
	Metadata   map[string]any `json:"metadata"`
	CreatedAt  time.Time      `json:"created_at"`
	UserName   string         `json:"user_name"`
	Message    string         `json:"message"`
}

func toActivityList(entries []domain.ActivityEntry) []activityResponse {
	out := make([]activityResponse, len(entries))
	for i, e := range entries {
		var entityID *string
		if e.EntityID != nil {
			s := e.EntityID.String()
			entityID = &s
		}
		meta := e.Metadata
		if meta == nil {
			meta = map[string]any{}
		}
		out[i] = activityResponse{
			ID:         e.ID.String(),
			UserID:     e.UserID.String(),
			ActionType: e.ActionType.String(),
			EntityType: e.EntityType.String(),
			EntityID:   entityID,
			Metadata:   meta,
			CreatedAt:  e.CreatedAt,
			UserName:   e.UserName,
			Message:    e.Message,
		}
	}
	return out
}

type goalResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    *string    `json:"category"`
	TargetIdeas int        `json:"target_ideas"`
	Deadline    *time.Time `json:"deadline"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Progress    *int       `json:"progress,omitempty"`
	Percent     *int       `json:"percent,omitempty"`
}

func toGoalResponse(g *domain.Goal) goalResponse {
	var category *string
	if g.Category != nil {
		c := g.Category.String()
		category = &c
	}
	return goalResponse{
		ID:          g.ID.String(),
		Title:       g.Title,
		Category:    category,
		TargetIdeas: g.TargetIdeas,
		Deadline:    g.Deadline,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

package idea

import (
	"strings"
	"unicode/utf8"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxImpactLen      = 1000
	maxFeedbackLen    = 2000

	DefaultListLimit = 50
	MaxListLimit     = 200
)

// CreateInput holds parameters for submitting an idea.
type CreateInput struct {
	Title       string
	Description string
	Category    domain.Category
	Impact      *string
}

func (i *CreateInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	if i.Impact != nil {
		v := strings.TrimSpace(*i.Impact)
		if v == "" {
			i.Impact = nil
		} else {
			i.Impact = &v
		}
	}
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	} else if utf8.RuneCountInString(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}

	if i.Impact != nil && utf8.RuneCountInString(*i.Impact) > maxImpactLen {
		errs = append(errs, domain.FieldError{Field: "impact", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// EvaluateInput holds an admin's review decision.
type EvaluateInput struct {
	Status   domain.IdeaStatus
	Feedback *string
}

// Validate validates the evaluate input.
func (i EvaluateInput) Validate() error {
	if !i.Status.IsValid() {
		return domain.NewValidationError("status", "invalid status")
	}
	if i.Feedback != nil && utf8.RuneCountInString(*i.Feedback) > maxFeedbackLen {
		return domain.NewValidationError("feedback", "too long")
	}
	return nil
}

// ListInput holds admin listing filters.
type ListInput struct {
	Status   *domain.IdeaStatus
	Category *domain.Category
	Limit    int
	Offset   int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ListInput) limit() int {
	switch {
	case i.Limit <= 0:
		return DefaultListLimit
	case i.Limit > MaxListLimit:
		return MaxListLimit
	}
	return i.Limit
}

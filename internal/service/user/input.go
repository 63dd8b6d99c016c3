package user

import (
	"strings"
	"unicode/utf8"

	"github.com/ecoideias/ecoideias-backend/internal/domain"
	authsvc "github.com/ecoideias/ecoideias-backend/internal/service/auth"
)

const maxNameLen = 100

// CreateInput holds parameters for creating an account.
type CreateInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.UserRole
}

func (i *CreateInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = authsvc.NormalizeEmail(i.Email)
	if i.Role == "" {
		i.Role = domain.UserRoleUser
	}
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = appendNameErrors(errs, i.Name)
	if !authsvc.ValidEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if err := authsvc.ValidatePassword(i.Password); err != nil {
		errs = append(errs, domain.FieldError{Field: "password", Message: err.Error()})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role: must be 'user' or 'admin'"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds parameters for updating an account.
// All fields are optional (nil = don't change).
type UpdateInput struct {
	Name     *string
	Email    *string
	Role     *domain.UserRole
	Password *string
}

func (i *UpdateInput) normalize() {
	if i.Name != nil {
		v := strings.TrimSpace(*i.Name)
		i.Name = &v
	}
	if i.Email != nil {
		v := authsvc.NormalizeEmail(*i.Email)
		i.Email = &v
	}
	if i.Password != nil && *i.Password == "" {
		i.Password = nil
	}
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		errs = appendNameErrors(errs, *i.Name)
	}
	if i.Email != nil && !authsvc.ValidEmail(*i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if i.Password != nil {
		if err := authsvc.ValidatePassword(*i.Password); err != nil {
			errs = append(errs, domain.FieldError{Field: "password", Message: err.Error()})
		}
	}
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role: must be 'user' or 'admin'"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendNameErrors(errs []domain.FieldError, name string) []domain.FieldError {
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}

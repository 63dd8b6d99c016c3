package auth

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	authpkg "github.com/ecoideias/ecoideias-backend/internal/auth"
	"github.com/ecoideias/ecoideias-backend/internal/domain"
)

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ResetPasswordInput holds parameters for redeeming a reset token.
type ResetPasswordInput struct {
	Token    string
	Password string
}

// Validate validates the reset input.
func (i ResetPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Token == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	} else if len(i.Token) > 512 {
		errs = append(errs, domain.FieldError{Field: "token", Message: "too long"})
	}
	if err := ValidatePassword(i.Password); err != nil {
		errs = append(errs, domain.FieldError{Field: "password", Message: err.Error()})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

type passwordError string

func (e passwordError) Error() string { return string(e) }

// ValidatePassword checks the password length policy.
func ValidatePassword(password string) error {
	switch n := utf8.RuneCountInString(password); {
	case n == 0:
		return passwordError("required")
	case n < authpkg.MinPasswordLength:
		return passwordError("must be at least 8 characters")
	case len(password) > 72:
		return passwordError("too long")
	}
	return nil
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email parses as a bare address.
func ValidEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

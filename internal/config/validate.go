package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	if c.Points.Approval < 0 || c.Points.Implementation < 0 {
		return fmt.Errorf("points must be >= 0 (approval=%d, implementation=%d)", c.Points.Approval, c.Points.Implementation)
	}

	if err := c.Export.validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

func (a *AIConfig) validate() error {
	switch a.Provider {
	case "":
		return nil
	case "anthropic":
		if a.Model == "" {
			a.Model = "claude-sonnet-4-5"
		}
	case "gemini":
		if a.Model == "" {
			a.Model = "gemini-2.0-flash"
		}
	default:
		return fmt.Errorf("unknown provider %q (want anthropic or gemini)", a.Provider)
	}
	if a.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", a.MaxTokens)
	}
	return nil
}

func (e *ExportConfig) validate() error {
	if e.MaxRows <= 0 {
		return fmt.Errorf("max_rows must be > 0 (got %d)", e.MaxRows)
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", e.Timezone, err)
	}
	e.Location = loc
	return nil
}

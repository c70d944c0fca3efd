package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d,%d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Worker.Size <= 0 {
		return fmt.Errorf("worker.size must be > 0 (got %d)", c.Worker.Size)
	}
	if c.Worker.QueueSize <= 0 {
		return fmt.Errorf("worker.queue_size must be > 0 (got %d)", c.Worker.QueueSize)
	}

	if c.AI.EnrichmentEnabled() {
		if c.AI.Model == "" {
			return fmt.Errorf("ai.model must be set when ai.api_key is configured")
		}
		if c.AI.MaxTokens <= 0 {
			return fmt.Errorf("ai.max_tokens must be > 0 (got %d)", c.AI.MaxTokens)
		}
	}

	if err := c.Analytics.validate(); err != nil {
		return fmt.Errorf("analytics: %w", err)
	}

	return nil
}

func (a *AnalyticsConfig) validate() error {
	if a.DefaultWeeks <= 0 {
		return fmt.Errorf("default_weeks must be > 0 (got %d)", a.DefaultWeeks)
	}
	if a.DefaultRangeDays <= 0 {
		return fmt.Errorf("default_range_days must be > 0 (got %d)", a.DefaultRangeDays)
	}
	if a.SummaryWindowDays <= 0 {
		return fmt.Errorf("summary_window_days must be > 0 (got %d)", a.SummaryWindowDays)
	}
	return nil
}

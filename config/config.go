package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Finance backend API client configuration
//   - auth.go: Navigation guard and session configuration
//   - database.go: Redis configuration for the session store
//   - http.go: HTTP server configuration
type AppConfig struct {
	// IsDev controls development mode behavior.
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Finance backend API configuration
	API APIConfig `envPrefix:"FINANCE_API_"`

	// Authentication configuration
	Auth AuthConfig

	// Redis configuration (used when AUTH_SESSION_STORE=redis)
	Redis RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Auth.Sanitize()
	c.HTTP.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// Validate reports configuration combinations that cannot work at runtime.
func (c *AppConfig) Validate() error {
	var errs []error

	if err := c.API.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.UsesRedis() && strings.TrimSpace(c.Redis.URI) == "" &&
		!c.Redis.UseSentinel && !c.Redis.UseCluster {
		errs = append(errs, errors.New("REDIS_URI is required when AUTH_SESSION_STORE=redis"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// UsesRedis reports whether any enabled component needs a redis connection.
func (c *AppConfig) UsesRedis() bool {
	return c.Auth.GuardMode == GuardModeSession && c.Auth.SessionStore == SessionStoreRedis
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

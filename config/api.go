package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DefaultAPIBaseURL is the finance backend the frontend talks to when nothing else is configured.
const DefaultAPIBaseURL = "http://localhost:8080/api"

// APIConfig contains configuration for the finance backend API client.
type APIConfig struct {
	// BaseURL is the root of the backend REST API; endpoint paths are appended to it.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080/api"`

	// Timeout bounds a whole request. Zero means no client-side timeout.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`

	// Debug logs every backend request at debug level.
	Debug bool `env:"DEBUG" envDefault:"false"`
}

// Sanitize applies guardrails to API client configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.BaseURL == "" {
		a.BaseURL = DefaultAPIBaseURL
	}
	if a.Timeout < 0 {
		a.Timeout = 0
	}
}

// Validate checks that the base URL is an absolute http(s) URL.
func (a *APIConfig) Validate() error {
	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid FINANCE_API_BASE_URL %q: %w", a.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid FINANCE_API_BASE_URL scheme %q: must be http or https", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid FINANCE_API_BASE_URL %q: missing host", a.BaseURL)
	}
	return nil
}

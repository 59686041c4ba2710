package config

import "strings"

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the web frontend to.
	Addr string `env:"HTTP_ADDR" envDefault:":8081"`

	// CookieDomain is the domain for the auth flag and session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	h.Addr = strings.TrimSpace(h.Addr)
	if h.Addr == "" {
		h.Addr = ":8081"
	}
	h.CookieDomain = strings.TrimSpace(h.CookieDomain)
}

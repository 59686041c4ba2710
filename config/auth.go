package config

import (
	"fmt"
	"strings"
	"time"
)

// GuardMode selects how the navigation guard decides a browser is authenticated.
type GuardMode string

const (
	// GuardModeFlag trusts the presence of the isAuthenticated cookie.
	GuardModeFlag GuardMode = "flag"
	// GuardModeSession validates a server-side session on every guarded navigation.
	GuardModeSession GuardMode = "session"
)

// UnmarshalText implements encoding.TextUnmarshaler for GuardMode.
func (g *GuardMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "flag", "session":
		*g = GuardMode(v)
		return nil
	default:
		return fmt.Errorf("invalid GuardMode: %q (valid options: flag, session)", v)
	}
}

// SessionStoreKind selects the persistence used for sessions in session mode.
type SessionStoreKind string

const (
	// SessionStoreMemory keeps sessions in process memory.
	SessionStoreMemory SessionStoreKind = "memory"
	// SessionStoreRedis keeps sessions in redis with TTL-based expiry.
	SessionStoreRedis SessionStoreKind = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler for SessionStoreKind.
func (s *SessionStoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "memory", "redis":
		*s = SessionStoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid SessionStoreKind: %q (valid options: memory, redis)", v)
	}
}

const (
	defaultSessionTTL = 12 * time.Hour
	minSessionTTL     = time.Minute
)

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// GuardMode determines how guarded routes check authentication.
	GuardMode GuardMode `env:"AUTH_GUARD_MODE" envDefault:"flag"`

	// SessionTTL is the lifetime of a session created after login (session mode).
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"12h"`

	// SessionStore selects where sessions are kept (session mode).
	SessionStore SessionStoreKind `env:"AUTH_SESSION_STORE" envDefault:"memory"`

	// SessionKeyPrefix namespaces session keys in redis.
	SessionKeyPrefix string `env:"AUTH_SESSION_KEY_PREFIX" envDefault:"finance:session:"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.GuardMode == "" {
		a.GuardMode = GuardModeFlag
	}
	if a.SessionStore == "" {
		a.SessionStore = SessionStoreMemory
	}
	if a.SessionTTL <= 0 {
		a.SessionTTL = defaultSessionTTL
	}
	if a.SessionTTL < minSessionTTL {
		a.SessionTTL = minSessionTTL
	}
	if strings.TrimSpace(a.SessionKeyPrefix) == "" {
		a.SessionKeyPrefix = "finance:session:"
	}
}

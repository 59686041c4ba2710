package config

import (
	"reflect"
	"strings"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != DefaultAPIBaseURL {
		t.Errorf("expected base URL %q, got %q", DefaultAPIBaseURL, cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 0 {
		t.Errorf("expected no API timeout by default, got %v", cfg.API.Timeout)
	}
	if cfg.Auth.GuardMode != GuardModeFlag {
		t.Errorf("expected guard mode %q, got %q", GuardModeFlag, cfg.Auth.GuardMode)
	}
	if cfg.Auth.SessionStore != SessionStoreMemory {
		t.Errorf("expected session store %q, got %q", SessionStoreMemory, cfg.Auth.SessionStore)
	}
	if cfg.Auth.SessionTTL != 12*time.Hour {
		t.Errorf("expected session TTL 12h, got %v", cfg.Auth.SessionTTL)
	}
	if cfg.HTTP.Addr != ":8081" {
		t.Errorf("expected addr :8081, got %q", cfg.HTTP.Addr)
	}
	if cfg.UsesRedis() {
		t.Error("default configuration should not need redis")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default configuration should validate: %v", err)
	}
}

func TestAppConfig_ParseAuthEnv(t *testing.T) {
	t.Setenv("AUTH_GUARD_MODE", "Session")
	t.Setenv("AUTH_SESSION_TTL", "30m")
	t.Setenv("AUTH_SESSION_STORE", "redis")
	t.Setenv("AUTH_SESSION_KEY_PREFIX", "fin:")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	expected := AuthConfig{
		GuardMode:        GuardModeSession,
		SessionTTL:       30 * time.Minute,
		SessionStore:     SessionStoreRedis,
		SessionKeyPrefix: "fin:",
	}

	if !reflect.DeepEqual(cfg.Auth, expected) {
		t.Fatalf("unexpected auth configuration:\nexpected: %#v\ngot:      %#v", expected, cfg.Auth)
	}
	if !cfg.UsesRedis() {
		t.Error("session mode with redis store should need redis")
	}
}

func TestAppConfig_ParseInvalidGuardMode(t *testing.T) {
	t.Setenv("AUTH_GUARD_MODE", "token")

	var cfg AppConfig
	err := env.Parse(&cfg)
	if err == nil {
		t.Fatal("expected error for invalid guard mode")
	}
	if !strings.Contains(err.Error(), "invalid GuardMode") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAPIConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name     string
		in       APIConfig
		expected APIConfig
	}{
		{
			name:     "trailing slash trimmed",
			in:       APIConfig{BaseURL: "http://finance.local/api/"},
			expected: APIConfig{BaseURL: "http://finance.local/api"},
		},
		{
			name:     "blank falls back to default",
			in:       APIConfig{BaseURL: "  "},
			expected: APIConfig{BaseURL: DefaultAPIBaseURL},
		},
		{
			name:     "negative timeout cleared",
			in:       APIConfig{BaseURL: DefaultAPIBaseURL, Timeout: -time.Second},
			expected: APIConfig{BaseURL: DefaultAPIBaseURL},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Sanitize()
			if got != tt.expected {
				t.Errorf("expected %#v, got %#v", tt.expected, got)
			}
		})
	}
}

func TestAPIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "default", baseURL: DefaultAPIBaseURL},
		{name: "https", baseURL: "https://finance.example.com/api"},
		{name: "no scheme", baseURL: "localhost:8080/api", wantErr: true},
		{name: "ftp", baseURL: "ftp://finance.example.com", wantErr: true},
		{name: "no host", baseURL: "http:///api", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := APIConfig{BaseURL: tt.baseURL}
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected error for %q", tt.baseURL)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for %q: %v", tt.baseURL, err)
			}
		})
	}
}

func TestAuthConfig_Sanitize(t *testing.T) {
	cfg := AuthConfig{SessionTTL: time.Second}
	cfg.Sanitize()

	if cfg.GuardMode != GuardModeFlag {
		t.Errorf("expected guard mode %q, got %q", GuardModeFlag, cfg.GuardMode)
	}
	if cfg.SessionStore != SessionStoreMemory {
		t.Errorf("expected session store %q, got %q", SessionStoreMemory, cfg.SessionStore)
	}
	if cfg.SessionTTL != time.Minute {
		t.Errorf("expected session TTL clamped to 1m, got %v", cfg.SessionTTL)
	}
	if cfg.SessionKeyPrefix == "" {
		t.Error("expected default session key prefix")
	}
}

func TestAppConfig_ValidateRedisStoreNeedsURI(t *testing.T) {
	cfg := AppConfig{
		API:  APIConfig{BaseURL: DefaultAPIBaseURL},
		Auth: AuthConfig{GuardMode: GuardModeSession, SessionStore: SessionStoreRedis},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when redis store has no URI")
	}

	cfg.Redis.URI = "localhost:6379"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAppConfig_DetectDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	cfg := AppConfig{}
	cfg.Sanitize()
	if !cfg.IsDev {
		t.Error("expected NODE_ENV=development to enable dev mode")
	}
}

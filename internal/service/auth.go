package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/target/finance-web/internal/adapters/financeapi"
	domainauth "github.com/target/finance-web/internal/domain/auth"
	"github.com/target/finance-web/internal/domain/finance"
	"github.com/target/finance-web/internal/ports"
)

// DefaultSessionTTL is used when AuthServiceOptions.TTL is not positive.
const DefaultSessionTTL = 12 * time.Hour

var (
	// ErrInvalidCredentials is returned when the backend rejects a login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionExpired is returned for a session whose expiry has passed.
	ErrSessionExpired = errors.New("session expired")
	// ErrSessionsDisabled is returned by session operations when no store is configured.
	ErrSessionsDisabled = errors.New("session store not configured")
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API      ports.FinanceAPI
	Sessions ports.SessionStore // optional; nil means flag-only logins
	TTL      time.Duration
	Now      func() time.Time
}

// AuthService forwards logins to the finance backend and, when a session store
// is configured, records a server-side session for each accepted login.
type AuthService struct {
	api      ports.FinanceAPI
	sessions ports.SessionStore
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		api:      opts.API,
		sessions: opts.Sessions,
		ttl:      ttl,
		now:      now,
	}
}

// LoginResult contains the outcome of an accepted login.
type LoginResult struct {
	Username string
	// Session is set only when a session store is configured.
	Session *domainauth.Session
}

// loginReply is the subset of the backend login body we inspect.
type loginReply struct {
	Success *bool `json:"success"`
}

// Login sends credentials to the backend. A 401/403 answer, or a 2xx body
// carrying "success": false, yields ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, creds finance.Credentials) (*LoginResult, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" {
		return nil, errors.New("username is required")
	}

	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		if code, ok := financeapi.StatusCode(err); ok && (code == http.StatusUnauthorized || code == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	var reply loginReply
	if decodeErr := financeapi.DecodeJSON(resp, &reply); decodeErr == nil && reply.Success != nil && !*reply.Success {
		return nil, ErrInvalidCredentials
	}

	result := &LoginResult{Username: creds.Username}
	if s.sessions == nil {
		return result, nil
	}

	now := s.now()
	session := domainauth.Session{
		ID:        generateSessionID(),
		Username:  creds.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}
	result.Session = &session
	return result, nil
}

// GetSession retrieves a live session by ID.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if s.sessions == nil {
		return nil, ErrSessionsDisabled
	}
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(s.now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(ErrSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Logout removes a session. It is a no-op without a store or an ID.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if s.sessions == nil || sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// ChangePassword forwards a password change to the backend.
func (s *AuthService) ChangePassword(ctx context.Context, change finance.PasswordChange) error {
	if change.Username == "" {
		return errors.New("username is required")
	}
	if change.NewPassword == "" {
		return errors.New("new password is required")
	}

	resp, err := s.api.ChangePassword(ctx, change)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return financeapi.DiscardBody(resp)
}

func generateSessionID() string {
	return uuid.New().String()
}

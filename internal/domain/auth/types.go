package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"errors"
	"time"
)

// ErrSessionNotFound is returned by session stores when no live session has the given ID.
var ErrSessionNotFound = errors.New("session not found")

// FlagKey is the client storage key whose presence marks a browser as logged in.
// Any non-empty value counts; the value itself is never inspected.
const FlagKey = "isAuthenticated"

// FlagValue is the value written under FlagKey after a successful login.
const FlagValue = "true"

// SessionCookie is the cookie carrying the opaque session ID in session mode.
const SessionCookie = "session_id"

// Session is the server-side record we persist for a browser that logged in
// through the backend. ID is an opaque session identifier.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

package ports

// Package ports defines interfaces (hexagonal ports) for the frontend's collaborators.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/target/finance-web/internal/domain/auth"
)

// SessionStore persists and retrieves browser sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

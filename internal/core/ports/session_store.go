package ports

import (
	"context"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
)

// SessionStore holds the bearer token and user identity for the process
// lifetime and persists both across restarts. Clear is called on logout and
// on any observed authentication failure.
type SessionStore interface {
	// Token returns the current bearer token, or "" when logged out.
	Token() string
	// User returns the profile snapshot captured at login, or nil.
	User() *domain.UserProfile
	// Active reports whether a usable session is held.
	Active() bool
	// Save establishes a session and persists it durably.
	Save(ctx context.Context, token string, user *domain.UserProfile) error
	// Clear drops the session from memory and durable storage. Idempotent.
	Clear(ctx context.Context) error
}

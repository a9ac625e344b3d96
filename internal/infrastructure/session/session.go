// Package session provides session-store implementations and shared token
// helpers. The redis-backed store in infrastructure/db/redis is the durable
// one; MemoryStore covers tests and running without a redis instance.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
	"github.com/digitaltwin/dashboard-core/internal/core/ports"
)

// TokenExpired reports whether the bearer token is a JWT whose exp claim has
// already passed. Tokens that do not parse as JWTs are treated as opaque and
// never expired locally; the remote service remains the authority.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// MemoryStore is a process-local SessionStore. It satisfies the same
// contract as the redis store minus durability across restarts.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  *domain.UserProfile
}

var _ ports.SessionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) User() *domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	clone := *s.user
	return &clone
}

func (s *MemoryStore) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *MemoryStore) Save(_ context.Context, token string, user *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if user != nil {
		clone := *user
		s.user = &clone
	} else {
		s.user = nil
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}

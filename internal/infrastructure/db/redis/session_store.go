package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/digitaltwin/dashboard-core/internal/core/domain"
	"github.com/digitaltwin/dashboard-core/internal/core/ports"
	"github.com/digitaltwin/dashboard-core/internal/infrastructure/session"
)

const (
	sessionKey = "dashboard:session"
	sessionTTL = 24 * time.Hour
)

// persistedSession is the JSON document stored under sessionKey.
type persistedSession struct {
	Token string              `json:"token"`
	User  *domain.UserProfile `json:"user"`
}

// SessionStore keeps the session credential in redis so it survives process
// restarts. The token and profile are also cached in memory; redis is only
// touched on Save, Clear and Restore.
type SessionStore struct {
	client *redis.Client
	log    zerolog.Logger
	now    func() time.Time

	mu    sync.RWMutex
	token string
	user  *domain.UserProfile
}

var _ ports.SessionStore = (*SessionStore)(nil)

func NewSessionStore(client *redis.Client, log zerolog.Logger) *SessionStore {
	return &SessionStore{
		client: client,
		log:    log,
		now:    time.Now,
	}
}

// Restore loads a previously persisted session. An absent key, a corrupt
// document or a token whose JWT expiry has passed all restore to the
// logged-out state; only the expired case deletes the key.
func (s *SessionStore) Restore(ctx context.Context) error {
	raw, err := s.client.Get(ctx, sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis get session: %w", err)
	}

	var doc persistedSession
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt persisted session")
		return nil
	}
	if doc.Token == "" {
		return nil
	}
	if session.TokenExpired(doc.Token, s.now()) {
		s.log.Info().Msg("persisted session expired, discarding")
		if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
			s.log.Warn().Err(err).Msg("failed to delete expired session")
		}
		return nil
	}

	s.mu.Lock()
	s.token = doc.Token
	s.user = doc.User
	s.mu.Unlock()
	s.log.Info().Msg("session restored")
	return nil
}

func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionStore) User() *domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	clone := *s.user
	return &clone
}

func (s *SessionStore) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *SessionStore) Save(ctx context.Context, token string, user *domain.UserProfile) error {
	raw, err := json.Marshal(persistedSession{Token: token, User: user})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey, raw, sessionTTL).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}

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

// Clear drops the credential in memory and in redis. Clearing an already
// cleared store is a no-op.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

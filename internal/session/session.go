// Package session holds the bearer token for the current operator login.
// The authenticated flag is always derived from the token at read time;
// it is never stored, so the two cannot drift apart.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/accelleon/cloudmgmt/internal/domain"
	"github.com/accelleon/cloudmgmt/internal/ports"
)

// Session is the single authoritative holder of the credential. It is
// shared by every in-flight request and by the CLI; only login, logout
// and the pipeline's expiry handling mutate it.
type Session struct {
	store ports.SessionStore
	clock ports.Clock

	mu    sync.RWMutex
	token string
}

// Load restores the session from the store. A missing entry means
// logged out, not an error.
func Load(ctx context.Context, store ports.SessionStore, clock ports.Clock) (*Session, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	token, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	return &Session{store: store, clock: clock, token: token}, nil
}

// CurrentToken returns the stored token, if any. A stale token is still
// returned; expiry is IsAuthenticated's concern.
func (s *Session) CurrentToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.token != ""
}

// IsAuthenticated reports whether a token is present and its expiry
// claim has not passed. A token we cannot decode never authenticates.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return false
	}
	expired, err := tokenExpired(token, s.clock.Now())
	if err != nil {
		return false
	}
	return !expired
}

// SetToken stores the token in memory and in the durable store. A token
// that is already expired (or cannot be decoded) is rejected so the
// session never starts out unauthenticated.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("set token: %w", domain.ErrInvalidCredential)
	}

	expired, err := tokenExpired(token, s.clock.Now())
	if err != nil {
		return fmt.Errorf("set token: %w: %w", domain.ErrInvalidCredential, err)
	}
	if expired {
		return fmt.Errorf("set token: token already expired: %w", domain.ErrInvalidCredential)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	s.token = token

	return nil
}

// Clear drops the token from memory and the store. Calling it on an
// already-cleared session is a no-op. It performs no API call, so a
// flood of 401s cannot loop back into the transport.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return nil
	}

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session store: %w", err)
	}
	s.token = ""

	return nil
}

// tokenExpired reads the exp claim without verifying the signature; the
// backend is the authority on validity, we only need staleness.
func tokenExpired(token string, now time.Time) (bool, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true, fmt.Errorf("decode token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return false, nil
	}
	return claims.ExpiresAt.Before(now), nil
}

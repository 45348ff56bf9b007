package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelleon/cloudmgmt/internal/domain"
)

type memoryStore struct {
	token   string
	loadErr error
}

func (m *memoryStore) Load(context.Context) (string, error)  { return m.token, m.loadErr }
func (m *memoryStore) Save(_ context.Context, t string) error { m.token = t; return nil }
func (m *memoryStore) Clear(context.Context) error            { m.token = ""; return nil }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type mutableClock struct{ now time.Time }

func (c *mutableClock) Now() time.Time { return c.now }

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{Subject: "1"}
	if !expiresAt.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestLoadRestoresPersistedToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := signedToken(t, now.Add(time.Hour))
	store := &memoryStore{token: token}

	s, err := Load(context.Background(), store, fixedClock{now: now})
	require.NoError(t, err)

	got, ok := s.CurrentToken()
	assert.True(t, ok)
	assert.Equal(t, token, got)
	assert.True(t, s.IsAuthenticated())
}

func TestLoadWithEmptyStoreMeansLoggedOut(t *testing.T) {
	t.Parallel()

	s, err := Load(context.Background(), &memoryStore{}, fixedClock{now: time.Now()})
	require.NoError(t, err)

	_, ok := s.CurrentToken()
	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated())
}

func TestSetTokenRoundTripAndPersistence(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &memoryStore{}
	s, err := Load(context.Background(), store, fixedClock{now: now})
	require.NoError(t, err)

	token := signedToken(t, now.Add(30*time.Minute))
	require.NoError(t, s.SetToken(context.Background(), token))

	got, ok := s.CurrentToken()
	assert.True(t, ok)
	assert.Equal(t, token, got)
	assert.Equal(t, token, store.token)
	assert.True(t, s.IsAuthenticated())
}

func TestSetTokenRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s, err := Load(context.Background(), &memoryStore{}, fixedClock{now: now})
	require.NoError(t, err)

	err = s.SetToken(context.Background(), signedToken(t, now.Add(-time.Minute)))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	assert.False(t, s.IsAuthenticated())
}

func TestSetTokenRejectsMalformedAndEmptyTokens(t *testing.T) {
	t.Parallel()

	s, err := Load(context.Background(), &memoryStore{}, fixedClock{now: time.Now()})
	require.NoError(t, err)

	assert.ErrorIs(t, s.SetToken(context.Background(), ""), domain.ErrInvalidCredential)
	assert.ErrorIs(t, s.SetToken(context.Background(), "not-a-jwt"), domain.ErrInvalidCredential)
}

func TestIsAuthenticatedFlipsAtExpiryWithoutFurtherCalls(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &mutableClock{now: now}
	store := &memoryStore{}
	s, err := Load(context.Background(), store, clock)
	require.NoError(t, err)

	require.NoError(t, s.SetToken(context.Background(), signedToken(t, now.Add(10*time.Minute))))
	assert.True(t, s.IsAuthenticated())

	clock.now = now.Add(11 * time.Minute)
	assert.False(t, s.IsAuthenticated())

	// Token stays stored; staleness is detected at read time.
	_, ok := s.CurrentToken()
	assert.True(t, ok)
}

func TestIsAuthenticatedTreatsMalformedStoredTokenAsLoggedOut(t *testing.T) {
	t.Parallel()

	s, err := Load(context.Background(), &memoryStore{token: "garbage"}, fixedClock{now: time.Now()})
	require.NoError(t, err)

	assert.False(t, s.IsAuthenticated())
}

func TestClearIsIdempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &memoryStore{}
	s, err := Load(context.Background(), store, fixedClock{now: now})
	require.NoError(t, err)

	require.NoError(t, s.SetToken(context.Background(), signedToken(t, now.Add(time.Hour))))
	require.NoError(t, s.Clear(context.Background()))

	_, ok := s.CurrentToken()
	assert.False(t, ok)
	assert.Empty(t, store.token)

	require.NoError(t, s.Clear(context.Background()))
	assert.False(t, s.IsAuthenticated())
}

func TestLoadPropagatesStoreFailure(t *testing.T) {
	t.Parallel()

	store := &memoryStore{loadErr: errors.New("disk gone")}
	_, err := Load(context.Background(), store, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "load session")
}

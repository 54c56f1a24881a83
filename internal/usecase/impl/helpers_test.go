package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/repository"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var errStorageFull = errors.New("quota exceeded")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testClock is a settable clock shared by the manager and the test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Unix(1_750_000_000, 0)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func mintToken(t *testing.T, subject, role string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  expiresAt.Add(-time.Hour).Unix(),
		"exp":  expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return signed
}

func newBackend(t *testing.T) *storage.MemoryBackend {
	t.Helper()

	backend, err := storage.NewMemoryBackend()
	require.NoError(t, err)

	return backend
}

func newTestSession(store repository.KVStore, clock *testClock) *sessionManager {
	return NewSessionManager(SessionManagerParams{
		Store:  store,
		Codec:  auth.NewJWTCodec(),
		Clock:  clock,
		Logger: discardLogger(),
	}).(*sessionManager)
}

func newTestCart(t *testing.T, store repository.KVStore) *cartStore {
	t.Helper()

	cart, err := NewCartStore(CartStoreParams{Store: store, Logger: discardLogger()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cart.Close() })

	return cart.(*cartStore)
}

// flakyStore wraps a KVStore and fails writes while broken is set.
type flakyStore struct {
	repository.KVStore

	mu     sync.Mutex
	broken bool
}

func (s *flakyStore) setBroken(broken bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.broken = broken
}

func (s *flakyStore) isBroken() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.broken
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	if s.isBroken() {
		return errStorageFull
	}

	return s.KVStore.Set(ctx, key, value)
}

func (s *flakyStore) Delete(ctx context.Context, keys ...string) error {
	if s.isBroken() {
		return errStorageFull
	}

	return s.KVStore.Delete(ctx, keys...)
}

func (s *flakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.isBroken() {
		return "", false, errStorageFull
	}

	return s.KVStore.Get(ctx, key)
}

// undeletableStore accepts reads and writes but fails every delete.
type undeletableStore struct {
	repository.KVStore
}

func (s undeletableStore) Delete(context.Context, ...string) error {
	return errStorageFull
}

func price(v float64) *float64 {
	return &v
}

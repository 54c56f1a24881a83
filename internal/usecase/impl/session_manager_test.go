package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anaProfile = entity.Profile{
	Name:     "Ana",
	Surname:  "Rojas",
	Email:    "ana@pv.pe",
	District: "Lince",
	// Profile fields never override the claims
	DNI:  "00000000",
	Role: "ADMIN",
}

func TestSessionManager_LoginValidCredential(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	store := newBackend(t).Open()
	session := newTestSession(store, clock)

	token := mintToken(t, "12345678", "cliente", clock.Now().Add(time.Hour))
	identity, err := session.Login(ctx, token, anaProfile)
	require.NoError(t, err)

	assert.True(t, session.IsAuthenticated(ctx))
	assert.Equal(t, "12345678", identity.SubjectID)
	assert.Equal(t, entity.RoleClient, identity.Role)
	assert.Equal(t, "Ana", identity.DisplayName)
	assert.Equal(t, "Lince", identity.District)

	storedToken, found, err := store.Get(ctx, repository.KeyToken)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, token, storedToken)

	storedRole, _, err := store.Get(ctx, repository.KeyRole)
	require.NoError(t, err)
	assert.Equal(t, "CLIENTE", storedRole)

	storedUser, _, err := store.Get(ctx, repository.KeyUser)
	require.NoError(t, err)
	var persisted entity.Identity
	require.NoError(t, json.Unmarshal([]byte(storedUser), &persisted))
	assert.Equal(t, *identity, persisted)
}

func TestSessionManager_LoginRejectsExpiredCredential(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	store := newBackend(t).Open()
	session := newTestSession(store, clock)

	valid := mintToken(t, "12345678", "CLIENTE", clock.Now().Add(time.Hour))
	_, err := session.Login(ctx, valid, anaProfile)
	require.NoError(t, err)

	for _, exp := range []time.Time{clock.Now(), clock.Now().Add(-time.Minute)} {
		expired := mintToken(t, "87654321", "CLIENTE", exp)
		identity, err := session.Login(ctx, expired, anaProfile)

		require.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
		assert.Nil(t, identity)
		assert.False(t, session.IsAuthenticated(ctx))
		assert.Nil(t, session.Identity())
	}

	for _, key := range repository.SessionKeys() {
		_, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
}

func TestSessionManager_LoginRejectsGarbage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := newTestSession(newBackend(t).Open(), newTestClock())

	_, err := session.Login(ctx, "not-a-token", anaProfile)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
	assert.False(t, session.IsAuthenticated(ctx))
}

func TestSessionManager_HydrateRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	backend := newBackend(t)

	first := newTestSession(backend.Open(), clock)
	token := mintToken(t, "12345678", "ADMIN", clock.Now().Add(time.Hour))
	loggedIn, err := first.Login(ctx, token, anaProfile)
	require.NoError(t, err)

	// A second manager on the same storage plays a reloaded page
	reloaded := newTestSession(backend.Open(), clock)
	assert.False(t, reloaded.Ready())
	reloaded.Hydrate(ctx)

	assert.True(t, reloaded.Ready())
	assert.True(t, reloaded.IsAuthenticated(ctx))
	assert.Equal(t, loggedIn, reloaded.Identity())
	assert.Equal(t, token, reloaded.Credential(ctx))
}

func TestSessionManager_HydrateIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	store := newBackend(t).Open()
	token := mintToken(t, "12345678", "CLIENTE", clock.Now().Add(time.Hour))
	require.NoError(t, store.Set(ctx, repository.KeyToken, token))
	require.NoError(t, store.Set(ctx, repository.KeyUser, `{"nombre":"Ana","apellido":"Rojas","email":"ana@pv.pe"}`))

	session := newTestSession(store, clock)
	calls := 0
	session.OnIdentityChange(func(context.Context, string) { calls++ })

	session.Hydrate(ctx)
	first := session.Identity()
	session.Hydrate(ctx)

	assert.Equal(t, first, session.Identity())
	assert.True(t, session.IsAuthenticated(ctx))
	assert.Equal(t, 1, calls)
}

func TestSessionManager_HydrateWithoutCredential(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := newTestSession(newBackend(t).Open(), newTestClock())

	session.Hydrate(ctx)

	assert.True(t, session.Ready())
	assert.False(t, session.IsAuthenticated(ctx))
	assert.Nil(t, session.Identity())
}

func TestSessionManager_HydrateExpiredCredentialClears(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	store := newBackend(t).Open()
	require.NoError(t, store.Set(ctx, repository.KeyToken, mintToken(t, "12345678", "CLIENTE", clock.Now().Add(-time.Second))))
	require.NoError(t, store.Set(ctx, repository.KeyUser, `{"nombre":"Ana"}`))
	require.NoError(t, store.Set(ctx, repository.KeyRole, "CLIENTE"))

	session := newTestSession(store, clock)
	session.Hydrate(ctx)

	assert.True(t, session.Ready())
	assert.False(t, session.IsAuthenticated(ctx))
	for _, key := range repository.SessionKeys() {
		_, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
}

func TestSessionManager_HydrateCorruptProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	store := newBackend(t).Open()
	require.NoError(t, store.Set(ctx, repository.KeyToken, mintToken(t, "12345678", "admin", clock.Now().Add(time.Hour))))
	require.NoError(t, store.Set(ctx, repository.KeyUser, `{not json`))

	session := newTestSession(store, clock)
	session.Hydrate(ctx)

	identity := session.Identity()
	require.NotNil(t, identity)
	assert.Equal(t, &entity.Identity{SubjectID: "12345678", Role: entity.RoleAdmin}, identity)

	// The normalized profile is written back
	storedUser, _, err := store.Get(ctx, repository.KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dni":"12345678","nombre":"","apellido":"","email":"","role":"ADMIN"}`, storedUser)

	storedRole, _, err := store.Get(ctx, repository.KeyRole)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", storedRole)
}

func TestSessionManager_IsAuthenticatedFollowsClock(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	session := newTestSession(newBackend(t).Open(), clock)

	_, err := session.Login(ctx, mintToken(t, "12345678", "CLIENTE", clock.Now().Add(time.Minute)), anaProfile)
	require.NoError(t, err)
	require.True(t, session.IsAuthenticated(ctx))

	clock.Advance(time.Minute)
	assert.False(t, session.IsAuthenticated(ctx))
}

func TestSessionManager_LogoutClearsEverything(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	store := newBackend(t).Open()
	session := newTestSession(store, clock)

	_, err := session.Login(ctx, mintToken(t, "12345678", "CLIENTE", clock.Now().Add(time.Hour)), anaProfile)
	require.NoError(t, err)
	require.Contains(t, session.AuthHeaders(ctx), "Authorization")

	session.Logout(ctx)
	session.Logout(ctx)

	assert.False(t, session.IsAuthenticated(ctx))
	assert.Nil(t, session.Identity())
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, session.AuthHeaders(ctx))
	for _, key := range repository.SessionKeys() {
		_, found, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
}

func TestSessionManager_CredentialFallsBackToStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	store := newBackend(t).Open()
	token := mintToken(t, "12345678", "CLIENTE", clock.Now().Add(time.Hour))
	require.NoError(t, store.Set(ctx, repository.KeyToken, token))

	// Not hydrated yet: the first request after a reload still carries the bearer
	session := newTestSession(store, clock)
	assert.Equal(t, "Bearer "+token, session.AuthHeaders(ctx)["Authorization"])
	assert.True(t, session.IsAuthenticated(ctx))
	assert.Nil(t, session.Identity())
}

func TestSessionManager_LogoutWinsOverUndeletedToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	store := undeletableStore{KVStore: newBackend(t).Open()}
	session := newTestSession(store, clock)
	session.Hydrate(ctx)

	token := mintToken(t, "12345678", "CLIENTE", clock.Now().Add(time.Hour))
	_, err := session.Login(ctx, token, anaProfile)
	require.NoError(t, err)

	session.Logout(ctx)

	persisted, found, err := store.Get(ctx, repository.KeyToken)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, token, persisted)

	assert.False(t, session.IsAuthenticated(ctx))
	assert.Empty(t, session.Credential(ctx))
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, session.AuthHeaders(ctx))
	assert.Nil(t, session.Identity())
}

func TestSessionManager_LogoutBeforeHydrate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	store := undeletableStore{KVStore: newBackend(t).Open()}
	require.NoError(t, store.Set(ctx, repository.KeyToken, mintToken(t, "12345678", "CLIENTE", clock.Now().Add(time.Hour))))
	session := newTestSession(store, clock)

	session.Logout(ctx)
	session.Hydrate(ctx)

	assert.True(t, session.Ready())
	assert.False(t, session.IsAuthenticated(ctx))
	assert.Empty(t, session.Credential(ctx))
	assert.Nil(t, session.Identity())
}

func TestSessionManager_WaitReady(t *testing.T) {
	t.Parallel()

	session := newTestSession(newBackend(t).Open(), newTestClock())

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, session.WaitReady(canceled), context.Canceled)

	go session.Hydrate(context.Background())

	ctx, stop := context.WithTimeout(context.Background(), time.Second)
	defer stop()
	require.NoError(t, session.WaitReady(ctx))
	assert.True(t, session.Ready())
}

func TestSessionManager_ObserversSeeSubject(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	session := newTestSession(newBackend(t).Open(), clock)

	var seen []string
	session.OnIdentityChange(func(_ context.Context, subject string) { seen = append(seen, "a:"+subject) })
	session.OnIdentityChange(func(_ context.Context, subject string) { seen = append(seen, "b:"+subject) })

	session.Hydrate(ctx)
	_, err := session.Login(ctx, mintToken(t, "12345678", "CLIENTE", clock.Now().Add(time.Hour)), anaProfile)
	require.NoError(t, err)
	session.Logout(ctx)

	assert.Equal(t, []string{"a:", "b:", "a:12345678", "b:12345678", "a:", "b:"}, seen)
}

func TestSessionManager_StorageFailureKeepsMemoryState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	store := &flakyStore{KVStore: newBackend(t).Open()}
	store.setBroken(true)
	session := newTestSession(store, clock)

	token := mintToken(t, "12345678", "CLIENTE", clock.Now().Add(time.Hour))
	identity, err := session.Login(ctx, token, anaProfile)
	require.NoError(t, err)

	assert.Equal(t, "12345678", identity.SubjectID)
	assert.True(t, session.IsAuthenticated(ctx))
	assert.Equal(t, "Bearer "+token, session.AuthHeaders(ctx)["Authorization"])

	session.Logout(ctx)
	assert.False(t, session.IsAuthenticated(ctx))
}

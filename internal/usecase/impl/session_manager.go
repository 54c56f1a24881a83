package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionManagerParams holds dependencies for the session manager, injected by Fx.
type SessionManagerParams struct {
	fx.In

	Store  repository.KVStore
	Codec  service.TokenCodec
	Clock  service.Clock `optional:"true"`
	Logger *slog.Logger
}

// sessionManager implements the SessionUsecase interface.
type sessionManager struct {
	store  repository.KVStore
	codec  service.TokenCodec
	clock  service.Clock
	logger *slog.Logger

	mu         sync.RWMutex
	identity   *entity.Identity
	credential string
	// settled is set once Hydrate, Login or Logout decided the in-memory session.
	settled bool

	hydrateOnce sync.Once
	ready       chan struct{}

	observersMu sync.RWMutex
	observers   []usecase.IdentityObserver
}

// NewSessionManager is the constructor for sessionManager.
func NewSessionManager(params SessionManagerParams) usecase.SessionUsecase {
	clock := params.Clock
	if clock == nil {
		clock = service.SystemClock()
	}

	return &sessionManager{
		store:  params.Store,
		codec:  params.Codec,
		clock:  clock,
		logger: params.Logger,
		ready:  make(chan struct{}),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the manager's logger.
func (m *sessionManager) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFromContext(ctx, m.logger)
}

func (m *sessionManager) Hydrate(ctx context.Context) {
	m.hydrateOnce.Do(func() {
		m.hydrate(ctx)
		close(m.ready)
		m.notify(ctx)
	})
}

func (m *sessionManager) hydrate(ctx context.Context) {
	m.mu.RLock()
	settled := m.settled
	m.mu.RUnlock()
	if settled {
		// Login or Logout already ran; what is in storage may be a leftover.
		return
	}

	raw, found := m.read(ctx, repository.KeyToken)
	if !found || raw == "" {
		m.setState(nil, "")
		m.log(ctx).Debug("No persisted session")

		return
	}

	claims, valid := m.codec.Valid(raw, m.clock.Now())
	if !valid {
		m.log(ctx).Debug("Persisted credential rejected, clearing session")
		m.clear(ctx)

		return
	}

	var profile entity.Profile
	if stored, ok := m.read(ctx, repository.KeyUser); ok {
		if err := json.Unmarshal([]byte(stored), &profile); err != nil {
			m.log(ctx).Warn("Persisted profile is corrupt, rebuilding from claims", slog.Any("error", err))
			profile = entity.Profile{}
		}
	}

	identity := entity.NewIdentity(profile, claims)

	// Persist the merged identity so later reads agree with the claims
	m.persist(ctx, raw, identity)
	m.setState(identity, raw)

	m.log(ctx).Info("Session restored",
		slog.String("subject", identity.SubjectID),
		slog.String("role", identity.Role.String()),
	)
}

func (m *sessionManager) Ready() bool {
	select {
	case <-m.ready:
		return true
	default:
		return false
	}
}

func (m *sessionManager) WaitReady(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (m *sessionManager) Login(ctx context.Context, credential string, profile entity.Profile) (*entity.Identity, error) {
	claims, valid := m.codec.Valid(credential, m.clock.Now())
	if !valid {
		m.log(ctx).Info("Rejected login with invalid or expired credential")
		m.clear(ctx)
		m.notify(ctx)

		return nil, domainerrors.ErrInvalidCredential
	}

	identity := entity.NewIdentity(profile, claims)
	m.persist(ctx, credential, identity)
	m.setState(identity, credential)

	m.log(ctx).Info("Signed in",
		slog.String("subject", identity.SubjectID),
		slog.String("role", identity.Role.String()),
	)
	m.notify(ctx)

	return identity.Clone(), nil
}

func (m *sessionManager) Logout(ctx context.Context) {
	m.clear(ctx)
	m.log(ctx).Info("Signed out")
	m.notify(ctx)
}

func (m *sessionManager) Identity() *entity.Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.identity.Clone()
}

func (m *sessionManager) Credential(ctx context.Context) string {
	m.mu.RLock()
	credential, settled := m.credential, m.settled
	m.mu.RUnlock()

	// Storage only answers for requests that arrive before hydration; afterwards
	// a leftover token from a failed delete must not sign the session back in.
	if credential != "" || settled {
		return credential
	}

	persisted, _ := m.read(ctx, repository.KeyToken)

	return persisted
}

// IsAuthenticated is derived on every call and never cached,
// so a credential that expired in the meantime is reported as signed out.
func (m *sessionManager) IsAuthenticated(ctx context.Context) bool {
	credential := m.Credential(ctx)
	if credential == "" {
		return false
	}

	_, valid := m.codec.Valid(credential, m.clock.Now())

	return valid
}

func (m *sessionManager) AuthHeaders(ctx context.Context) map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if credential := m.Credential(ctx); credential != "" {
		headers["Authorization"] = "Bearer " + credential
	}

	return headers
}

func (m *sessionManager) OnIdentityChange(fn usecase.IdentityObserver) {
	m.observersMu.Lock()
	defer m.observersMu.Unlock()

	m.observers = append(m.observers, fn)
}

func (m *sessionManager) notify(ctx context.Context) {
	subject := ""
	if identity := m.Identity(); identity != nil {
		subject = identity.SubjectID
	}

	m.observersMu.RLock()
	observers := append([]usecase.IdentityObserver(nil), m.observers...)
	m.observersMu.RUnlock()

	for _, fn := range observers {
		fn(ctx, subject)
	}
}

func (m *sessionManager) setState(identity *entity.Identity, credential string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.identity = identity
	m.credential = credential
	m.settled = true
}

// clear drops the in-memory session and every persisted session key.
func (m *sessionManager) clear(ctx context.Context) {
	m.setState(nil, "")

	if err := m.store.Delete(ctx, repository.SessionKeys()...); err != nil {
		m.log(ctx).Warn("Failed to delete persisted session", slog.Any("error", err))
	}
}

// persist writes credential, identity and role under their own keys.
// Failures only cost durability; the in-memory session stays correct.
func (m *sessionManager) persist(ctx context.Context, credential string, identity *entity.Identity) {
	payload, err := json.Marshal(identity)
	if err != nil {
		m.log(ctx).Warn("Failed to encode identity", slog.Any("error", err))

		return
	}

	writes := []struct{ key, value string }{
		{repository.KeyToken, credential},
		{repository.KeyUser, string(payload)},
		{repository.KeyRole, identity.Role.String()},
	}
	for _, w := range writes {
		if err := m.store.Set(ctx, w.key, w.value); err != nil {
			m.log(ctx).Warn("Failed to persist session key", slog.String("key", w.key), slog.Any("error", err))
		}
	}
}

// read returns the stored value, treating storage errors as a missing key.
func (m *sessionManager) read(ctx context.Context, key string) (string, bool) {
	value, found, err := m.store.Get(ctx, key)
	if err != nil {
		m.log(ctx).Warn("Failed to read persisted key", slog.String("key", key), slog.Any("error", err))

		return "", false
	}

	return value, found
}

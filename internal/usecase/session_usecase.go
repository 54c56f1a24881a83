// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// IdentityObserver is told the subject identifier after every settled session
// change; an empty subject means nobody is signed in.
type IdentityObserver func(ctx context.Context, subjectID string)

// SessionUsecase owns the current identity and credential of this storefront.
type SessionUsecase interface {
	// Hydrate restores the persisted session. Only the first call has any effect.
	Hydrate(ctx context.Context)
	// Ready reports whether hydration has completed.
	Ready() bool
	// WaitReady blocks until hydration completes or ctx ends.
	WaitReady(ctx context.Context) error

	// Login installs credential and profile. An invalid or expired credential
	// clears the session and yields ErrInvalidCredential.
	Login(ctx context.Context, credential string, profile entity.Profile) (*entity.Identity, error)
	// Logout clears the session. Calling it again is harmless.
	Logout(ctx context.Context)

	// Identity returns a copy of the current identity, nil when signed out.
	Identity() *entity.Identity
	// Credential returns the in-memory credential, else the persisted one.
	Credential(ctx context.Context) string
	// IsAuthenticated is evaluated on every call against the clock.
	IsAuthenticated(ctx context.Context) bool
	// AuthHeaders returns the headers every backend request must carry.
	AuthHeaders(ctx context.Context) map[string]string

	// OnIdentityChange registers fn to run after Hydrate, Login and Logout.
	OnIdentityChange(fn IdentityObserver)
}

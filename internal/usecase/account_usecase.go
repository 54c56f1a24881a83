package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// AccountUsecase signs customers in and out against the users service.
type AccountUsecase interface {
	// SignIn exchanges credentials for a bearer, loads the profile and starts the session.
	SignIn(ctx context.Context, req service.LoginRequest) (*entity.Identity, error)
	// Register creates the account and signs it in.
	Register(ctx context.Context, req service.RegisterRequest) (*entity.Identity, error)
	SignOut(ctx context.Context)

	Profile(ctx context.Context) (*entity.Profile, error)
	// UpdateProfile saves changes and refreshes the session identity.
	UpdateProfile(ctx context.Context, req service.UpdateProfileRequest) (*entity.Identity, error)
	// DeleteAccount removes the account and ends the session.
	DeleteAccount(ctx context.Context) error
}

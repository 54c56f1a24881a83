package impl

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	users   service.UsersService
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	users service.UsersService,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		users:   users,
		session: session,
		logger:  logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFromContext(ctx, srv.logger)
}

// SignIn exchanges credentials for a token, fetches the profile with that token and starts the session.
func (srv *accountService) SignIn(ctx context.Context, req service.LoginRequest) (*entity.Identity, error) {
	token, err := srv.users.Login(ctx, req)
	if err != nil {
		var upstream *domainerrors.UpstreamError
		if errors.As(err, &upstream) && (upstream.Status() == http.StatusUnauthorized || upstream.Status() == http.StatusNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredential, upstream.Message())
		}

		return nil, errors.Wrap(err, "failed to log in")
	}

	// The session is not established yet, so the profile call carries the new token explicitly.
	profile, err := srv.users.Me(service.WithCredential(ctx, token))
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch profile after login")
	}

	identity, err := srv.session.Login(ctx, token, *profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start session")
	}

	srv.log(ctx).Info("User signed in", slog.String("subject", identity.SubjectID), slog.String("role", identity.Role.String()))

	return identity, nil
}

// Register creates the account and signs in with the same credentials.
func (srv *accountService) Register(ctx context.Context, req service.RegisterRequest) (*entity.Identity, error) {
	if err := srv.users.Register(ctx, req); err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	srv.log(ctx).Info("User registered", slog.String("email", req.Email))

	return srv.SignIn(ctx, service.LoginRequest{Email: req.Email, Password: req.Password})
}

func (srv *accountService) SignOut(ctx context.Context) {
	srv.session.Logout(ctx)
	srv.log(ctx).Info("User signed out")
}

func (srv *accountService) Profile(ctx context.Context) (*entity.Profile, error) {
	if !srv.session.IsAuthenticated(ctx) {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	profile, err := srv.users.Me(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch profile")
	}

	return profile, nil
}

// UpdateProfile writes the changes, then refreshes the persisted identity from the server's view of the user.
func (srv *accountService) UpdateProfile(ctx context.Context, req service.UpdateProfileRequest) (*entity.Identity, error) {
	if !srv.session.IsAuthenticated(ctx) {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if err := srv.users.UpdateMe(ctx, req); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	profile, err := srv.users.Me(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch updated profile")
	}

	identity, err := srv.session.Login(ctx, srv.session.Credential(ctx), *profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh session")
	}

	return identity, nil
}

func (srv *accountService) DeleteAccount(ctx context.Context) error {
	if !srv.session.IsAuthenticated(ctx) {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if err := srv.users.DeleteMe(ctx); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	srv.session.Logout(ctx)
	srv.log(ctx).Info("Account deleted")

	return nil
}

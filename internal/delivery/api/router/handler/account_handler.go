package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	Session usecase.SessionUsecase
	Account usecase.AccountUsecase
	Logger  *slog.Logger
}

// AccountHandler serves the session and profile endpoints.
type AccountHandler struct {
	session usecase.SessionUsecase
	account usecase.AccountUsecase
	logger  *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		session: params.Session,
		account: params.Account,
		logger:  params.Logger,
	}
}

// SessionResponse is the current auth state as pages see it.
type SessionResponse struct {
	Ready         bool             `json:"ready"`
	Authenticated bool             `json:"authenticated"`
	Identity      *entity.Identity `json:"identity"`
}

func (h *AccountHandler) sessionState(c echo.Context) SessionResponse {
	authenticated := h.session.IsAuthenticated(requestContext(c))

	state := SessionResponse{
		Ready:         h.session.Ready(),
		Authenticated: authenticated,
	}
	if authenticated {
		state.Identity = h.session.Identity()
	}

	return state
}

// GetSession handles GET /session.
func (h *AccountHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sessionState(c))
}

// Login handles POST /session/login.
func (h *AccountHandler) Login(c echo.Context) error {
	var req service.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.account.SignIn(requestContext(c), req); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.sessionState(c))
}

// Register handles POST /session/register.
func (h *AccountHandler) Register(c echo.Context) error {
	var req service.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.account.Register(requestContext(c), req); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.sessionState(c))
}

// Logout handles DELETE /session.
func (h *AccountHandler) Logout(c echo.Context) error {
	h.account.SignOut(requestContext(c))

	return response.NoContent(c)
}

// GetProfile handles GET /profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	profile, err := h.account.Profile(requestContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var req service.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	identity, err := h.account.UpdateProfile(requestContext(c), req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity)
}

// DeleteProfile handles DELETE /profile.
func (h *AccountHandler) DeleteProfile(c echo.Context) error {
	if err := h.account.DeleteAccount(requestContext(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

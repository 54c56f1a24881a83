package middleware

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionGate guards routes on the local session state.
// It only gates the view; the backend services check the bearer again.
type SessionGate struct {
	session usecase.SessionUsecase
}

// NewSessionGate is the constructor for SessionGate.
func NewSessionGate(session usecase.SessionUsecase) *SessionGate {
	return &SessionGate{session: session}
}

// RequireSession rejects the request when no live credential exists.
func (g *SessionGate) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !g.session.IsAuthenticated(c.Request().Context()) {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		return next(c)
	}
}

// RequireRole rejects authenticated callers whose role is not in roles.
// It implies RequireSession.
func (g *SessionGate) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return g.RequireSession(func(c echo.Context) error {
			identity := g.session.Identity()
			if identity == nil || !allowed.Contains(identity.Role) {
				return errors.WithStack(domainerrors.ErrForbidden)
			}

			return next(c)
		})
	}
}

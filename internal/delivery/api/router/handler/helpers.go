// Package handler contains the HTTP handlers of the local storefront API.
package handler

import (
	"context"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate binds the request body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			"body": "no se pudo leer la solicitud",
		}))
	}

	return c.Validate(req)
}

// int64Param reads a positive numeric path parameter.
func int64Param(c echo.Context, name string) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64(name, &id).BindError(); err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			name: "debe ser un identificador numérico",
		}))
	}

	return id, nil
}

// stringParam reads a non-empty path parameter.
func stringParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if value == "" {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			name: "es obligatorio",
		}))
	}

	return value, nil
}

func requestContext(c echo.Context) context.Context {
	return c.Request().Context()
}

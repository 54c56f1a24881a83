package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	Purchases usecase.PurchaseUsecase
}

// PurchaseHandler serves purchase history and the admin user list.
type PurchaseHandler struct {
	purchases usecase.PurchaseUsecase
}

// NewPurchaseHandler is the constructor for PurchaseHandler.
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{purchases: params.Purchases}
}

// MyPurchases handles GET /purchases/me.
func (h *PurchaseHandler) MyPurchases(c echo.Context) error {
	purchases, err := h.purchases.MyPurchases(requestContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchases)
}

// AllPurchases handles GET /admin/purchases.
func (h *PurchaseHandler) AllPurchases(c echo.Context) error {
	purchases, err := h.purchases.AllPurchases(requestContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchases)
}

// ListUsers handles GET /admin/users.
func (h *PurchaseHandler) ListUsers(c echo.Context) error {
	users, err := h.purchases.ListUsers(requestContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users)
}

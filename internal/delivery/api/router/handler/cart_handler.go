package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	Cart     usecase.CartUsecase
	Checkout usecase.CheckoutUsecase
}

// CartHandler serves the cart and checkout endpoints.
type CartHandler struct {
	cart     usecase.CartUsecase
	checkout usecase.CheckoutUsecase
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cart:     params.Cart,
		checkout: params.Checkout,
	}
}

// CartResponse is the body of every cart endpoint.
type CartResponse struct {
	Owner      string            `json:"owner"`
	Items      []entity.CartLine `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

// AddToCartRequest is the body of POST /cart/items.
type AddToCartRequest struct {
	ProductID int64    `json:"productId" validate:"required,gt=0"`
	Quantity  int      `json:"quantity" validate:"required,gte=1,lte=9999"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price" validate:"omitempty,gte=0"`
}

// UpdateQuantityRequest is the body of PUT /cart/items/:productId.
// A quantity of zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=9999"`
}

func (h *CartHandler) render(c echo.Context, status int) error {
	snapshot := h.cart.Snapshot()

	items := snapshot.Lines
	if items == nil {
		items = []entity.CartLine{}
	}

	return response.Success(c, status, CartResponse{
		Owner:      h.cart.Owner(),
		Items:      items,
		TotalItems: snapshot.TotalItems(),
		TotalPrice: snapshot.TotalPrice(),
	})
}

// GetCart handles GET /cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	return h.render(c, http.StatusOK)
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddToCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	h.cart.AddToCart(requestContext(c), entity.CartLine{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Name:      req.Name,
		Price:     req.Price,
	})

	return h.render(c, http.StatusOK)
}

// UpdateItem handles PUT /cart/items/:productId.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	productID, err := int64Param(c, "productId")
	if err != nil {
		return err
	}

	var req UpdateQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	h.cart.UpdateQuantity(requestContext(c), productID, req.Quantity)

	return h.render(c, http.StatusOK)
}

// RemoveItem handles DELETE /cart/items/:productId.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := int64Param(c, "productId")
	if err != nil {
		return err
	}

	h.cart.RemoveFromCart(requestContext(c), productID)

	return h.render(c, http.StatusOK)
}

// ClearCart handles DELETE /cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	h.cart.ClearCart(requestContext(c))

	return h.render(c, http.StatusOK)
}

// Checkout handles POST /checkout.
func (h *CartHandler) Checkout(c echo.Context) error {
	receipt, err := h.checkout.Checkout(requestContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, receipt)
}

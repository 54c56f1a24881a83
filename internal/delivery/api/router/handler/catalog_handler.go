package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	Catalog usecase.CatalogUsecase
}

// CatalogHandler serves products and offers.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalog: params.Catalog}
}

// productFilter reads the listing criteria from the query string.
func productFilter(c echo.Context) (entity.ProductFilter, error) {
	var (
		filter   entity.ProductFilter
		rx       bool
		minStock int
	)

	err := echo.QueryParamsBinder(c).
		String("nombre", &filter.Name).
		String("tipo", &filter.Type).
		Bool("requiere_receta", &rx).
		Int("minimo", &minStock).
		Int("page", &filter.Page).
		Int("pagesize", &filter.PageSize).
		BindError()
	if err != nil {
		return filter, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			"query": err.Error(),
		}))
	}

	if c.QueryParam("requiere_receta") != "" {
		filter.RequiresPrescription = &rx
	}
	if c.QueryParam("minimo") != "" {
		filter.MinStock = &minStock
	}

	return filter, nil
}

// ListProducts handles GET /products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter, err := productFilter(c)
	if err != nil {
		return err
	}

	page, err := h.catalog.ListProducts(requestContext(c), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetProduct handles GET /products/:id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalog.GetProduct(requestContext(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ProductTypes handles GET /products/types.
func (h *CatalogHandler) ProductTypes(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.ProductTypes)
}

// CreateProduct handles POST /admin/products.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var input entity.ProductInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	product, err := h.catalog.CreateProduct(requestContext(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct handles PUT /admin/products/:id.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	var patch entity.ProductPatch
	if err := bindAndValidate(c, &patch); err != nil {
		return err
	}

	product, err := h.catalog.UpdateProduct(requestContext(c), id, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalog.DeleteProduct(requestContext(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ListOffers handles GET /offers.
func (h *CatalogHandler) ListOffers(c echo.Context) error {
	offers, err := h.catalog.ListOffers(requestContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offers)
}

// GetOffer handles GET /offers/:id.
func (h *CatalogHandler) GetOffer(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	offer, err := h.catalog.GetOffer(requestContext(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer)
}

// CreateOffer handles POST /admin/offers.
func (h *CatalogHandler) CreateOffer(c echo.Context) error {
	var input entity.OfferInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	offer, err := h.catalog.CreateOffer(requestContext(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offer)
}

// UpdateOffer handles PUT /admin/offers/:id.
func (h *CatalogHandler) UpdateOffer(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	var input entity.OfferInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	offer, err := h.catalog.UpdateOffer(requestContext(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer)
}

// DeleteOffer handles DELETE /admin/offers/:id.
func (h *CatalogHandler) DeleteOffer(c echo.Context) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalog.DeleteOffer(requestContext(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

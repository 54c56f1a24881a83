package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
)

const (
	defaultPage     = 1
	defaultPageSize = 25
)

type catalogService struct {
	*client
}

func (s *catalogService) Echo(ctx context.Context) error {
	return s.echo(ctx, "/echo")
}

// ListProducts picks the listing endpoint matching the first criterion set on filter.
func (s *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) (*entity.ProductPage, error) {
	path, query := productListing(filter)

	var page entity.ProductPage
	if err := s.getJSON(ctx, path, query, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func productListing(filter entity.ProductFilter) (string, url.Values) {
	page, pageSize := filter.Page, filter.PageSize
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pagesize", strconv.Itoa(pageSize))

	switch {
	case filter.Name != "":
		query.Set("nombre", filter.Name)

		return "/productos/nombre", query
	case filter.Type != "":
		query.Set("tipo", filter.Type)

		return "/productos/tipo", query
	case filter.RequiresPrescription != nil:
		query.Set("requiere_receta", strconv.FormatBool(*filter.RequiresPrescription))

		return "/productos/receta", query
	case filter.MinStock != nil:
		query.Set("minimo", strconv.Itoa(*filter.MinStock))

		return "/productos/stock-bajo", query
	default:
		return "/productos/paged", query
	}
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var product entity.Product
	if err := s.getJSON(ctx, "/productos/"+formatID(id), nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, input entity.ProductInput) (*entity.Product, error) {
	var product entity.Product
	if err := s.doJSON(ctx, http.MethodPost, "/productos", nil, input, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	var product entity.Product
	if err := s.doJSON(ctx, http.MethodPut, "/productos/"+formatID(id), nil, patch, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, "/productos/"+formatID(id), nil, nil, nil)
}

func (s *catalogService) ListOffers(ctx context.Context) ([]entity.Offer, error) {
	var offers []entity.Offer
	if err := s.getJSON(ctx, "/api/ofertas/all", nil, &offers); err != nil {
		return nil, err
	}

	return offers, nil
}

func (s *catalogService) GetOffer(ctx context.Context, id int64) (*entity.Offer, error) {
	var offer entity.Offer
	if err := s.getJSON(ctx, "/api/ofertas/"+formatID(id), nil, &offer); err != nil {
		return nil, err
	}

	return &offer, nil
}

func (s *catalogService) CreateOffer(ctx context.Context, input entity.OfferInput) (*entity.Offer, error) {
	var offer entity.Offer
	if err := s.doJSON(ctx, http.MethodPost, "/api/ofertas/crear", nil, input, &offer); err != nil {
		return nil, err
	}

	return &offer, nil
}

func (s *catalogService) UpdateOffer(ctx context.Context, id int64, input entity.OfferInput) (*entity.Offer, error) {
	var offer entity.Offer
	if err := s.doJSON(ctx, http.MethodPut, "/api/ofertas/"+formatID(id), nil, input, &offer); err != nil {
		return nil, err
	}

	return &offer, nil
}

func (s *catalogService) DeleteOffer(ctx context.Context, id int64) error {
	return s.doJSON(ctx, http.MethodDelete, "/api/ofertas/"+formatID(id), nil, nil, nil)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

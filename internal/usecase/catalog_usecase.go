package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase browses and, for administrators, edits products and offers.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) (*entity.ProductPage, error)
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, input entity.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListOffers(ctx context.Context) ([]entity.Offer, error)
	GetOffer(ctx context.Context, id int64) (*entity.Offer, error)
	CreateOffer(ctx context.Context, input entity.OfferInput) (*entity.Offer, error)
	UpdateOffer(ctx context.Context, id int64, input entity.OfferInput) (*entity.Offer, error)
	DeleteOffer(ctx context.Context, id int64) error
}

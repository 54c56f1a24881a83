package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalog service.CatalogService, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) (*entity.ProductPage, error) {
	if filter.Type != "" && !entity.IsProductType(filter.Type) {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			"tipo": "unknown product type " + filter.Type,
		}))
	}

	page, err := srv.catalog.ListProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return page, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get product %d", id)
	}

	return product, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input entity.ProductInput) (*entity.Product, error) {
	product, err := srv.catalog.CreateProduct(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created", slog.Int64("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	product, err := srv.catalog.UpdateProduct(ctx, id, patch)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update product %d", id)
	}

	return product, nil
}

func (srv *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := srv.catalog.DeleteProduct(ctx, id); err != nil {
		return errors.Wrapf(err, "failed to delete product %d", id)
	}

	srv.logger.Info("Product deleted", slog.Int64("productID", id))

	return nil
}

func (srv *catalogService) ListOffers(ctx context.Context) ([]entity.Offer, error) {
	offers, err := srv.catalog.ListOffers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return offers, nil
}

func (srv *catalogService) GetOffer(ctx context.Context, id int64) (*entity.Offer, error) {
	offer, err := srv.catalog.GetOffer(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get offer %d", id)
	}

	return offer, nil
}

func (srv *catalogService) CreateOffer(ctx context.Context, input entity.OfferInput) (*entity.Offer, error) {
	offer, err := srv.catalog.CreateOffer(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create offer")
	}

	return offer, nil
}

func (srv *catalogService) UpdateOffer(ctx context.Context, id int64, input entity.OfferInput) (*entity.Offer, error) {
	offer, err := srv.catalog.UpdateOffer(ctx, id, input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update offer %d", id)
	}

	return offer, nil
}

func (srv *catalogService) DeleteOffer(ctx context.Context, id int64) error {
	if err := srv.catalog.DeleteOffer(ctx, id); err != nil {
		return errors.Wrapf(err, "failed to delete offer %d", id)
	}

	return nil
}

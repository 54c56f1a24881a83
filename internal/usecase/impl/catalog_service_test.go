package impl

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts(t *testing.T) {
	tests := []struct {
		name    string
		filter  entity.ProductFilter
		wantErr error
	}{
		{name: "no criteria", filter: entity.ProductFilter{Page: 2}},
		{name: "known type", filter: entity.ProductFilter{Type: "Analgesico"}},
		{name: "unknown type", filter: entity.ProductFilter{Type: "Golosinas"}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := mockService.NewMockCatalogService(t)
			srv := NewCatalogService(catalog, discardLogger())
			ctx := context.Background()

			if tt.wantErr == nil {
				catalog.EXPECT().ListProducts(ctx, tt.filter).
					Return(&entity.ProductPage{Total: 1, Products: []entity.Product{{ID: 1, Name: "Paracetamol"}}}, nil)
			}

			page, err := srv.ListProducts(ctx, tt.filter)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, page)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, page.Total)
		})
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	catalog := mockService.NewMockCatalogService(t)
	srv := NewCatalogService(catalog, discardLogger())
	ctx := context.Background()

	catalog.EXPECT().GetProduct(ctx, int64(99)).
		Return(nil, domainerrors.NewUpstreamError("productos", http.StatusNotFound, "", "Producto no encontrado", nil))

	_, err := srv.GetProduct(ctx, 99)

	var upstream *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.HTTPCode())
}

func TestCatalogService_ProductLifecycle(t *testing.T) {
	catalog := mockService.NewMockCatalogService(t)
	srv := NewCatalogService(catalog, discardLogger())
	ctx := context.Background()

	input := entity.ProductInput{Name: "Ibuprofeno", Type: "Antiinflamatorio", Price: 4.2, Stock: 10}
	created := &entity.Product{ID: 5, Name: "Ibuprofeno", Type: "Antiinflamatorio", Price: 4.2, Stock: 10}
	stock := 3
	patch := entity.ProductPatch{Stock: &stock}

	catalog.EXPECT().CreateProduct(ctx, input).Return(created, nil)
	catalog.EXPECT().UpdateProduct(ctx, int64(5), patch).Return(&entity.Product{ID: 5, Stock: 3}, nil)
	catalog.EXPECT().DeleteProduct(ctx, int64(5)).Return(nil)

	product, err := srv.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(5), product.ID)

	product, err = srv.UpdateProduct(ctx, 5, patch)
	require.NoError(t, err)
	assert.Equal(t, 3, product.Stock)

	require.NoError(t, srv.DeleteProduct(ctx, 5))
}

func TestCatalogService_Offers(t *testing.T) {
	catalog := mockService.NewMockCatalogService(t)
	srv := NewCatalogService(catalog, discardLogger())
	ctx := context.Background()

	input := entity.OfferInput{
		Details:   []entity.OfferDetail{{ProductID: 5, Discount: 10}},
		ExpiresOn: "2026-12-31",
	}
	offer := &entity.Offer{ID: 2, ExpiresOn: "2026-12-31", Details: input.Details}

	catalog.EXPECT().ListOffers(ctx).Return([]entity.Offer{*offer}, nil)
	catalog.EXPECT().GetOffer(ctx, int64(2)).Return(offer, nil)
	catalog.EXPECT().CreateOffer(ctx, input).Return(offer, nil)
	catalog.EXPECT().UpdateOffer(ctx, int64(2), input).Return(offer, nil)
	catalog.EXPECT().DeleteOffer(ctx, int64(2)).Return(nil)

	offers, err := srv.ListOffers(ctx)
	require.NoError(t, err)
	assert.Len(t, offers, 1)

	got, err := srv.GetOffer(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, offer, got)

	_, err = srv.CreateOffer(ctx, input)
	require.NoError(t, err)
	_, err = srv.UpdateOffer(ctx, 2, input)
	require.NoError(t, err)
	require.NoError(t, srv.DeleteOffer(ctx, 2))
}

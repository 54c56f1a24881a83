package impl

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutServiceFixtures struct {
	service      usecase.CheckoutUsecase
	orchestrator *mockService.MockOrchestratorService
	session      *sessionManager
	cart         *cartStore
	clock        *testClock
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	orchestrator := mockService.NewMockOrchestratorService(t)
	clock := newTestClock()
	backend := newBackend(t)
	session := newTestSession(backend.Open(), clock)
	cart := newTestCart(t, backend.Open())

	return checkoutServiceFixtures{
		service:      NewCheckoutService(orchestrator, session, cart, clock, discardLogger()),
		orchestrator: orchestrator,
		session:      session,
		cart:         cart,
		clock:        clock,
	}
}

func (fx checkoutServiceFixtures) signIn(t *testing.T, subject string) {
	t.Helper()

	ctx := context.Background()
	token := mintToken(t, subject, "CLIENTE", fx.clock.Now().Add(time.Hour))
	_, err := fx.session.Login(ctx, token, anaProfile)
	require.NoError(t, err)
	fx.cart.SwitchOwner(ctx, subject)
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.signIn(t, "12345678")

	ctx := context.Background()
	fx.cart.AddToCart(ctx, entity.CartLine{ProductID: 7, Quantity: 2, Name: "Paracetamol", Price: price(3.5)})
	fx.cart.AddToCart(ctx, entity.CartLine{ProductID: 9, Quantity: 1, Name: "Vitamina C", Price: price(12)})

	upstream := json.RawMessage(`{"compraId":41}`)
	fx.orchestrator.EXPECT().
		RegisterPurchase(ctx, entity.OrchestratedPurchase{
			UserID:     "12345678",
			ProductIDs: []int64{7, 9},
			Quantities: []int{2, 1},
		}).
		Return(upstream, nil)

	receipt, err := fx.service.Checkout(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 19.0, receipt.Total, 0.0001)
	assert.Equal(t, 3, receipt.TotalItems)
	assert.Equal(t, fx.clock.Now(), receipt.PlacedAt)
	assert.Len(t, receipt.Lines, 2)
	assert.JSONEq(t, `{"compraId":41}`, string(receipt.Upstream))
	assert.Empty(t, fx.cart.Items())
}

func TestCheckoutService_Checkout_RequiresSession(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.cart.AddToCart(ctx, entity.CartLine{ProductID: 7, Quantity: 1})

	_, err := fx.service.Checkout(ctx)

	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.Len(t, fx.cart.Items(), 1)
}

func TestCheckoutService_Checkout_ExpiredSession(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.signIn(t, "12345678")

	ctx := context.Background()
	fx.cart.AddToCart(ctx, entity.CartLine{ProductID: 7, Quantity: 1})
	fx.clock.Advance(2 * time.Hour)

	_, err := fx.service.Checkout(ctx)

	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.signIn(t, "12345678")

	_, err := fx.service.Checkout(context.Background())

	require.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_Checkout_PrescriptionRequired(t *testing.T) {
	fx := createTestCheckoutService(t)
	fx.signIn(t, "12345678")

	ctx := context.Background()
	fx.cart.AddToCart(ctx, entity.CartLine{ProductID: 3, Quantity: 1, Name: "Amoxicilina"})

	details := json.RawMessage(`{"productos_sin_receta":["Amoxicilina"]}`)
	fx.orchestrator.EXPECT().RegisterPurchase(ctx, entity.OrchestratedPurchase{
		UserID:     "12345678",
		ProductIDs: []int64{3},
		Quantities: []int{1},
	}).Return(nil, domainerrors.NewUpstreamError("orquestador", http.StatusBadRequest, "", "Faltan recetas", details))

	_, err := fx.service.Checkout(ctx)

	require.ErrorIs(t, err, domainerrors.ErrPrescriptionRequired)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, domainerrors.PrescriptionRequiredDetails{
		Products:   []string{"Amoxicilina"},
		RedirectTo: "/recetas",
	}, appErr.Details())

	assert.Len(t, fx.cart.Items(), 1)
}

func TestCheckoutService_Checkout_OtherUpstreamFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "bad request without prescription details",
			err: domainerrors.NewUpstreamError("orquestador", http.StatusBadRequest, "", "Stock insuficiente",
				json.RawMessage(`{"producto":3}`)),
		},
		{
			name: "server error",
			err:  domainerrors.NewUpstreamError("orquestador", http.StatusInternalServerError, "", "boom", nil),
		},
		{
			name: "unreachable",
			err:  errors.Wrap(domainerrors.ErrUpstreamUnavailable, "connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t)
			fx.signIn(t, "12345678")

			ctx := context.Background()
			fx.cart.AddToCart(ctx, entity.CartLine{ProductID: 3, Quantity: 1})
			fx.orchestrator.EXPECT().RegisterPurchase(ctx, entity.OrchestratedPurchase{
				UserID:     "12345678",
				ProductIDs: []int64{3},
				Quantities: []int{1},
			}).Return(nil, tt.err)

			_, err := fx.service.Checkout(ctx)

			require.Error(t, err)
			assert.NotErrorIs(t, err, domainerrors.ErrPrescriptionRequired)
			assert.Len(t, fx.cart.Items(), 1)
		})
	}
}

func TestMissingPrescriptions_NonStringEntries(t *testing.T) {
	err := domainerrors.NewUpstreamError("orquestador", http.StatusBadRequest, "", "",
		json.RawMessage(`{"productos_sin_receta":["Amoxicilina",12]}`))

	products, ok := missingPrescriptions(errors.Wrap(err, "register"))

	require.True(t, ok)
	assert.Equal(t, []string{"Amoxicilina", "12"}, products)
}

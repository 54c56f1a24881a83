package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo      *echo.Echo
	session   *mockUsecase.MockSessionUsecase
	account   *mockUsecase.MockAccountUsecase
	cart      *mockUsecase.MockCartUsecase
	checkout  *mockUsecase.MockCheckoutUsecase
	catalog   *mockUsecase.MockCatalogUsecase
	purchases *mockUsecase.MockPurchaseUsecase
	analytics *mockUsecase.MockAnalyticsUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fx := serverFixtures{
		session:   mockUsecase.NewMockSessionUsecase(t),
		account:   mockUsecase.NewMockAccountUsecase(t),
		cart:      mockUsecase.NewMockCartUsecase(t),
		checkout:  mockUsecase.NewMockCheckoutUsecase(t),
		catalog:   mockUsecase.NewMockCatalogUsecase(t),
		purchases: mockUsecase.NewMockPurchaseUsecase(t),
		analytics: mockUsecase.NewMockAnalyticsUsecase(t),
	}

	routes := router.NewRouter(router.RouterParams{
		HealthHandler: handler.NewHealthHandler(handler.HealthHandlerParams{
			Session:      fx.session,
			Users:        mockService.NewMockUsersService(t),
			Catalog:      mockService.NewMockCatalogService(t),
			Prescription: mockService.NewMockPrescriptionService(t),
			Analytics:    mockService.NewMockAnalyticsService(t),
			Orchestrator: mockService.NewMockOrchestratorService(t),
		}),
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{
			Session: fx.session,
			Account: fx.account,
			Logger:  logger,
		}),
		CartHandler:         handler.NewCartHandler(handler.CartHandlerParams{Cart: fx.cart, Checkout: fx.checkout}),
		CatalogHandler:      handler.NewCatalogHandler(handler.CatalogHandlerParams{Catalog: fx.catalog}),
		PrescriptionHandler: handler.NewPrescriptionHandler(handler.PrescriptionHandlerParams{Prescriptions: mockUsecase.NewMockPrescriptionUsecase(t)}),
		PurchaseHandler:     handler.NewPurchaseHandler(handler.PurchaseHandlerParams{Purchases: fx.purchases}),
		AnalyticsHandler:    handler.NewAnalyticsHandler(handler.AnalyticsHandlerParams{Analytics: fx.analytics}),
		SessionGate:         apimiddleware.NewSessionGate(fx.session),
	})
	fx.echo = newEcho(cfg, logger, routes)

	return fx
}

func (fx serverFixtures) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestServer_HealthEchoesRequestID(t *testing.T) {
	fx := createTestServer(t)
	fx.session.EXPECT().Ready().Return(true)

	rec := fx.do(http.MethodGet, "/health", "", deliverycontext.HeaderXRequestID, "req-42")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "req-42", env.Meta.RequestID)
	assert.JSONEq(t, `{"status":"ok","sessionReady":true}`, string(env.Data))
}

func TestServer_RequireSession(t *testing.T) {
	fx := createTestServer(t)
	fx.session.EXPECT().IsAuthenticated(mock.Anything).Return(false)

	rec := fx.do(http.MethodPost, "/checkout", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestServer_RequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     entity.Role
		wantCode int
	}{
		{name: "customer", role: entity.RoleClient, wantCode: http.StatusForbidden},
		{name: "admin", role: entity.RoleAdmin, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t)
			fx.session.EXPECT().IsAuthenticated(mock.Anything).Return(true)
			fx.session.EXPECT().Identity().Return(&entity.Identity{SubjectID: "12345678", Role: tt.role})
			if tt.wantCode == http.StatusOK {
				fx.purchases.EXPECT().ListUsers(mock.Anything).Return(json.RawMessage(`[]`), nil)
			}

			rec := fx.do(http.MethodGet, "/admin/users", "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestServer_PrescriptionRequiredKeepsDetails(t *testing.T) {
	fx := createTestServer(t)
	fx.session.EXPECT().IsAuthenticated(mock.Anything).Return(true)
	fx.checkout.EXPECT().Checkout(mock.Anything).Return(nil, errors.WithStack(
		domainerrors.ErrPrescriptionRequired.WithDetails(domainerrors.PrescriptionRequiredDetails{
			Products:   []string{"Amoxicilina"},
			RedirectTo: "/recetas",
		}),
	))

	rec := fx.do(http.MethodPost, "/checkout", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PRESCRIPTION_REQUIRED", env.Error.Code)
	assert.JSONEq(t, `{"productos_sin_receta":["Amoxicilina"],"redirectTo":"/recetas"}`, string(env.Error.Details))
}

func TestServer_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantDetails bool
	}{
		{
			name:        "client error passes through",
			err:         domainerrors.NewUpstreamError("productos", http.StatusNotFound, "", "Producto no encontrado", json.RawMessage(`{"id":9}`)),
			wantCode:    http.StatusNotFound,
			wantDetails: true,
		},
		{
			name:     "server error becomes bad gateway",
			err:      domainerrors.NewUpstreamError("productos", http.StatusInternalServerError, "", "stack trace", json.RawMessage(`{"trace":"x"}`)),
			wantCode: http.StatusBadGateway,
		},
		{
			name:     "unknown error is internal",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t)
			fx.catalog.EXPECT().GetProduct(mock.Anything, int64(9)).Return(nil, tt.err)

			rec := fx.do(http.MethodGet, "/products/9", "")

			require.Equal(t, tt.wantCode, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			if tt.wantDetails {
				assert.JSONEq(t, `{"id":9}`, string(env.Error.Details))
			} else {
				assert.Empty(t, env.Error.Details)
			}
		})
	}
}

func TestServer_CartValidation(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "zero add", method: http.MethodPost, target: "/cart/items", body: `{"productId":7,"quantity":0}`},
		{name: "oversized add", method: http.MethodPost, target: "/cart/items", body: `{"productId":7,"quantity":10000}`},
		{name: "huge add", method: http.MethodPost, target: "/cart/items", body: `{"productId":7,"quantity":9223372036854775807}`},
		{name: "oversized update", method: http.MethodPut, target: "/cart/items/7", body: `{"quantity":10000}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestServer(t)

			rec := fx.do(tt.method, tt.target, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Contains(t, string(env.Error.Details), "quantity")
		})
	}
}

func TestServer_CartAdd(t *testing.T) {
	fx := createTestServer(t)

	fx.cart.EXPECT().AddToCart(mock.Anything, entity.CartLine{ProductID: 7, Quantity: 2, Name: "Paracetamol"}).
		Run(func(ctx context.Context, _ entity.CartLine) {
			assert.NotEmpty(t, deliverycontext.RequestIDFromContext(ctx))
		}).
		Return()
	fx.cart.EXPECT().Snapshot().Return(entity.NewCart([]entity.CartLine{{ProductID: 7, Quantity: 2, Name: "Paracetamol"}}))
	fx.cart.EXPECT().Owner().Return(entity.AnonymousOwner)

	rec := fx.do(http.MethodPost, "/cart/items", `{"productId":7,"quantity":2,"name":"Paracetamol"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `{
		"owner":"anonymous",
		"items":[{"productId":7,"quantity":2,"name":"Paracetamol"}],
		"totalItems":2,
		"totalPrice":0
	}`, string(env.Data))
}

func TestServer_UnknownRoute(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

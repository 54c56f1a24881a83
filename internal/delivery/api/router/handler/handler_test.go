package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContext(method, target string, body *bytes.Buffer, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func jsonBody(s string) *bytes.Buffer {
	return bytes.NewBufferString(s)
}

func TestCatalogHandler_ListProducts_Filters(t *testing.T) {
	rx := true
	minStock := 5

	tests := []struct {
		name   string
		query  string
		filter entity.ProductFilter
	}{
		{name: "paged", query: "?page=2&pagesize=10", filter: entity.ProductFilter{Page: 2, PageSize: 10}},
		{name: "by name", query: "?nombre=para", filter: entity.ProductFilter{Name: "para"}},
		{name: "by prescription flag", query: "?requiere_receta=true", filter: entity.ProductFilter{RequiresPrescription: &rx}},
		{name: "low stock", query: "?minimo=5", filter: entity.ProductFilter{MinStock: &minStock}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := mockUsecase.NewMockCatalogUsecase(t)
			h := NewCatalogHandler(CatalogHandlerParams{Catalog: catalog})
			c, rec := newContext(http.MethodGet, "/products"+tt.query, nil, "")

			catalog.EXPECT().ListProducts(mock.Anything, tt.filter).Return(&entity.ProductPage{Total: 0}, nil)

			require.NoError(t, h.ListProducts(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestCatalogHandler_ListProducts_BadQuery(t *testing.T) {
	h := NewCatalogHandler(CatalogHandlerParams{Catalog: mockUsecase.NewMockCatalogUsecase(t)})
	c, _ := newContext(http.MethodGet, "/products?page=uno", nil, "")

	err := h.ListProducts(c)

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogHandler_GetProduct_BadID(t *testing.T) {
	h := NewCatalogHandler(CatalogHandlerParams{Catalog: mockUsecase.NewMockCatalogUsecase(t)})

	for _, raw := range []string{"abc", "0", "-3"} {
		c, _ := newContext(http.MethodGet, "/products/"+raw, nil, "")
		c.SetParamNames("id")
		c.SetParamValues(raw)

		require.ErrorIs(t, h.GetProduct(c), domainerrors.ErrValidationFailed, raw)
	}
}

func TestAccountHandler_Login(t *testing.T) {
	session := mockUsecase.NewMockSessionUsecase(t)
	account := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{Session: session, Account: account})

	identity := &entity.Identity{SubjectID: "12345678", Role: entity.RoleClient, DisplayName: "Ana"}
	account.EXPECT().SignIn(mock.Anything, service.LoginRequest{DNI: "12345678", Password: "secreto"}).
		Return(identity, nil)
	session.EXPECT().IsAuthenticated(mock.Anything).Return(true)
	session.EXPECT().Ready().Return(true)
	session.EXPECT().Identity().Return(identity)

	c, rec := newContext(http.MethodPost, "/session/login",
		jsonBody(`{"dni":"12345678","password":"secreto"}`), echo.MIMEApplicationJSON)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data SessionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.Authenticated)
	assert.Equal(t, "12345678", body.Data.Identity.SubjectID)
}

func TestAccountHandler_Login_Invalid(t *testing.T) {
	h := NewAccountHandler(AccountHandlerParams{
		Session: mockUsecase.NewMockSessionUsecase(t),
		Account: mockUsecase.NewMockAccountUsecase(t),
	})
	c, _ := newContext(http.MethodPost, "/session/login", jsonBody(`{"password":"x"}`), echo.MIMEApplicationJSON)

	require.ErrorIs(t, h.Login(c), domainerrors.ErrValidationFailed)
}

func TestAccountHandler_GetSession_SignedOut(t *testing.T) {
	session := mockUsecase.NewMockSessionUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{Session: session, Account: mockUsecase.NewMockAccountUsecase(t)})

	session.EXPECT().IsAuthenticated(mock.Anything).Return(false)
	session.EXPECT().Ready().Return(true)

	c, rec := newContext(http.MethodGet, "/session", nil, "")

	require.NoError(t, h.GetSession(c))
	assert.JSONEq(t, `{"ready":true,"authenticated":false,"identity":null}`,
		string(extractData(t, rec)))
}

func TestCartHandler_UpdateItem_ZeroRemoves(t *testing.T) {
	cart := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{Cart: cart, Checkout: mockUsecase.NewMockCheckoutUsecase(t)})

	cart.EXPECT().UpdateQuantity(mock.Anything, int64(7), 0).Return()
	cart.EXPECT().Snapshot().Return(entity.Cart{})
	cart.EXPECT().Owner().Return("12345678")

	c, rec := newContext(http.MethodPut, "/cart/items/7", jsonBody(`{"quantity":0}`), echo.MIMEApplicationJSON)
	c.SetParamNames("productId")
	c.SetParamValues("7")

	require.NoError(t, h.UpdateItem(c))
	assert.JSONEq(t, `{"owner":"12345678","items":[],"totalItems":0,"totalPrice":0}`, string(extractData(t, rec)))
}

func TestPrescriptionHandler_Upload(t *testing.T) {
	prescriptions := mockUsecase.NewMockPrescriptionUsecase(t)
	h := NewPrescriptionHandler(PrescriptionHandlerParams{Prescriptions: prescriptions})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("medicoCMP", "12345"))
	part, err := writer.CreateFormFile("archivoPDF", "receta.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 contenido"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	prescriptions.EXPECT().UploadPrescription(mock.Anything, entity.PrescriptionUpload{
		FileName: "receta.pdf",
		Content:  []byte("%PDF-1.4 contenido"),
		Fields:   map[string]string{"medicoCMP": "12345"},
	}).Return(&entity.Prescription{ID: "r1"}, nil)

	c, rec := newContext(http.MethodPost, "/prescriptions", &buf, writer.FormDataContentType())

	require.NoError(t, h.UploadPrescription(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPrescriptionHandler_Upload_MissingFile(t *testing.T) {
	h := NewPrescriptionHandler(PrescriptionHandlerParams{Prescriptions: mockUsecase.NewMockPrescriptionUsecase(t)})

	c, _ := newContext(http.MethodPost, "/prescriptions", jsonBody(`{}`), echo.MIMEApplicationJSON)

	require.ErrorIs(t, h.UploadPrescription(c), domainerrors.ErrValidationFailed)
}

func TestAnalyticsHandler_Ingest(t *testing.T) {
	analytics := mockUsecase.NewMockAnalyticsUsecase(t)
	h := NewAnalyticsHandler(AnalyticsHandlerParams{Analytics: analytics})

	analytics.EXPECT().Ingest(mock.Anything, entity.IngestPostgreSQL).Return(json.RawMessage(`{"ok":true}`), nil)

	c, rec := newContext(http.MethodPost, "/admin/analytics/ingest/postgresql", nil, "")
	c.SetParamNames("source")
	c.SetParamValues("postgresql")

	require.NoError(t, h.Ingest(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"ok":true`))
}

func extractData(t *testing.T, rec *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

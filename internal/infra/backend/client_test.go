package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCredential string

func (s staticCredential) Credential(context.Context) string {
	return string(s)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, credential string) *client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return newClient("test", srv.URL+"//", time.Second, staticCredential(credential), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http://api", normalizeBaseURL("http://api///"))
	assert.Equal(t, "http://api", normalizeBaseURL(" http://api "))
	assert.Empty(t, normalizeBaseURL(""))
}

func TestClient_Headers(t *testing.T) {
	t.Parallel()

	var got http.Header
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"ok":true}`))
	}, "session-token")

	ctx := deliverycontext.WithRequestScope(context.Background(), "req-1", nil)
	var out map[string]bool
	require.NoError(t, c.getJSON(ctx, "/echo", nil, &out))

	assert.Equal(t, "/echo", path)
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "Bearer session-token", got.Get("Authorization"))
	assert.Equal(t, "req-1", got.Get("X-Request-Id"))
	assert.True(t, out["ok"])
}

func TestClient_PinnedCredentialWins(t *testing.T) {
	t.Parallel()

	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	}, "session-token")

	ctx := service.WithCredential(context.Background(), "fresh-token")
	require.NoError(t, c.getJSON(ctx, "/user/me", nil, nil))
	assert.Equal(t, "Bearer fresh-token", auth)
}

func TestClient_NoCredentialNoHeader(t *testing.T) {
	t.Parallel()

	var auth []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Values("Authorization")
	}, "")

	require.NoError(t, c.getJSON(context.Background(), "/echo", nil, nil))
	assert.Empty(t, auth)
}

func TestClient_EmptyBodyDecodes(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, "")

	var out json.RawMessage
	require.NoError(t, c.doJSON(context.Background(), http.MethodDelete, "/x", nil, nil, &out))
	assert.Empty(t, out)
}

func TestClient_UpstreamErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantHTTP    int
		wantCode    string
		wantMessage string
		wantDetails string
	}{
		{
			name:        "message and details",
			status:      http.StatusBadRequest,
			body:        `{"message":"faltan recetas","details":{"productos_sin_receta":["Amoxicilina"]}}`,
			wantHTTP:    http.StatusBadRequest,
			wantCode:    "UPSTREAM_400",
			wantMessage: "faltan recetas",
			wantDetails: `{"productos_sin_receta":["Amoxicilina"]}`,
		},
		{
			name:        "error string",
			status:      http.StatusUnauthorized,
			body:        `{"error":"credenciales invalidas","code":"AUTH"}`,
			wantHTTP:    http.StatusUnauthorized,
			wantCode:    "AUTH",
			wantMessage: "credenciales invalidas",
		},
		{
			name:        "server error becomes bad gateway",
			status:      http.StatusInternalServerError,
			body:        `oops`,
			wantHTTP:    http.StatusBadGateway,
			wantCode:    "UPSTREAM_500",
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "")

			err := c.getJSON(context.Background(), "/x", nil, nil)
			require.Error(t, err)

			var upstream *domainerrors.UpstreamError
			require.True(t, errors.As(err, &upstream))
			assert.Equal(t, tt.status, upstream.Status())
			assert.Equal(t, tt.wantHTTP, upstream.HTTPCode())
			assert.Equal(t, tt.wantCode, upstream.ErrorCode())
			assert.Equal(t, tt.wantMessage, upstream.Message())
			if tt.wantDetails != "" {
				assert.JSONEq(t, tt.wantDetails, string(upstream.RawDetails()))
			} else {
				assert.Empty(t, upstream.RawDetails())
			}
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := newClient("test", srv.URL, time.Second, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := c.getJSON(context.Background(), "/echo", nil, nil)
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestClient_MissingBaseURL(t *testing.T) {
	t.Parallel()

	c := newClient("test", "", 0, nil, slog.Default())
	err := c.getJSON(context.Background(), "/echo", nil, nil)
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

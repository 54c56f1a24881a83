// Package backend implements the HTTP clients of the storefront's backend services.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTimeout = 15 * time.Second

	// maxErrorBody bounds how much of a failed reply is read for decoding.
	maxErrorBody = 1 << 20
)

// Service names, used in logs and upstream errors.
const (
	ServiceUsers         = "usuarios"
	ServiceCatalog       = "productos"
	ServicePrescriptions = "recetas"
	ServiceAnalytics     = "analitica"
	ServiceOrchestrator  = "orquestador"
)

// client is the shared transport of every backend service.
type client struct {
	service     string
	baseURL     string
	httpClient  *http.Client
	credentials service.CredentialSource
	logger      *slog.Logger
}

// errorBody is the error envelope the backends reply with. Each service
// fills a different subset of it.
type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Code    string          `json:"code"`
	Details json.RawMessage `json:"details"`
}

func newClient(name, baseURL string, timeout time.Duration, credentials service.CredentialSource, logger *slog.Logger) *client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		service: name,
		baseURL: normalizeBaseURL(baseURL),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		credentials: credentials,
		logger:      logger,
	}
}

// normalizeBaseURL drops trailing slashes so joined paths never contain "//".
func normalizeBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// getJSON performs a GET and decodes the reply into out.
func (c *client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// doJSON sends in as a JSON body (when non-nil) and decodes the reply into out (when non-nil).
func (c *client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	return c.do(ctx, method, path, query, body, contentType, out)
}

func (c *client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	if c.baseURL == "" {
		return errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "%s base url not configured", c.service)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if bearer := c.bearer(ctx); bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	// Add X-Request-Id header for tracing
	if requestID := deliverycontext.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.LoggerFromContext(ctx, c.logger)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Backend request failed",
			slog.String("service", c.service),
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "%s %s %s: %v", c.service, method, path, err)
	}
	defer resp.Body.Close()

	logger.Debug("Backend request",
		slog.String("service", c.service),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	return decodeBody(resp.Body, out)
}

// bearer prefers a credential pinned on ctx over the session's.
func (c *client) bearer(ctx context.Context) string {
	if credential, ok := service.CredentialFromContext(ctx); ok {
		return credential
	}
	if c.credentials == nil {
		return ""
	}

	return c.credentials.Credential(ctx)
}

func (c *client) decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return domainerrors.NewUpstreamError(c.service, resp.StatusCode, "", "", nil)
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return domainerrors.NewUpstreamError(c.service, resp.StatusCode, "", "", nil)
	}

	message := body.Message
	if message == "" && len(body.Error) > 0 {
		var text string
		if json.Unmarshal(body.Error, &text) == nil {
			message = text
		}
	}

	details := body.Details
	if string(details) == "null" {
		details = nil
	}

	return domainerrors.NewUpstreamError(c.service, resp.StatusCode, body.Code, message, details)
}

func decodeBody(r io.Reader, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, r)

		return nil
	}

	if err := json.NewDecoder(r).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		return errors.Wrap(err, "decode response body")
	}

	return nil
}

// echo performs a health-check GET.
func (c *client) echo(ctx context.Context, path string) error {
	return c.getJSON(ctx, path, nil, nil)
}

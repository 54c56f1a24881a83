// Package context carries per-request values (request ID and a logger bound to it)
// from the HTTP edge down to the backend clients.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from incoming requests and forwarded to every backend call.
const HeaderXRequestID = "X-Request-Id"

const echoRequestIDKey = "request_id"

type scopeKey struct{}

type requestScope struct {
	requestID string
	logger    *slog.Logger
}

// WithRequestScope binds a request ID and its logger to ctx. A nil logger is allowed.
func WithRequestScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, requestScope{requestID: requestID, logger: logger})
}

// RequestIDFromContext returns the bound request ID, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	scope, _ := ctx.Value(scopeKey{}).(requestScope)

	return scope.requestID
}

// LoggerFromContext returns the request logger, or fallback when none is bound.
func LoggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if scope, ok := ctx.Value(scopeKey{}).(requestScope); ok && scope.logger != nil {
		return scope.logger
	}

	return fallback
}

// SetRequestID stores the request ID on the echo context for the response envelope.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// RequestID returns the request ID of c. Responses written before the
// request-id middleware ran still get a fresh one.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}
	if id := RequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

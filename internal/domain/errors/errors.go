// Package errors defines the error taxonomy shared by the storefront use cases and its HTTP surface.
package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same business code, so sentinels
// still match after WithDetails produced a copy.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrInvalidCredential = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIAL",
		"Email/DNI o contraseña incorrectos",
		nil,
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Tu sesión expiró, inicia sesión nuevamente",
		nil,
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"No tienes permisos para acceder a esta sección",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos ingresados no son válidos",
		nil,
	)

	// Cart and checkout errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Tu carrito está vacío",
		nil,
	)

	ErrPrescriptionRequired = NewBaseError(
		http.StatusConflict,
		"PRESCRIPTION_REQUIRED",
		"Algunos productos requieren una receta válida",
		nil,
	)

	// Upstream errors
	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		"El servicio no está disponible, inténtalo nuevamente",
		nil,
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No se encontró el recurso",
		nil,
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		nil,
	)
)

// PrescriptionRequiredDetails is attached to ErrPrescriptionRequired.
type PrescriptionRequiredDetails struct {
	Products   []string `json:"productos_sin_receta"`
	RedirectTo string   `json:"redirectTo"`
}

// UpstreamError is a non-2xx reply from one of the backend services, implementing the AppError interface
type UpstreamError struct {
	service string
	status  int
	code    string
	message string
	details json.RawMessage
}

// NewUpstreamError creates an upstream error from a decoded backend reply.
func NewUpstreamError(service string, status int, code, message string, details json.RawMessage) *UpstreamError {
	return &UpstreamError{
		service: service,
		status:  status,
		code:    code,
		message: message,
		details: details,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s service returned %d: %s", e.service, e.status, e.message)
}

// Service names the backend that replied.
func (e *UpstreamError) Service() string {
	return e.service
}

// Status returns the backend's HTTP status.
func (e *UpstreamError) Status() int {
	return e.status
}

// HTTPCode passes 4xx through and maps 5xx to 502.
func (e *UpstreamError) HTTPCode() int {
	if e.status >= http.StatusInternalServerError {
		return http.StatusBadGateway
	}

	return e.status
}

// ErrorCode returns the backend's code, or a generic one derived from the status.
func (e *UpstreamError) ErrorCode() string {
	if e.code != "" {
		return e.code
	}

	return fmt.Sprintf("UPSTREAM_%d", e.status)
}

// Message returns the backend's message, or the status text.
func (e *UpstreamError) Message() string {
	if e.message != "" {
		return e.message
	}

	return http.StatusText(e.status)
}

// Details returns the raw details object of the backend reply.
func (e *UpstreamError) Details() any {
	if len(e.details) == 0 {
		return nil
	}

	return e.details
}

// RawDetails returns the undecoded details payload.
func (e *UpstreamError) RawDetails() json.RawMessage {
	return e.details
}

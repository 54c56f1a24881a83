package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	Analytics usecase.AnalyticsUsecase
}

// AnalyticsHandler serves the admin dashboard reports.
type AnalyticsHandler struct {
	analytics usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler.
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: params.Analytics}
}

// Report handles GET /admin/analytics/:report.
func (h *AnalyticsHandler) Report(c echo.Context) error {
	name, err := stringParam(c, "report")
	if err != nil {
		return err
	}

	report, err := h.analytics.Report(requestContext(c), name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report)
}

// Ingest handles POST /admin/analytics/ingest/:source.
func (h *AnalyticsHandler) Ingest(c echo.Context) error {
	source, err := stringParam(c, "source")
	if err != nil {
		return err
	}

	result, err := h.analytics.Ingest(requestContext(c), entity.IngestSource(source))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, result)
}

package handler

import (
	"context"
	"net/http"
	"sync"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Session      usecase.SessionUsecase
	Users        service.UsersService
	Catalog      service.CatalogService
	Prescription service.PrescriptionService
	Analytics    service.AnalyticsService
	Orchestrator service.OrchestratorService
}

// HealthHandler reports whether the storefront and its backends are up.
type HealthHandler struct {
	session usecase.SessionUsecase
	checks  map[string]func(context.Context) error
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		session: params.Session,
		checks: map[string]func(context.Context) error{
			"usuarios":    params.Users.Echo,
			"productos":   params.Catalog.Echo,
			"recetas":     params.Prescription.Echo,
			"analitica":   params.Analytics.Echo,
			"orquestador": params.Orchestrator.Echo,
		},
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status       string            `json:"status"`
	SessionReady bool              `json:"sessionReady"`
	Services     map[string]string `json:"services,omitempty"`
}

// Health answers immediately unless ?deep=true asks for a round trip to every backend.
func (h *HealthHandler) Health(c echo.Context) error {
	out := HealthResponse{
		Status:       "ok",
		SessionReady: h.session.Ready(),
	}

	if c.QueryParam("deep") != "true" {
		return response.Success(c, http.StatusOK, out)
	}

	out.Services = h.probe(requestContext(c))
	for _, status := range out.Services {
		if status != "ok" {
			out.Status = "degraded"
		}
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *HealthHandler) probe(ctx context.Context) map[string]string {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = make(map[string]string, len(h.checks))
	)

	for name, check := range h.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			status := "ok"
			if err := check(ctx); err != nil {
				status = "unavailable"
			}

			mu.Lock()
			out[name] = status
			mu.Unlock()
		}()
	}
	wg.Wait()

	return out
}

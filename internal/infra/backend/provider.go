package backend

import (
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

// ClientParams holds dependencies for the backend clients, injected by Fx
type ClientParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	Credentials service.CredentialSource
}

func (p ClientParams) client(name string, baseURL func(*config.ServicesConfig) string) *client {
	var (
		url     string
		timeout time.Duration
	)
	if cfg := p.Config.Services; cfg != nil {
		url = baseURL(cfg)
		timeout = cfg.Timeout
	}

	return newClient(name, url, timeout, p.Credentials, p.Logger)
}

// NewUsersService creates the users/purchases backend client
func NewUsersService(params ClientParams) service.UsersService {
	return &usersService{params.client(ServiceUsers, func(c *config.ServicesConfig) string { return c.Usuarios })}
}

// NewCatalogService creates the products/offers backend client
func NewCatalogService(params ClientParams) service.CatalogService {
	return &catalogService{params.client(ServiceCatalog, func(c *config.ServicesConfig) string { return c.Productos })}
}

// NewPrescriptionService creates the prescriptions/doctors backend client
func NewPrescriptionService(params ClientParams) service.PrescriptionService {
	return &prescriptionService{params.client(ServicePrescriptions, func(c *config.ServicesConfig) string { return c.Recetas })}
}

// NewAnalyticsService creates the analytics backend client
func NewAnalyticsService(params ClientParams) service.AnalyticsService {
	return &analyticsService{params.client(ServiceAnalytics, func(c *config.ServicesConfig) string { return c.Analitica })}
}

// NewOrchestratorService creates the orchestrator backend client
func NewOrchestratorService(params ClientParams) service.OrchestratorService {
	return &orchestratorService{params.client(ServiceOrchestrator, func(c *config.ServicesConfig) string { return c.Orquestador })}
}

// Module provides the backend clients FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewUsersService,
		NewCatalogService,
		NewPrescriptionService,
		NewAnalyticsService,
		NewOrchestratorService,
	),
)

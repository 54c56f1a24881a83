package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// Analytics reports available on the dashboard.
const (
	ReportDailySales           = "ventas"
	ReportTopProducts          = "top-productos"
	ReportTopUsers             = "top-usuarios"
	ReportProductsWithoutSales = "productos-sin-venta"
)

// AnalyticsUsecase serves the administrator dashboard.
type AnalyticsUsecase interface {
	Report(ctx context.Context, name string) (entity.Report, error)
	Ingest(ctx context.Context, source entity.IngestSource) (entity.Report, error)
}

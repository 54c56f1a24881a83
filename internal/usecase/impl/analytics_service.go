package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	analytics service.AnalyticsService
	logger    *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(analytics service.AnalyticsService, logger *slog.Logger) usecase.AnalyticsUsecase {
	return &analyticsService{
		analytics: analytics,
		logger:    logger,
	}
}

func (srv *analyticsService) Report(ctx context.Context, name string) (entity.Report, error) {
	var fetch func(context.Context) (entity.Report, error)

	switch name {
	case usecase.ReportDailySales:
		fetch = srv.analytics.DailySales
	case usecase.ReportTopProducts:
		fetch = srv.analytics.TopProducts
	case usecase.ReportTopUsers:
		fetch = srv.analytics.TopUsers
	case usecase.ReportProductsWithoutSales:
		fetch = srv.analytics.ProductsWithoutSales
	default:
		return nil, errors.Wrapf(domainerrors.ErrNotFound, "unknown report %q", name)
	}

	report, err := fetch(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch report %s", name)
	}

	return report, nil
}

// Ingest asks the analytics service to pull data from one of the operational databases.
func (srv *analyticsService) Ingest(ctx context.Context, source entity.IngestSource) (entity.Report, error) {
	if !source.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(map[string]string{
			"source": "fuente desconocida " + string(source),
		}))
	}

	result, err := srv.analytics.Ingest(ctx, source)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to ingest from %s", source)
	}

	srv.logger.Info("Analytics ingestion triggered", slog.String("source", string(source)))

	return result, nil
}

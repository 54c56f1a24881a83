package backend

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

type analyticsService struct {
	*client
}

func (s *analyticsService) Echo(ctx context.Context) error {
	return s.echo(ctx, "/api/analitica/echo")
}

func (s *analyticsService) DailySales(ctx context.Context) (entity.Report, error) {
	return s.report(ctx, "/analitica/ventas")
}

func (s *analyticsService) TopProducts(ctx context.Context) (entity.Report, error) {
	return s.report(ctx, "/analitica/top-productos")
}

func (s *analyticsService) TopUsers(ctx context.Context) (entity.Report, error) {
	return s.report(ctx, "/analitica/top-usuarios")
}

func (s *analyticsService) ProductsWithoutSales(ctx context.Context) (entity.Report, error) {
	return s.report(ctx, "/analitica/productos-sin-venta")
}

func (s *analyticsService) Ingest(ctx context.Context, source entity.IngestSource) (entity.Report, error) {
	if !source.IsValid() {
		return nil, errors.Errorf("unsupported ingest source: %s", source)
	}

	var report entity.Report
	if err := s.doJSON(ctx, http.MethodPost, "/analitica/ingesta-"+string(source), nil, nil, &report); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *analyticsService) report(ctx context.Context, path string) (entity.Report, error) {
	var report entity.Report
	if err := s.getJSON(ctx, path, nil, &report); err != nil {
		return nil, err
	}

	return report, nil
}

package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
)

type orchestratorService struct {
	*client
}

func (s *orchestratorService) Echo(ctx context.Context) error {
	return s.echo(ctx, "/api/orchestrator/echo")
}

func (s *orchestratorService) RegisterPurchase(ctx context.Context, purchase entity.OrchestratedPurchase) (json.RawMessage, error) {
	var reply json.RawMessage
	if err := s.doJSON(ctx, http.MethodPost, "/orchestrator/compras", nil, purchase, &reply); err != nil {
		return nil, err
	}

	return reply, nil
}

func (s *orchestratorService) MyDetailedPurchases(ctx context.Context) (json.RawMessage, error) {
	var reply json.RawMessage
	if err := s.getJSON(ctx, "/orchestrator/compras/me", nil, &reply); err != nil {
		return nil, err
	}

	return reply, nil
}

func (s *orchestratorService) ValidatePrescription(ctx context.Context, id string) (json.RawMessage, error) {
	var reply json.RawMessage
	if err := s.doJSON(ctx, http.MethodPut, "/orchestrator/recetas/validar/"+url.PathEscape(id), nil, nil, &reply); err != nil {
		return nil, err
	}

	return reply, nil
}

package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	users        service.UsersService
	orchestrator service.OrchestratorService
	session      usecase.SessionUsecase
	logger       *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(
	users service.UsersService,
	orchestrator service.OrchestratorService,
	session usecase.SessionUsecase,
	logger *slog.Logger,
) usecase.PurchaseUsecase {
	return &purchaseService{
		users:        users,
		orchestrator: orchestrator,
		session:      session,
		logger:       logger,
	}
}

// MyPurchases returns the caller's purchases with product details resolved by the orchestrator.
func (srv *purchaseService) MyPurchases(ctx context.Context) (json.RawMessage, error) {
	if !srv.session.IsAuthenticated(ctx) {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	purchases, err := srv.orchestrator.MyDetailedPurchases(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list my purchases")
	}

	return purchases, nil
}

func (srv *purchaseService) AllPurchases(ctx context.Context) ([]entity.Purchase, error) {
	purchases, err := srv.users.ListPurchases(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return purchases, nil
}

func (srv *purchaseService) ListUsers(ctx context.Context) (json.RawMessage, error) {
	users, err := srv.users.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

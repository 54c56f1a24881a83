package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutUsecase places the active cart as an order through the orchestrator.
type CheckoutUsecase interface {
	Checkout(ctx context.Context) (*entity.CheckoutReceipt, error)
}

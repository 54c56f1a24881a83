package usecase

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
)

// PurchaseUsecase reads purchase history.
type PurchaseUsecase interface {
	// MyPurchases returns the signed-in customer's purchases with product detail.
	MyPurchases(ctx context.Context) (json.RawMessage, error)
	AllPurchases(ctx context.Context) ([]entity.Purchase, error)
	ListUsers(ctx context.Context) (json.RawMessage, error)
}

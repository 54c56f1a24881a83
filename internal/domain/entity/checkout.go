package entity

import (
	"encoding/json"
	"time"
)

// OrchestratedPurchase is the payload the orchestrator expects at checkout.
type OrchestratedPurchase struct {
	UserID     string  `json:"usuarioId"`
	ProductIDs []int64 `json:"productos"`
	Quantities []int   `json:"cantidades"`
}

// NewOrchestratedPurchase reads the checkout payload out of a cart.
func NewOrchestratedPurchase(subjectID string, cart Cart) OrchestratedPurchase {
	return OrchestratedPurchase{
		UserID:     subjectID,
		ProductIDs: cart.ProductIDs(),
		Quantities: cart.Quantities(),
	}
}

// CheckoutReceipt is what the storefront shows after a confirmed purchase.
type CheckoutReceipt struct {
	Total      float64         `json:"total"`
	TotalItems int             `json:"totalItems"`
	PlacedAt   time.Time       `json:"placedAt"`
	Lines      []CartLine      `json:"lines"`
	Upstream   json.RawMessage `json:"upstream,omitempty"`
}

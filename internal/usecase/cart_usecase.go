package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase is the cart of the current owner, persisted per owner key and
// kept in sync with other handles on the same store.
type CartUsecase interface {
	Items() []entity.CartLine
	TotalItems() int
	Owner() string
	Snapshot() entity.Cart

	// AddToCart increments an existing line or appends a new one.
	AddToCart(ctx context.Context, line entity.CartLine)
	RemoveFromCart(ctx context.Context, productID int64)
	// UpdateQuantity sets an absolute quantity; quantity <= 0 removes the line.
	UpdateQuantity(ctx context.Context, productID int64, quantity int)
	ClearCart(ctx context.Context)

	// SwitchOwner moves the cart to subjectID ("" for anonymous) and reports what happened.
	SwitchOwner(ctx context.Context, subjectID string) entity.CartTransition

	// Close stops listening for changes from other handles.
	Close() error
}

package repository

import (
	"context"

	"github.com/caffeinepub/amala-organics-1/internal/domain"
)

// CartRepository defines the interface for cart persistence operations.
type CartRepository interface {
	// Get retrieves a cart by its session ID.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the session.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes a cart from the store by session ID.
	Delete(ctx context.Context, sessionID string) error
}

// CheckoutRepository defines the interface for checkout session persistence.
type CheckoutRepository interface {
	// Get retrieves a checkout session by its ID.
	Get(ctx context.Context, id string) (*domain.CheckoutSession, error)

	// Save persists a checkout session, overwriting any existing one.
	Save(ctx context.Context, session *domain.CheckoutSession) error

	// Delete removes a checkout session from the store by ID.
	Delete(ctx context.Context, id string) error
}

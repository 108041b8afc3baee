// Package memory provides in-process repository implementations. It is the
// default store for a single-instance deployment; switch to the redis
// backend when running more than one replica.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/caffeinepub/amala-organics-1/internal/domain"
	apperrors "github.com/caffeinepub/amala-organics-1/pkg/errors"
)

type cartEntry struct {
	cart      *domain.Cart
	expiresAt time.Time
}

// CartRepository implements repository.CartRepository with an in-memory map.
// Entries expire lazily: an expired cart is dropped on the next Get or Save.
type CartRepository struct {
	mu      sync.RWMutex
	entries map[string]cartEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCartRepository creates a new in-memory cart repository.
func NewCartRepository(ttl time.Duration) *CartRepository {
	return &CartRepository{
		entries: make(map[string]cartEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get retrieves a cart by session ID.
func (r *CartRepository) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.RLock()
	entry, ok := r.entries[sessionID]
	r.mu.RUnlock()

	if !ok || r.now().After(entry.expiresAt) {
		if ok {
			r.mu.Lock()
			delete(r.entries, sessionID)
			r.mu.Unlock()
		}
		return nil, apperrors.NotFound("cart", sessionID)
	}

	return cloneCart(entry.cart), nil
}

// Save persists a cart, resetting its TTL.
func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[cart.SessionID] = cartEntry{
		cart:      cloneCart(cart),
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

// Delete removes a cart by session ID. Deleting a missing cart is a no-op.
func (r *CartRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, sessionID)
	return nil
}

// cloneCart copies a cart so callers cannot mutate stored state.
func cloneCart(c *domain.Cart) *domain.Cart {
	out := *c
	out.Lines = make([]domain.Line, len(c.Lines))
	copy(out.Lines, c.Lines)
	return &out
}

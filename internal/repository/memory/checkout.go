package memory

import (
	"context"
	"sync"
	"time"

	"github.com/caffeinepub/amala-organics-1/internal/domain"
	apperrors "github.com/caffeinepub/amala-organics-1/pkg/errors"
)

type checkoutEntry struct {
	session   *domain.CheckoutSession
	expiresAt time.Time
}

// CheckoutRepository implements repository.CheckoutRepository with an
// in-memory map. Expired sessions are dropped lazily on Get.
type CheckoutRepository struct {
	mu      sync.RWMutex
	entries map[string]checkoutEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCheckoutRepository creates a new in-memory checkout repository.
func NewCheckoutRepository(ttl time.Duration) *CheckoutRepository {
	return &CheckoutRepository{
		entries: make(map[string]checkoutEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get retrieves a checkout session by ID.
func (r *CheckoutRepository) Get(_ context.Context, id string) (*domain.CheckoutSession, error) {
	r.mu.RLock()
	entry, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok || r.now().After(entry.expiresAt) {
		if ok {
			r.mu.Lock()
			delete(r.entries, id)
			r.mu.Unlock()
		}
		return nil, apperrors.NotFound("checkout session", id)
	}

	return cloneSession(entry.session), nil
}

// Save persists a checkout session, resetting its TTL.
func (r *CheckoutRepository) Save(_ context.Context, session *domain.CheckoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[session.ID] = checkoutEntry{
		session:   cloneSession(session),
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

// Delete removes a checkout session by ID. Missing sessions are a no-op.
func (r *CheckoutRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, id)
	return nil
}

func cloneSession(s *domain.CheckoutSession) *domain.CheckoutSession {
	out := *s
	out.Lines = make([]domain.Line, len(s.Lines))
	copy(out.Lines, s.Lines)
	return &out
}

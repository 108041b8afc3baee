package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/caffeinepub/amala-organics-1/internal/domain"
	apperrors "github.com/caffeinepub/amala-organics-1/pkg/errors"
)

const checkoutKeyPrefix = "checkout:"

// CheckoutRepository implements repository.CheckoutRepository using Redis.
// Checkout sessions are short-lived; Redis key expiry handles abandonment.
type CheckoutRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCheckoutRepository creates a new Redis-backed checkout repository.
func NewCheckoutRepository(client *redis.Client, ttl time.Duration) *CheckoutRepository {
	return &CheckoutRepository{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a checkout session by ID from Redis.
func (r *CheckoutRepository) Get(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	key := checkoutKeyPrefix + id

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("checkout session", id)
		}
		return nil, fmt.Errorf("redis get checkout session: %w", err)
	}

	var session domain.CheckoutSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal checkout session: %w", err)
	}

	return &session, nil
}

// Save persists a checkout session to Redis with the configured TTL.
func (r *CheckoutRepository) Save(ctx context.Context, session *domain.CheckoutSession) error {
	key := checkoutKeyPrefix + session.ID

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal checkout session: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set checkout session: %w", err)
	}

	return nil
}

// Delete removes a checkout session from Redis by ID.
func (r *CheckoutRepository) Delete(ctx context.Context, id string) error {
	key := checkoutKeyPrefix + id

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del checkout session: %w", err)
	}

	return nil
}

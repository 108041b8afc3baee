package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/amala-organics-1/internal/domain"
	apperrors "github.com/caffeinepub/amala-organics-1/pkg/errors"
)

func setupCheckoutRepo(t *testing.T) (*CheckoutRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := NewCheckoutRepository(client, 30*time.Minute)
	return repo, mr
}

func sampleSession() *domain.CheckoutSession {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.CheckoutSession{
		ID:        "chk-001",
		SessionID: "sess-001",
		Step:      domain.StepPaymentPending,
		Customer: domain.CustomerDetails{
			Name:    "Priya",
			Phone:   "9876543210",
			Address: "12 Temple Street, Madurai",
		},
		Lines: []domain.Line{
			{ProductID: 1, Name: "Multani Mitti Natural Soap", Price: 80, Quantity: 2},
		},
		AmountDue: 160,
		ItemCount: 2,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(30 * time.Minute),
	}
}

func TestCheckoutRepository_SaveAndGet(t *testing.T) {
	repo, mr := setupCheckoutRepo(t)

	session := sampleSession()
	require.NoError(t, repo.Save(context.Background(), session))

	ttl := mr.TTL("checkout:" + session.ID)
	assert.Equal(t, 30*time.Minute, ttl)

	got, err := repo.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepPaymentPending, got.Step)
	assert.Equal(t, "Priya", got.Customer.Name)
	assert.Equal(t, int64(160), got.AmountDue)
}

func TestCheckoutRepository_Get_NotFound(t *testing.T) {
	repo, _ := setupCheckoutRepo(t)

	got, err := repo.Get(context.Background(), "missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCheckoutRepository_Delete(t *testing.T) {
	repo, _ := setupCheckoutRepo(t)

	session := sampleSession()
	require.NoError(t, repo.Save(context.Background(), session))
	require.NoError(t, repo.Delete(context.Background(), session.ID))

	_, err := repo.Get(context.Background(), session.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCheckoutRepository_Get_Expired(t *testing.T) {
	repo, mr := setupCheckoutRepo(t)

	session := sampleSession()
	require.NoError(t, repo.Save(context.Background(), session))

	mr.FastForward(31 * time.Minute)

	_, err := repo.Get(context.Background(), session.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/amala-organics-1/internal/domain"
	apperrors "github.com/caffeinepub/amala-organics-1/pkg/errors"
)

func sampleSession() *domain.CheckoutSession {
	now := time.Now().UTC()
	return &domain.CheckoutSession{
		ID:        "chk-001",
		SessionID: "sess-001",
		Step:      domain.StepDetails,
		Customer: domain.CustomerDetails{
			Name:    "Priya",
			Phone:   "9876543210",
			Address: "12 Temple Street, Madurai",
		},
		Lines: []domain.Line{
			{ProductID: 3, Name: "Goat Milk Natural Soap", Price: 80, Quantity: 1},
		},
		AmountDue: 80,
		ItemCount: 1,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(30 * time.Minute),
	}
}

func TestCheckoutRepository_SaveAndGet(t *testing.T) {
	repo := NewCheckoutRepository(30 * time.Minute)

	session := sampleSession()
	require.NoError(t, repo.Save(context.Background(), session))

	got, err := repo.Get(context.Background(), "chk-001")
	require.NoError(t, err)
	assert.Equal(t, domain.StepDetails, got.Step)
	assert.Equal(t, int64(80), got.AmountDue)
}

func TestCheckoutRepository_Get_NotFound(t *testing.T) {
	repo := NewCheckoutRepository(30 * time.Minute)

	got, err := repo.Get(context.Background(), "missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCheckoutRepository_Delete(t *testing.T) {
	repo := NewCheckoutRepository(30 * time.Minute)
	require.NoError(t, repo.Save(context.Background(), sampleSession()))

	require.NoError(t, repo.Delete(context.Background(), "chk-001"))

	_, err := repo.Get(context.Background(), "chk-001")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCheckoutRepository_Get_Expired(t *testing.T) {
	repo := NewCheckoutRepository(30 * time.Minute)
	require.NoError(t, repo.Save(context.Background(), sampleSession()))

	base := time.Now()
	repo.now = func() time.Time { return base.Add(time.Hour) }

	_, err := repo.Get(context.Background(), "chk-001")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

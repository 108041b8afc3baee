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

func sampleCart() *domain.Cart {
	cart := domain.NewCart("cart-001", "sess-001")
	cart.Lines = []domain.Line{
		{ProductID: 1, Name: "Multani Mitti Natural Soap", Price: 80, Quantity: 2},
	}
	return cart
}

func TestCartRepository_SaveAndGet(t *testing.T) {
	repo := NewCartRepository(time.Hour)

	cart := sampleCart()
	require.NoError(t, repo.Save(context.Background(), cart))

	got, err := repo.Get(context.Background(), "sess-001")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, got.ID)
	assert.Equal(t, cart.Lines, got.Lines)
}

func TestCartRepository_Get_NotFound(t *testing.T) {
	repo := NewCartRepository(time.Hour)

	got, err := repo.Get(context.Background(), "missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRepository_Get_ReturnsCopy(t *testing.T) {
	repo := NewCartRepository(time.Hour)
	require.NoError(t, repo.Save(context.Background(), sampleCart()))

	first, err := repo.Get(context.Background(), "sess-001")
	require.NoError(t, err)
	first.Lines[0].Quantity = 99

	second, err := repo.Get(context.Background(), "sess-001")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Lines[0].Quantity)
}

func TestCartRepository_Delete(t *testing.T) {
	repo := NewCartRepository(time.Hour)
	require.NoError(t, repo.Save(context.Background(), sampleCart()))

	require.NoError(t, repo.Delete(context.Background(), "sess-001"))

	_, err := repo.Get(context.Background(), "sess-001")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRepository_Delete_Missing(t *testing.T) {
	repo := NewCartRepository(time.Hour)

	assert.NoError(t, repo.Delete(context.Background(), "missing"))
}

func TestCartRepository_Get_Expired(t *testing.T) {
	repo := NewCartRepository(time.Hour)
	require.NoError(t, repo.Save(context.Background(), sampleCart()))

	base := time.Now()
	repo.now = func() time.Time { return base.Add(2 * time.Hour) }

	_, err := repo.Get(context.Background(), "sess-001")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/amala-organics-1/pkg/errors"
)

func TestAll(t *testing.T) {
	got := All()

	require.Len(t, got, 8)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "Multani Mitti Natural Soap", got[0].Name)
	assert.Equal(t, "Charcoal & Sage Natural Soap", got[7].Name)

	for _, p := range got {
		assert.Equal(t, int64(80), p.Price)
		assert.NotEmpty(t, p.ImageURL)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].Name = "mutated"

	second := All()

	assert.Equal(t, "Multani Mitti Natural Soap", second[0].Name)
}

func TestByID(t *testing.T) {
	p, err := ByID(3)

	require.NoError(t, err)
	assert.Equal(t, "Goat Milk Natural Soap", p.Name)
	assert.Equal(t, int64(80), p.Price)
}

func TestByID_NotFound(t *testing.T) {
	_, err := ByID(99)

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

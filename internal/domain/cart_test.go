package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_Total(t *testing.T) {
	cart := NewCart("cart-1", "sess-1")
	cart.Lines = []Line{
		{ProductID: 1, Name: "Multani Mitti Natural Soap", Price: 80, Quantity: 2},
		{ProductID: 3, Name: "Goat Milk Natural Soap", Price: 80, Quantity: 1},
	}

	assert.Equal(t, int64(240), cart.Total())
	assert.Equal(t, 3, cart.ItemCount())
}

func TestCart_TotalEmpty(t *testing.T) {
	cart := NewCart("cart-1", "sess-1")

	assert.Equal(t, int64(0), cart.Total())
	assert.Equal(t, 0, cart.ItemCount())
	assert.True(t, cart.IsEmpty())
}

func TestCart_FindLineIndex(t *testing.T) {
	cart := NewCart("cart-1", "sess-1")
	cart.Lines = []Line{
		{ProductID: 2, Quantity: 1},
		{ProductID: 5, Quantity: 4},
	}

	assert.Equal(t, 0, cart.FindLineIndex(2))
	assert.Equal(t, 1, cart.FindLineIndex(5))
	assert.Equal(t, -1, cart.FindLineIndex(9))
}

func TestLine_Subtotal(t *testing.T) {
	l := Line{Price: 80, Quantity: 3}

	assert.Equal(t, int64(240), l.Subtotal())
}

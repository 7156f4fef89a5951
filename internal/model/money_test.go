package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRLKeepsDotSeparator(t *testing.T) {
	assert.Equal(t, "R$ 89.90", FormatBRL(89.9))
	assert.Equal(t, "R$ 12.00", FormatBRL(12))
	assert.Equal(t, "R$ 0.00", FormatBRL(0))
}

func TestCartTotalRecomputed(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ID: "1", Price: 45.90, Quantity: 2},
		{ID: "3", Price: 12.00, Quantity: 1},
	}}
	assert.InDelta(t, 103.80, cart.Total(), 0.001)

	cart.Items[0].Quantity = 1
	assert.InDelta(t, 57.90, cart.Total(), 0.001)
}

func TestProductLowStock(t *testing.T) {
	p := Product{Stock: 15, MinStock: 20}
	assert.True(t, p.LowStock())

	p.Stock = 20
	assert.False(t, p.LowStock(), "equal stock is not low stock; the bound is strict")
}

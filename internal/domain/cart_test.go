package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(itemID uint, price string, qty int) CartLine {
	return CartLine{
		ItemID:    itemID,
		SKU:       "sku",
		Name:      "item",
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestCart_WithLine(t *testing.T) {
	t.Run("appends a new line", func(t *testing.T) {
		cart := Cart{}.WithLine(line(1, "9.99", 2))

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.QuantityOf(1))
	})

	t.Run("merges quantities for an already carted item", func(t *testing.T) {
		cart := Cart{}.WithLine(line(1, "9.99", 2)).WithLine(line(1, "9.99", 3))

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 5, cart.QuantityOf(1))
	})

	t.Run("does not mutate the original cart", func(t *testing.T) {
		original := Cart{}.WithLine(line(1, "9.99", 2))
		_ = original.WithLine(line(1, "9.99", 3))
		_ = original.WithLine(line(2, "1.00", 1))

		assert.Len(t, original.Lines, 1)
		assert.Equal(t, 2, original.QuantityOf(1))
	})
}

func TestCart_WithoutItem(t *testing.T) {
	cart := Cart{}.WithLine(line(1, "9.99", 2)).WithLine(line(2, "1.50", 1))

	t.Run("removes the whole line", func(t *testing.T) {
		got := cart.WithoutItem(1)

		assert.Len(t, got.Lines, 1)
		assert.Equal(t, 0, got.QuantityOf(1))
		assert.Equal(t, 1, got.QuantityOf(2))
	})

	t.Run("removing an absent item is a no-op", func(t *testing.T) {
		got := cart.WithoutItem(42)

		assert.Equal(t, cart, got)
	})
}

func TestCart_Subtotal(t *testing.T) {
	tests := []struct {
		name  string
		cart  Cart
		total string
	}{
		{
			name:  "empty cart",
			cart:  Cart{},
			total: "0",
		},
		{
			name:  "single line",
			cart:  Cart{}.WithLine(line(1, "9.99", 3)),
			total: "29.97",
		},
		{
			name:  "multiple lines",
			cart:  Cart{}.WithLine(line(1, "9.99", 3)).WithLine(line(2, "0.05", 2)),
			total: "30.07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.cart.Subtotal().Equal(decimal.RequireFromString(tt.total)),
				"got %v, want %v", tt.cart.Subtotal(), tt.total)
		})
	}
}

func TestCart_IsEmpty(t *testing.T) {
	assert.True(t, Cart{}.IsEmpty())
	assert.False(t, Cart{}.WithLine(line(1, "1.00", 1)).IsEmpty())
}

package sessioncart

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vietanh2810/storefront-api/internal/domain"
)

func TestStore(t *testing.T) {
	store := NewStore()

	t.Run("get before put returns an empty cart", func(t *testing.T) {
		assert.True(t, store.Get(1).IsEmpty())
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		cart := domain.Cart{}.WithLine(domain.CartLine{
			ItemID:    7,
			UnitPrice: decimal.RequireFromString("2.50"),
			Quantity:  3,
		})
		store.Put(1, cart)

		assert.Equal(t, cart, store.Get(1))
	})

	t.Run("carts are scoped per admin", func(t *testing.T) {
		assert.True(t, store.Get(2).IsEmpty())
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		store.Clear(1)

		assert.True(t, store.Get(1).IsEmpty())
	})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(adminID uint) {
			defer wg.Done()

			cart := store.Get(adminID).WithLine(domain.CartLine{
				ItemID:    1,
				UnitPrice: decimal.NewFromInt(1),
				Quantity:  1,
			})
			store.Put(adminID, cart)
			store.Get(adminID)
			store.Clear(adminID)
		}(uint(i % 5))
	}
	wg.Wait()
}

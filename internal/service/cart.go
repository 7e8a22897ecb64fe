package service

import (
	"context"
	"errors"

	"github.com/vietanh2810/storefront-api/internal/domain"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

type CartItemRepository interface {
	FindByIDForAdmin(ctx context.Context, itemID, adminID uint) (domain.Item, error)
	CurrentStock(ctx context.Context, itemID uint) (int, error)
}

// CartService mutates session carts as values: the caller passes the
// current cart in and stores the returned one. There is no reservation
// against other carts, only a check against the current ledger balance.
type CartService struct {
	itemRepo CartItemRepository
}

func NewCartService(itemRepo CartItemRepository) *CartService {
	return &CartService{
		itemRepo: itemRepo,
	}
}

// Add appends a line with a price snapshot, or merges the quantity into
// an existing line for the same item. The requested quantity plus what
// is already carted must not exceed the current stock.
func (s *CartService) Add(ctx context.Context, cart domain.Cart, adminID, itemID uint, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return cart, ErrInvalidQuantity
	}

	item, err := s.itemRepo.FindByIDForAdmin(ctx, itemID, adminID)
	if err != nil {
		return cart, err
	}

	available, err := s.itemRepo.CurrentStock(ctx, itemID)
	if err != nil {
		return cart, err
	}

	if cart.QuantityOf(itemID)+quantity > available {
		return cart, &InsufficientStockError{ItemName: item.Name, Available: available}
	}

	return cart.WithLine(domain.CartLine{
		ItemID:    item.ID,
		SKU:       item.SKU,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  quantity,
	}), nil
}

// Remove drops the line for the item; removing an absent item is not an error.
func (s *CartService) Remove(cart domain.Cart, itemID uint) domain.Cart {
	return cart.WithoutItem(itemID)
}

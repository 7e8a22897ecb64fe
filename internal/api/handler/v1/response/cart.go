package response

import (
	"github.com/shopspring/decimal"

	"github.com/vietanh2810/storefront-api/internal/domain"
)

type CartResponse struct {
	Cart     domain.Cart     `json:"cart"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func NewCartResponse(cart domain.Cart) CartResponse {
	return CartResponse{
		Cart:     cart,
		Subtotal: cart.Subtotal().Round(2),
	}
}

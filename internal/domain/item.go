package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Item is a catalog entry. The SKU is unique per admin,
// compared case- and whitespace-insensitively.
type Item struct {
	ID          uint            `json:"id"`
	AdminID     uint            `json:"admin_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NormalizeSKU returns the key used for per-admin SKU uniqueness.
func NormalizeSKU(sku string) string {
	return strings.ToLower(strings.TrimSpace(sku))
}

// StockDelta is one immutable ledger entry. Current stock of an item
// is the sum of all its deltas.
type StockDelta struct {
	ID        uint      `json:"id"`
	ItemID    uint      `json:"item_id"`
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

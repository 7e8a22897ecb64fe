package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a completed sale. Totals are computed once at creation
// and never recomputed; the record is immutable.
type Invoice struct {
	ID            uint            `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	AdminID       uint            `json:"admin_id"`
	CustomerID    uint            `json:"customer_id"`
	Customer      Customer        `json:"customer,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaymentMode   string          `json:"payment_mode"`
	Lines         []InvoiceLine   `json:"lines,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// InvoiceLine is one sold item within an invoice. UnitPrice is the
// price at the time of sale.
type InvoiceLine struct {
	ID        uint            `json:"id"`
	InvoiceID uint            `json:"invoice_id"`
	ItemID    uint            `json:"item_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

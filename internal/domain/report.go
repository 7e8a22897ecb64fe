package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRow is one invoice in the sales report.
type SalesRow struct {
	InvoiceID     uint            `json:"invoice_id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	Mobile        string          `json:"mobile"`
	PaymentMode   string          `json:"payment_mode"`
	Quantity      int             `json:"quantity"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SalesReport is a read-only aggregation of invoices, optionally
// filtered by calendar date and payment mode.
type SalesReport struct {
	Rows          []SalesRow      `json:"rows"`
	TotalQuantity int             `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

package dao

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Invoice struct {
	ID uint `gorm:"primaryKey"`

	InvoiceNumber string `gorm:"unique;not null"`
	AdminID       uint   `gorm:"index;not null"`
	CustomerID    uint   `gorm:"not null"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Tax         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMode string          `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type InvoiceItem struct {
	ID        uint `gorm:"primaryKey"`
	InvoiceID uint `gorm:"index;not null"`
	ItemID    uint `gorm:"not null"`

	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	LineTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	CreatedAt time.Time
}

// CheckoutLine is one cart line handed to the checkout transaction.
// Prices are the cart snapshots, not live catalog reads.
type CheckoutLine struct {
	ItemID    uint
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// CheckoutOrder carries everything the checkout transaction persists.
// Totals are computed by the service before the transaction starts.
type CheckoutOrder struct {
	AdminID      uint
	Mobile       string
	CustomerName string
	PaymentMode  string
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Lines        []CheckoutLine
}

// InvoiceLineRow is an invoice line joined with its catalog item.
type InvoiceLineRow struct {
	ID        uint
	InvoiceID uint
	ItemID    uint
	SKU       string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// InvoiceRow is an invoice header joined with its customer.
type InvoiceRow struct {
	Invoice
	CustomerName   string
	CustomerMobile string
}

// SalesReportRow is one invoice in the aggregated sales report.
type SalesReportRow struct {
	InvoiceID     uint
	InvoiceNumber string
	CustomerName  string
	Mobile        string
	PaymentMode   string
	Quantity      int
	Amount        decimal.Decimal
	CreatedAt     time.Time
}

type InvoiceDAO struct {
	db *gorm.DB
}

func NewInvoiceDAO(db *gorm.DB) *InvoiceDAO {
	return &InvoiceDAO{
		db: db,
	}
}

// CreateInvoice runs the whole checkout as one transaction: it re-checks
// stock per line while holding the item row locks, resolves the customer,
// persists the invoice header and lines, and posts the negative stock
// deltas. Any failure rolls everything back.
//
// Item rows are locked in ascending id order so two concurrent checkouts
// over overlapping items cannot deadlock, and a delta for an item is only
// ever appended by the holder of that item's lock. This closes the
// check-then-sell race: a second checkout blocks on the lock and re-reads
// the ledger after the first one committed.
func (d *InvoiceDAO) CreateInvoice(ctx context.Context, order CheckoutOrder) (Invoice, error) {
	var created Invoice

	lines := make([]CheckoutLine, len(order.Lines))
	copy(lines, order.Lines)
	sort.Slice(lines, func(i, j int) bool { return lines[i].ItemID < lines[j].ItemID })

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			var item Item
			result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&item, "id = ? AND admin_id = ?", line.ItemID, order.AdminID)
			if result.Error != nil {
				if errors.Is(result.Error, gorm.ErrRecordNotFound) {
					return ErrItemNotFound
				}

				return result.Error
			}

			available, err := currentStock(tx, line.ItemID)
			if err != nil {
				return err
			}
			if available < line.Quantity {
				return &InsufficientStockError{ItemName: item.Name, Available: available}
			}
		}

		customer, err := findOrCreateCustomer(tx, order.Mobile, order.CustomerName)
		if err != nil {
			return err
		}

		// The invoice number is derived from the row id, so claim the id
		// from the sequence first and insert header and number together.
		var nextID int64
		err = tx.Raw("SELECT nextval(pg_get_serial_sequence('invoices', 'id'))").Scan(&nextID).Error
		if err != nil {
			return err
		}

		created = Invoice{
			ID:            uint(nextID),
			InvoiceNumber: fmt.Sprintf("INV-%08d", nextID),
			AdminID:       order.AdminID,
			CustomerID:    customer.ID,
			Subtotal:      order.Subtotal,
			Tax:           order.Tax,
			Total:         order.Total,
			PaymentMode:   order.PaymentMode,
		}
		if err = tx.Create(&created).Error; err != nil {
			return err
		}

		for _, line := range order.Lines {
			invoiceItem := InvoiceItem{
				InvoiceID: created.ID,
				ItemID:    line.ItemID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				LineTotal: line.LineTotal,
			}
			if err = tx.Create(&invoiceItem).Error; err != nil {
				return err
			}

			delta := StockDelta{
				ItemID:        line.ItemID,
				DeltaQuantity: -line.Quantity,
				Reason:        "Sold - " + created.InvoiceNumber,
			}
			if err = tx.Create(&delta).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Invoice{}, err
	}

	return created, nil
}

func (d *InvoiceDAO) FindByIDForAdmin(ctx context.Context, invoiceID, adminID uint) (Invoice, error) {
	var invoice Invoice

	result := d.db.WithContext(ctx).First(&invoice, "id = ? AND admin_id = ?", invoiceID, adminID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Invoice{}, ErrInvoiceNotFound
		}

		return Invoice{}, result.Error
	}

	return invoice, nil
}

func (d *InvoiceDAO) FindLines(ctx context.Context, invoiceID uint) ([]InvoiceLineRow, error) {
	var lines []InvoiceLineRow

	err := d.db.WithContext(ctx).
		Table("invoice_items AS ii").
		Select("ii.id, ii.invoice_id, ii.item_id, it.sku, it.name, ii.quantity, ii.unit_price, ii.line_total").
		Joins("JOIN inventory_items it ON it.id = ii.item_id").
		Where("ii.invoice_id = ?", invoiceID).
		Order("ii.id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// ListByAdmin returns the admin's invoices newest-first, each joined
// with its customer.
func (d *InvoiceDAO) ListByAdmin(ctx context.Context, adminID uint) ([]InvoiceRow, error) {
	var rows []InvoiceRow

	err := d.db.WithContext(ctx).
		Table("invoices AS i").
		Select("i.*, c.name AS customer_name, c.mobile AS customer_mobile").
		Joins("JOIN customers c ON c.id = i.customer_id").
		Where("i.admin_id = ?", adminID).
		Order("i.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// AggregateSales groups the admin's invoices, optionally filtered by
// calendar date and payment mode, returning per-invoice quantity and
// amount sums, newest-first.
func (d *InvoiceDAO) AggregateSales(ctx context.Context, adminID uint, date *time.Time, paymentMode string) ([]SalesReportRow, error) {
	var rows []SalesReportRow

	query := d.db.WithContext(ctx).
		Table("invoices AS i").
		Select(`i.id AS invoice_id, i.invoice_number, c.name AS customer_name, c.mobile,
			i.payment_mode, COALESCE(SUM(ii.quantity), 0) AS quantity, i.total AS amount, i.created_at`).
		Joins("JOIN customers c ON c.id = i.customer_id").
		Joins("LEFT JOIN invoice_items ii ON ii.invoice_id = i.id").
		Where("i.admin_id = ?", adminID)

	if date != nil {
		query = query.Where("i.created_at::date = ?::date", date.Format("2006-01-02"))
	}
	if paymentMode != "" {
		query = query.Where("i.payment_mode = ?", paymentMode)
	}

	err := query.
		Group("i.id, i.invoice_number, c.name, c.mobile, i.payment_mode, i.total, i.created_at").
		Order("i.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

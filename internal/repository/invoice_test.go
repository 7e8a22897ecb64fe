package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/storefront-api/internal/repository/dao"
)

// fakeInvoiceDAO holds report rows and filters them the way the real
// query does: by admin, calendar date and payment mode.
type fakeInvoiceDAO struct {
	adminID uint
	rows    []dao.SalesReportRow
}

func (f *fakeInvoiceDAO) CreateInvoice(_ context.Context, _ dao.CheckoutOrder) (dao.Invoice, error) {
	return dao.Invoice{}, nil
}

func (f *fakeInvoiceDAO) FindByIDForAdmin(_ context.Context, _, _ uint) (dao.Invoice, error) {
	return dao.Invoice{}, ErrInvoiceNotFound
}

func (f *fakeInvoiceDAO) FindLines(_ context.Context, _ uint) ([]dao.InvoiceLineRow, error) {
	return nil, nil
}

func (f *fakeInvoiceDAO) ListByAdmin(_ context.Context, _ uint) ([]dao.InvoiceRow, error) {
	return nil, nil
}

func (f *fakeInvoiceDAO) AggregateSales(_ context.Context, adminID uint, date *time.Time, paymentMode string) ([]dao.SalesReportRow, error) {
	if adminID != f.adminID {
		return nil, nil
	}

	var out []dao.SalesReportRow
	for _, row := range f.rows {
		if date != nil && row.CreatedAt.Format("2006-01-02") != date.Format("2006-01-02") {
			continue
		}
		if paymentMode != "" && row.PaymentMode != paymentMode {
			continue
		}
		out = append(out, row)
	}

	return out, nil
}

func TestInvoiceRepository_AggregateSales_Totals(t *testing.T) {
	today := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	fake := &fakeInvoiceDAO{
		adminID: 1,
		rows: []dao.SalesReportRow{
			{InvoiceID: 1, InvoiceNumber: "INV-00000001", PaymentMode: "Cash", Quantity: 3, Amount: decimal.RequireFromString("34.47"), CreatedAt: today},
			{InvoiceID: 2, InvoiceNumber: "INV-00000002", PaymentMode: "Cash", Quantity: 2, Amount: decimal.RequireFromString("9.00"), CreatedAt: today},
			{InvoiceID: 3, InvoiceNumber: "INV-00000003", PaymentMode: "Card", Quantity: 1, Amount: decimal.RequireFromString("4.50"), CreatedAt: yesterday},
		},
	}
	repo := NewInvoiceRepository(fake, nil)
	ctx := context.Background()

	t.Run("totals sum all rows when unfiltered", func(t *testing.T) {
		report, err := repo.AggregateSales(ctx, 1, nil, "")

		require.NoError(t, err)
		require.Len(t, report.Rows, 3)
		assert.Equal(t, 6, report.TotalQuantity)
		assert.True(t, report.TotalAmount.Equal(decimal.RequireFromString("47.97")), "total %v", report.TotalAmount)
	})

	t.Run("totals follow the date filter", func(t *testing.T) {
		report, err := repo.AggregateSales(ctx, 1, &today, "")

		require.NoError(t, err)
		require.Len(t, report.Rows, 2)
		assert.Equal(t, 5, report.TotalQuantity)
		assert.True(t, report.TotalAmount.Equal(decimal.RequireFromString("43.47")), "total %v", report.TotalAmount)
	})

	t.Run("totals follow the payment mode filter", func(t *testing.T) {
		report, err := repo.AggregateSales(ctx, 1, nil, "Card")

		require.NoError(t, err)
		require.Len(t, report.Rows, 1)
		assert.Equal(t, 1, report.TotalQuantity)
		assert.True(t, report.TotalAmount.Equal(decimal.RequireFromString("4.50")), "total %v", report.TotalAmount)
	})

	t.Run("no matching rows means zero totals", func(t *testing.T) {
		report, err := repo.AggregateSales(ctx, 2, nil, "")

		require.NoError(t, err)
		assert.Empty(t, report.Rows)
		assert.Zero(t, report.TotalQuantity)
		assert.True(t, report.TotalAmount.IsZero())
	})
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/repository"
)

type fakeInvoiceRepo struct {
	createErr error
	lastOrder repository.CheckoutOrder

	invoices map[uint]domain.Invoice
}

func (f *fakeInvoiceRepo) CreateFromCart(_ context.Context, order repository.CheckoutOrder) (domain.Invoice, error) {
	f.lastOrder = order
	if f.createErr != nil {
		return domain.Invoice{}, f.createErr
	}

	return domain.Invoice{
		ID:            1,
		InvoiceNumber: "INV-00000001",
		AdminID:       order.AdminID,
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		Total:         order.Total,
		PaymentMode:   order.PaymentMode,
	}, nil
}

func (f *fakeInvoiceRepo) FindByIDForAdmin(_ context.Context, invoiceID, adminID uint) (domain.Invoice, error) {
	invoice, ok := f.invoices[invoiceID]
	if !ok || invoice.AdminID != adminID {
		return domain.Invoice{}, repository.ErrInvoiceNotFound
	}

	return invoice, nil
}

func (f *fakeInvoiceRepo) ListByAdmin(_ context.Context, adminID uint) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, invoice := range f.invoices {
		if invoice.AdminID == adminID {
			out = append(out, invoice)
		}
	}

	return out, nil
}

func checkoutCart() domain.Cart {
	return domain.Cart{}.
		WithLine(domain.CartLine{ItemID: 1, SKU: "tee-red-m", Name: "Red Tee (M)", UnitPrice: decimal.RequireFromString("9.99"), Quantity: 3}).
		WithLine(domain.CartLine{ItemID: 2, SKU: "mug-01", Name: "Mug", UnitPrice: decimal.RequireFromString("4.50"), Quantity: 1})
}

func TestCheckoutService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("computes subtotal, tax and total", func(t *testing.T) {
		repo := &fakeInvoiceRepo{}
		svc := NewCheckoutService(repo)

		invoice, err := svc.Checkout(ctx, checkoutCart(), 10, "12345678", "Alex", decimal.RequireFromString("0.1"), "Card")

		require.NoError(t, err)
		// 3*9.99 + 4.50 = 34.47; tax 3.45; total 37.92
		assert.True(t, invoice.Subtotal.Equal(decimal.RequireFromString("34.47")), "subtotal %v", invoice.Subtotal)
		assert.True(t, invoice.Tax.Equal(decimal.RequireFromString("3.45")), "tax %v", invoice.Tax)
		assert.True(t, invoice.Total.Equal(decimal.RequireFromString("37.92")), "total %v", invoice.Total)
		assert.Equal(t, "Card", invoice.PaymentMode)
	})

	t.Run("defaults payment mode to Cash", func(t *testing.T) {
		repo := &fakeInvoiceRepo{}
		svc := NewCheckoutService(repo)

		invoice, err := svc.Checkout(ctx, checkoutCart(), 10, "12345678", "", decimal.Zero, "")

		require.NoError(t, err)
		assert.Equal(t, "Cash", invoice.PaymentMode)
	})

	t.Run("rejects an empty cart before anything else", func(t *testing.T) {
		repo := &fakeInvoiceRepo{}
		svc := NewCheckoutService(repo)

		_, err := svc.Checkout(ctx, domain.Cart{}, 10, "bad", "", decimal.Zero, "")

		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Empty(t, repo.lastOrder.Mobile, "no order should have been attempted")
	})

	t.Run("rejects an invalid mobile", func(t *testing.T) {
		svc := NewCheckoutService(&fakeInvoiceRepo{})

		for _, mobile := range []string{"", "1234567", "123456789", "12a45678"} {
			_, err := svc.Checkout(ctx, checkoutCart(), 10, mobile, "", decimal.Zero, "")
			assert.ErrorIs(t, err, ErrInvalidMobile, "mobile %q", mobile)
		}
	})

	t.Run("rejects a negative tax rate", func(t *testing.T) {
		svc := NewCheckoutService(&fakeInvoiceRepo{})

		_, err := svc.Checkout(ctx, checkoutCart(), 10, "12345678", "", decimal.RequireFromString("-0.1"), "")

		assert.ErrorIs(t, err, ErrInvalidTaxRate)
	})

	t.Run("passes insufficient stock through", func(t *testing.T) {
		repo := &fakeInvoiceRepo{
			createErr: &InsufficientStockError{ItemName: "Red Tee (M)", Available: 1},
		}
		svc := NewCheckoutService(repo)

		_, err := svc.Checkout(ctx, checkoutCart(), 10, "12345678", "", decimal.Zero, "")

		var stockErr *InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 1, stockErr.Available)
	})

	t.Run("passes a vanished item through as not found", func(t *testing.T) {
		repo := &fakeInvoiceRepo{createErr: repository.ErrItemNotFound}
		svc := NewCheckoutService(repo)

		_, err := svc.Checkout(ctx, checkoutCart(), 10, "12345678", "", decimal.Zero, "")

		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("masks unexpected persistence failures", func(t *testing.T) {
		repo := &fakeInvoiceRepo{createErr: errors.New("connection reset")}
		svc := NewCheckoutService(repo)

		_, err := svc.Checkout(ctx, checkoutCart(), 10, "12345678", "", decimal.Zero, "")

		assert.ErrorIs(t, err, ErrCheckoutFailed)
	})
}

func TestCheckoutService_GetInvoice(t *testing.T) {
	repo := &fakeInvoiceRepo{
		invoices: map[uint]domain.Invoice{
			1: {ID: 1, AdminID: 10, InvoiceNumber: "INV-00000001"},
		},
	}
	svc := NewCheckoutService(repo)
	ctx := context.Background()

	t.Run("returns the admin's invoice", func(t *testing.T) {
		invoice, err := svc.GetInvoice(ctx, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, "INV-00000001", invoice.InvoiceNumber)
	})

	t.Run("another admin's invoice reads as missing", func(t *testing.T) {
		_, err := svc.GetInvoice(ctx, 1, 99)

		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})
}

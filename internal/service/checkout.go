package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/repository"
)

var (
	ErrEmptyCart       = errors.New("no items in cart")
	ErrInvalidMobile   = errors.New("mobile must be exactly 8 digits")
	ErrInvalidTaxRate  = errors.New("tax rate must be a non-negative fraction")
	ErrCheckoutFailed  = errors.New("an error occurred while generating the invoice")
	ErrInvoiceNotFound = repository.ErrInvoiceNotFound
)

type CheckoutInvoiceRepository interface {
	CreateFromCart(ctx context.Context, order repository.CheckoutOrder) (domain.Invoice, error)
	FindByIDForAdmin(ctx context.Context, invoiceID, adminID uint) (domain.Invoice, error)
	ListByAdmin(ctx context.Context, adminID uint) ([]domain.Invoice, error)
}

type CheckoutService struct {
	invoiceRepo CheckoutInvoiceRepository
}

func NewCheckoutService(invoiceRepo CheckoutInvoiceRepository) *CheckoutService {
	return &CheckoutService{
		invoiceRepo: invoiceRepo,
	}
}

// Checkout turns the cart into a persisted invoice. Validation errors
// are detected before any write; everything else happens inside one
// transaction in the repository, so a failure leaves no invoice, no
// lines and no stock deltas behind.
func (s *CheckoutService) Checkout(ctx context.Context, cart domain.Cart, adminID uint, mobile, customerName string, taxRate decimal.Decimal, paymentMode string) (domain.Invoice, error) {
	if cart.IsEmpty() {
		return domain.Invoice{}, ErrEmptyCart
	}
	if !domain.IsValidMobile(mobile) {
		return domain.Invoice{}, ErrInvalidMobile
	}
	if taxRate.IsNegative() {
		return domain.Invoice{}, ErrInvalidTaxRate
	}
	if paymentMode == "" {
		paymentMode = "Cash"
	}

	subtotal := cart.Subtotal()
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	invoice, err := s.invoiceRepo.CreateFromCart(ctx, repository.CheckoutOrder{
		AdminID:      adminID,
		Cart:         cart,
		Mobile:       mobile,
		CustomerName: customerName,
		PaymentMode:  paymentMode,
		Subtotal:     subtotal,
		Tax:          tax,
		Total:        total,
	})
	if err != nil {
		var stockErr *InsufficientStockError
		if errors.As(err, &stockErr) {
			return domain.Invoice{}, stockErr
		}
		if errors.Is(err, repository.ErrItemNotFound) {
			return domain.Invoice{}, ErrItemNotFound
		}

		// Everything else is an unexpected persistence failure; the
		// transaction has been rolled back, report it generically.
		zap.L().Error("checkout transaction failed", zap.Error(err))

		return domain.Invoice{}, ErrCheckoutFailed
	}

	return invoice, nil
}

func (s *CheckoutService) GetInvoice(ctx context.Context, invoiceID, adminID uint) (domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByIDForAdmin(ctx, invoiceID, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return domain.Invoice{}, ErrInvoiceNotFound
		}

		return domain.Invoice{}, fmt.Errorf("s.invoiceRepo.FindByIDForAdmin -> %w", err)
	}

	return invoice, nil
}

func (s *CheckoutService) ListInvoices(ctx context.Context, adminID uint) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("s.invoiceRepo.ListByAdmin -> %w", err)
	}

	return invoices, nil
}

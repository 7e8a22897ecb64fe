package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/repository/dao"
)

var ErrInvoiceNotFound = dao.ErrInvoiceNotFound

type InvoiceDAO interface {
	CreateInvoice(ctx context.Context, order dao.CheckoutOrder) (dao.Invoice, error)
	FindByIDForAdmin(ctx context.Context, invoiceID, adminID uint) (dao.Invoice, error)
	FindLines(ctx context.Context, invoiceID uint) ([]dao.InvoiceLineRow, error)
	ListByAdmin(ctx context.Context, adminID uint) ([]dao.InvoiceRow, error)
	AggregateSales(ctx context.Context, adminID uint, date *time.Time, paymentMode string) ([]dao.SalesReportRow, error)
}

type InvoiceRepository struct {
	dao          InvoiceDAO
	customerRepo *CustomerRepository
}

func NewInvoiceRepository(dao InvoiceDAO, customerRepo *CustomerRepository) *InvoiceRepository {
	return &InvoiceRepository{
		dao:          dao,
		customerRepo: customerRepo,
	}
}

func (r *InvoiceRepository) daoToDomain(inv dao.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		AdminID:       inv.AdminID,
		CustomerID:    inv.CustomerID,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Total:         inv.Total,
		PaymentMode:   inv.PaymentMode,
		CreatedAt:     inv.CreatedAt,
	}
}

func (r *InvoiceRepository) lineDaoToDomain(line dao.InvoiceLineRow) domain.InvoiceLine {
	return domain.InvoiceLine{
		ID:        line.ID,
		InvoiceID: line.InvoiceID,
		ItemID:    line.ItemID,
		SKU:       line.SKU,
		Name:      line.Name,
		Quantity:  line.Quantity,
		UnitPrice: line.UnitPrice,
		LineTotal: line.LineTotal,
	}
}

// CheckoutOrder is everything a checkout persists; totals are computed
// by the service before the transaction starts.
type CheckoutOrder struct {
	AdminID      uint
	Cart         domain.Cart
	Mobile       string
	CustomerName string
	PaymentMode  string
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
}

// CreateFromCart persists the checkout as one atomic unit.
func (r *InvoiceRepository) CreateFromCart(ctx context.Context, order CheckoutOrder) (domain.Invoice, error) {
	lines := make([]dao.CheckoutLine, len(order.Cart.Lines))
	for i, line := range order.Cart.Lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		lines[i] = dao.CheckoutLine{
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.UnitPrice.Mul(qty).Round(2),
		}
	}

	created, err := r.dao.CreateInvoice(ctx, dao.CheckoutOrder{
		AdminID:      order.AdminID,
		Mobile:       order.Mobile,
		CustomerName: order.CustomerName,
		PaymentMode:  order.PaymentMode,
		Subtotal:     order.Subtotal,
		Tax:          order.Tax,
		Total:        order.Total,
		Lines:        lines,
	})
	if err != nil {
		return domain.Invoice{}, err
	}

	return r.daoToDomain(created), nil
}

// FindByIDForAdmin loads the invoice with its lines and customer.
// Cross-tenant access fails closed with ErrInvoiceNotFound.
func (r *InvoiceRepository) FindByIDForAdmin(ctx context.Context, invoiceID, adminID uint) (domain.Invoice, error) {
	invoiceDAO, err := r.dao.FindByIDForAdmin(ctx, invoiceID, adminID)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("r.dao.FindByIDForAdmin -> %w", err)
	}

	invoice := r.daoToDomain(invoiceDAO)

	linesDAO, err := r.dao.FindLines(ctx, invoiceID)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("r.dao.FindLines -> %w", err)
	}
	invoice.Lines = make([]domain.InvoiceLine, len(linesDAO))
	for i, lineDAO := range linesDAO {
		invoice.Lines[i] = r.lineDaoToDomain(lineDAO)
	}

	customer, err := r.customerRepo.FindByID(ctx, invoiceDAO.CustomerID)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("r.customerRepo.FindByID -> %w", err)
	}
	invoice.Customer = customer

	return invoice, nil
}

func (r *InvoiceRepository) ListByAdmin(ctx context.Context, adminID uint) ([]domain.Invoice, error) {
	rowsDAO, err := r.dao.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByAdmin -> %w", err)
	}

	invoices := make([]domain.Invoice, len(rowsDAO))
	for i, rowDAO := range rowsDAO {
		invoice := r.daoToDomain(rowDAO.Invoice)
		invoice.Customer = domain.Customer{
			ID:     rowDAO.CustomerID,
			Name:   rowDAO.CustomerName,
			Mobile: rowDAO.CustomerMobile,
		}
		invoices[i] = invoice
	}

	return invoices, nil
}

func (r *InvoiceRepository) AggregateSales(ctx context.Context, adminID uint, date *time.Time, paymentMode string) (domain.SalesReport, error) {
	rowsDAO, err := r.dao.AggregateSales(ctx, adminID, date, paymentMode)
	if err != nil {
		return domain.SalesReport{}, fmt.Errorf("r.dao.AggregateSales -> %w", err)
	}

	report := domain.SalesReport{
		Rows: make([]domain.SalesRow, len(rowsDAO)),
	}
	for i, rowDAO := range rowsDAO {
		row := domain.SalesRow{
			InvoiceID:     rowDAO.InvoiceID,
			InvoiceNumber: rowDAO.InvoiceNumber,
			CustomerName:  rowDAO.CustomerName,
			Mobile:        rowDAO.Mobile,
			PaymentMode:   rowDAO.PaymentMode,
			Quantity:      rowDAO.Quantity,
			Amount:        rowDAO.Amount,
			CreatedAt:     rowDAO.CreatedAt,
		}
		report.Rows[i] = row
		report.TotalQuantity += row.Quantity
		report.TotalAmount = report.TotalAmount.Add(row.Amount)
	}

	return report, nil
}

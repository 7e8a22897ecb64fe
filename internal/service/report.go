package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/storefront-api/internal/domain"
)

type ReportInvoiceRepository interface {
	AggregateSales(ctx context.Context, adminID uint, date *time.Time, paymentMode string) (domain.SalesReport, error)
}

// ReportService is read-only: a derived view over invoices and their lines.
type ReportService struct {
	invoiceRepo ReportInvoiceRepository
}

func NewReportService(invoiceRepo ReportInvoiceRepository) *ReportService {
	return &ReportService{
		invoiceRepo: invoiceRepo,
	}
}

func (s *ReportService) AggregateSales(ctx context.Context, adminID uint, date *time.Time, paymentMode string) (domain.SalesReport, error) {
	report, err := s.invoiceRepo.AggregateSales(ctx, adminID, date, paymentMode)
	if err != nil {
		return domain.SalesReport{}, fmt.Errorf("s.invoiceRepo.AggregateSales -> %w", err)
	}

	return report, nil
}

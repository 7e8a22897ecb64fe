package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/storefront-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/service"
)

type InvoiceService interface {
	GetInvoice(ctx context.Context, invoiceID, adminID uint) (domain.Invoice, error)
	ListInvoices(ctx context.Context, adminID uint) ([]domain.Invoice, error)
}

type InvoiceHandler struct {
	svc InvoiceService
}

func NewInvoiceHandler(svc InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		svc: svc,
	}
}

// HandleGetInvoice loads one invoice with its lines and customer.
// Invoices of other admins are indistinguishable from missing ones.
func (h *InvoiceHandler) HandleGetInvoice(ctx *gin.Context) {
	adminID, ok := requireAdminID(ctx)
	if !ok {
		return
	}
	invoiceID, ok := pathID(ctx, "invoiceID")
	if !ok {
		return
	}

	invoice, err := h.svc.GetInvoice(ctx.Request.Context(), invoiceID, adminID)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrInvoiceNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGetInvoice -> h.svc.GetInvoice -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) HandleListInvoices(ctx *gin.Context) {
	adminID, ok := requireAdminID(ctx)
	if !ok {
		return
	}

	invoices, err := h.svc.ListInvoices(ctx.Request.Context(), adminID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListInvoices -> h.svc.ListInvoices -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, invoices)
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vietanh2810/storefront-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/storefront-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/pkg/sessioncart"
	"github.com/vietanh2810/storefront-api/internal/service"
)

type CheckoutService interface {
	Checkout(ctx context.Context, cart domain.Cart, adminID uint, mobile, customerName string, taxRate decimal.Decimal, paymentMode string) (domain.Invoice, error)
}

type CheckoutHandler struct {
	svc   CheckoutService
	carts *sessioncart.Store
}

func NewCheckoutHandler(svc CheckoutService, carts *sessioncart.Store) *CheckoutHandler {
	return &CheckoutHandler{
		svc:   svc,
		carts: carts,
	}
}

// HandleCheckout turns the session cart into an invoice. The cart is
// cleared only after the transaction committed.
func (h *CheckoutHandler) HandleCheckout(ctx *gin.Context) {
	adminID, ok := requireAdminID(ctx)
	if !ok {
		return
	}

	var req request.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	cart := h.carts.Get(adminID)

	invoice, err := h.svc.Checkout(ctx.Request.Context(), cart, adminID, req.Mobile, req.Name, req.TaxRate, req.PaymentMode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart),
			errors.Is(err, service.ErrInvalidMobile),
			errors.Is(err, service.ErrInvalidTaxRate):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrItemNotFound))
		default:
			var stockErr *service.InsufficientStockError
			if errors.As(err, &stockErr) {
				response.RenderErr(ctx, response.ErrConflict(stockErr))
				return
			}

			err = fmt.Errorf("v1.HandleCheckout -> h.svc.Checkout -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	h.carts.Clear(adminID)

	ctx.JSON(http.StatusCreated, invoice)
}

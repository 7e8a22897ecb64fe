package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/storefront-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/storefront-api/internal/domain"
)

type ReportService interface {
	AggregateSales(ctx context.Context, adminID uint, date *time.Time, paymentMode string) (domain.SalesReport, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleSalesReport aggregates the admin's sales, optionally filtered
// by ?date=2006-01-02 and ?payment_mode=.
func (h *ReportHandler) HandleSalesReport(ctx *gin.Context) {
	adminID, ok := requireAdminID(ctx)
	if !ok {
		return
	}

	var date *time.Time
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)))
			return
		}
		date = &parsed
	}

	report, err := h.svc.AggregateSales(ctx.Request.Context(), adminID, date, ctx.Query("payment_mode"))
	if err != nil {
		err = fmt.Errorf("v1.HandleSalesReport -> h.svc.AggregateSales -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}

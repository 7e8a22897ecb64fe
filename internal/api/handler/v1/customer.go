package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/storefront-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/storefront-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/service"
)

type CustomerService interface {
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Search(ctx context.Context, query string) ([]domain.Customer, error)
}

type CustomerHandler struct {
	svc CustomerService
}

func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{
		svc: svc,
	}
}

func (h *CustomerHandler) HandleCreateCustomer(ctx *gin.Context) {
	if _, ok := requireAdminID(ctx); !ok {
		return
	}

	var req request.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	customer, err := h.svc.Create(ctx.Request.Context(), domain.Customer{
		Mobile: strings.TrimSpace(req.Mobile),
		Name:   strings.TrimSpace(req.Name),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidMobile) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidMobile))
			return
		}
		if errors.Is(err, service.ErrCustomerMobileExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrCustomerMobileExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateCustomer -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, customer)
}

// HandleSearchCustomers matches on name or mobile prefix for the
// checkout lookup field. Short queries return an empty list.
func (h *CustomerHandler) HandleSearchCustomers(ctx *gin.Context) {
	if _, ok := requireAdminID(ctx); !ok {
		return
	}

	query := strings.TrimSpace(ctx.Query("q"))
	if len(query) < 3 {
		ctx.JSON(http.StatusOK, []domain.Customer{})
		return
	}

	customers, err := h.svc.Search(ctx.Request.Context(), query)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchCustomers -> h.svc.Search -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, customers)
}

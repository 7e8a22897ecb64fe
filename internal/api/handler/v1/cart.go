package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/storefront-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/storefront-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/pkg/sessioncart"
	"github.com/vietanh2810/storefront-api/internal/service"
)

type CartService interface {
	Add(ctx context.Context, cart domain.Cart, adminID, itemID uint, quantity int) (domain.Cart, error)
	Remove(cart domain.Cart, itemID uint) domain.Cart
}

type CartHandler struct {
	svc   CartService
	carts *sessioncart.Store
}

func NewCartHandler(svc CartService, carts *sessioncart.Store) *CartHandler {
	return &CartHandler{
		svc:   svc,
		carts: carts,
	}
}

func (h *CartHandler) HandleGetCart(ctx *gin.Context) {
	adminID, ok := requireAdminID(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, response.NewCartResponse(h.carts.Get(adminID)))
}

func (h *CartHandler) HandleAddToCart(ctx *gin.Context) {
	adminID, ok := requireAdminID(ctx)
	if !ok {
		return
	}

	var req request.AddToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	cart, err := h.svc.Add(ctx.Request.Context(), h.carts.Get(adminID), adminID, req.ItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidQuantity))
			return
		}
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrItemNotFound))
			return
		}
		var stockErr *service.InsufficientStockError
		if errors.As(err, &stockErr) {
			response.RenderErr(ctx, response.ErrConflict(stockErr))
			return
		}

		err = fmt.Errorf("v1.HandleAddToCart -> h.svc.Add -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	h.carts.Put(adminID, cart)

	ctx.JSON(http.StatusOK, response.NewCartResponse(cart))
}

// HandleRemoveFromCart drops the line for the item; removing an item
// that is not carted succeeds with the unchanged cart.
func (h *CartHandler) HandleRemoveFromCart(ctx *gin.Context) {
	adminID, ok := requireAdminID(ctx)
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, "itemID")
	if !ok {
		return
	}

	cart := h.svc.Remove(h.carts.Get(adminID), itemID)
	h.carts.Put(adminID, cart)

	ctx.JSON(http.StatusOK, response.NewCartResponse(cart))
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/storefront-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/storefront-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/storefront-api/internal/api/middleware"
	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/service"
)

type CatalogService interface {
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	ListItems(ctx context.Context, adminID uint) ([]domain.Item, error)
	SearchItems(ctx context.Context, adminID uint, query string) ([]domain.Item, error)
	AdjustStock(ctx context.Context, itemID, adminID uint, delta int, reason string) (domain.StockDelta, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

func requireAdminID(ctx *gin.Context) (uint, bool) {
	adminID, ok := middleware.AdminID(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrInternalServerError(errors.New("admin id missing from context")))
		return 0, false
	}

	return adminID, true
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid %v", name)))
		return 0, false
	}

	return uint(id), true
}

func (h *CatalogHandler) HandleCreateItem(ctx *gin.Context) {
	adminID, ok := requireAdminID(ctx)
	if !ok {
		return
	}

	var req request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.CreateItem(ctx.Request.Context(), domain.Item{
		AdminID:     adminID,
		SKU:         strings.TrimSpace(req.SKU),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSKU) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrDuplicateSKU))
			return
		}

		err = fmt.Errorf("v1.HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) HandleUpdateItem(ctx *gin.Context) {
	adminID, ok := requireAdminID(ctx)
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, "itemID")
	if !ok {
		return
	}

	var req request.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.UpdateItem(ctx.Request.Context(), domain.Item{
		ID:          itemID,
		AdminID:     adminID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrItemNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.UpdateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleListItems returns the admin's items newest-first with current stock.
func (h *CatalogHandler) HandleListItems(ctx *gin.Context) {
	adminID, ok := requireAdminID(ctx)
	if !ok {
		return
	}

	items, err := h.svc.ListItems(ctx.Request.Context(), adminID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleSearchItems powers checkout autocomplete. Queries shorter than
// 3 characters return an empty list.
func (h *CatalogHandler) HandleSearchItems(ctx *gin.Context) {
	adminID, ok := requireAdminID(ctx)
	if !ok {
		return
	}

	query := strings.TrimSpace(ctx.Query("q"))
	if len(query) < 3 {
		ctx.JSON(http.StatusOK, []domain.Item{})
		return
	}

	items, err := h.svc.SearchItems(ctx.Request.Context(), adminID, query)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchItems -> h.svc.SearchItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) HandleAdjustStock(ctx *gin.Context) {
	adminID, ok := requireAdminID(ctx)
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, "itemID")
	if !ok {
		return
	}

	var req request.AdjustStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	delta, err := h.svc.AdjustStock(ctx.Request.Context(), itemID, adminID, req.Delta, req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrItemNotFound))
			return
		}
		var stockErr *service.InsufficientStockError
		if errors.As(err, &stockErr) {
			response.RenderErr(ctx, response.ErrConflict(stockErr))
			return
		}

		err = fmt.Errorf("v1.HandleAdjustStock -> h.svc.AdjustStock -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, delta)
}

package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/repository/dao"
)

var (
	ErrItemNotFound = dao.ErrItemNotFound
	ErrDuplicateSKU = dao.ErrDuplicateSKU
)

// InsufficientStockError is surfaced as-is so callers can report the
// offending item and the available quantity.
type InsufficientStockError = dao.InsufficientStockError

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	Update(ctx context.Context, item dao.Item) (dao.Item, error)
	FindByIDForAdmin(ctx context.Context, itemID, adminID uint) (dao.Item, error)
	ListByAdmin(ctx context.Context, adminID uint) ([]dao.Item, error)
	Search(ctx context.Context, adminID uint, query string) ([]dao.Item, error)
	CurrentStock(ctx context.Context, itemID uint) (int, error)
	AdjustStock(ctx context.Context, itemID, adminID uint, delta int, reason string) (dao.StockDelta, error)
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) domainToDao(item domain.Item) dao.Item {
	return dao.Item{
		ID:          item.ID,
		AdminID:     item.AdminID,
		SKU:         item.SKU,
		SKUKey:      domain.NormalizeSKU(item.SKU),
		Name:        item.Name,
		Description: item.Description,
		UnitPrice:   item.UnitPrice,
		CreatedAt:   item.CreatedAt,
	}
}

func (r *ItemRepository) daoToDomain(item dao.Item) domain.Item {
	return domain.Item{
		ID:          item.ID,
		AdminID:     item.AdminID,
		SKU:         item.SKU,
		Name:        item.Name,
		Description: item.Description,
		UnitPrice:   item.UnitPrice,
		CreatedAt:   item.CreatedAt,
	}
}

func (r *ItemRepository) deltaDaoToDomain(delta dao.StockDelta) domain.StockDelta {
	return domain.StockDelta{
		ID:        delta.ID,
		ItemID:    delta.ItemID,
		Delta:     delta.DeltaQuantity,
		Reason:    delta.Reason,
		CreatedAt: delta.CreatedAt,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) FindByIDForAdmin(ctx context.Context, itemID, adminID uint) (domain.Item, error) {
	item, err := r.dao.FindByIDForAdmin(ctx, itemID, adminID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByIDForAdmin -> %w", err)
	}

	return r.daoToDomain(item), nil
}

// ListByAdmin returns the admin's items newest-first, each carrying its
// current stock derived from the ledger.
func (r *ItemRepository) ListByAdmin(ctx context.Context, adminID uint) ([]domain.Item, error) {
	itemsDAO, err := r.dao.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByAdmin -> %w", err)
	}

	return r.withStock(ctx, itemsDAO)
}

func (r *ItemRepository) Search(ctx context.Context, adminID uint, query string) ([]domain.Item, error) {
	itemsDAO, err := r.dao.Search(ctx, adminID, query)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Search -> %w", err)
	}

	return r.withStock(ctx, itemsDAO)
}

func (r *ItemRepository) withStock(ctx context.Context, itemsDAO []dao.Item) ([]domain.Item, error) {
	items := make([]domain.Item, len(itemsDAO))
	for i, itemDAO := range itemsDAO {
		item := r.daoToDomain(itemDAO)

		stock, err := r.dao.CurrentStock(ctx, itemDAO.ID)
		if err != nil {
			return nil, fmt.Errorf("r.dao.CurrentStock -> %w", err)
		}
		item.Stock = stock

		items[i] = item
	}

	return items, nil
}

func (r *ItemRepository) CurrentStock(ctx context.Context, itemID uint) (int, error) {
	stock, err := r.dao.CurrentStock(ctx, itemID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CurrentStock -> %w", err)
	}

	return stock, nil
}

func (r *ItemRepository) AdjustStock(ctx context.Context, itemID, adminID uint, delta int, reason string) (domain.StockDelta, error) {
	posted, err := r.dao.AdjustStock(ctx, itemID, adminID, delta, reason)
	if err != nil {
		return domain.StockDelta{}, err
	}

	return r.deltaDaoToDomain(posted), nil
}

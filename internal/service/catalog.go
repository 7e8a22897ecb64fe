package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/repository"
)

var (
	ErrItemNotFound = repository.ErrItemNotFound
	ErrDuplicateSKU = repository.ErrDuplicateSKU
)

type InsufficientStockError = repository.InsufficientStockError

type CatalogItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	FindByIDForAdmin(ctx context.Context, itemID, adminID uint) (domain.Item, error)
	ListByAdmin(ctx context.Context, adminID uint) ([]domain.Item, error)
	Search(ctx context.Context, adminID uint, query string) ([]domain.Item, error)
	CurrentStock(ctx context.Context, itemID uint) (int, error)
	AdjustStock(ctx context.Context, itemID, adminID uint, delta int, reason string) (domain.StockDelta, error)
}

type CatalogService struct {
	repo CatalogItemRepository
}

func NewCatalogService(repo CatalogItemRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, err
	}

	return created, nil
}

func (s *CatalogService) UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return domain.Item{}, err
	}

	return updated, nil
}

func (s *CatalogService) ListItems(ctx context.Context, adminID uint) ([]domain.Item, error) {
	items, err := s.repo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByAdmin -> %w", err)
	}

	return items, nil
}

func (s *CatalogService) SearchItems(ctx context.Context, adminID uint, query string) ([]domain.Item, error) {
	items, err := s.repo.Search(ctx, adminID, query)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return items, nil
}

// AdjustStock posts a manual ledger adjustment. The repository rejects
// reductions below the current balance without partially applying them.
func (s *CatalogService) AdjustStock(ctx context.Context, itemID, adminID uint, delta int, reason string) (domain.StockDelta, error) {
	if reason == "" {
		reason = "Manual adjustment"
	}

	posted, err := s.repo.AdjustStock(ctx, itemID, adminID, delta, reason)
	if err != nil {
		return domain.StockDelta{}, err
	}

	return posted, nil
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/storefront-api/internal/domain"
	"github.com/vietanh2810/storefront-api/internal/repository"
)

type fakeCatalogRepo struct {
	fakeCartItemRepo

	lastReason string
	adjustErr  error
}

func (f *fakeCatalogRepo) Create(_ context.Context, item domain.Item) (domain.Item, error) {
	for _, existing := range f.items {
		if existing.AdminID == item.AdminID && domain.NormalizeSKU(existing.SKU) == domain.NormalizeSKU(item.SKU) {
			return domain.Item{}, repository.ErrDuplicateSKU
		}
	}

	item.ID = uint(len(f.items) + 1)
	f.items[item.ID] = item

	return item, nil
}

func (f *fakeCatalogRepo) Update(_ context.Context, item domain.Item) (domain.Item, error) {
	existing, ok := f.items[item.ID]
	if !ok || existing.AdminID != item.AdminID {
		return domain.Item{}, repository.ErrItemNotFound
	}

	existing.Name = item.Name
	existing.Description = item.Description
	existing.UnitPrice = item.UnitPrice
	f.items[item.ID] = existing

	return existing, nil
}

func (f *fakeCatalogRepo) ListByAdmin(_ context.Context, adminID uint) ([]domain.Item, error) {
	var out []domain.Item
	for _, item := range f.items {
		if item.AdminID == adminID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (f *fakeCatalogRepo) Search(_ context.Context, adminID uint, _ string) ([]domain.Item, error) {
	return f.ListByAdmin(context.Background(), adminID)
}

func (f *fakeCatalogRepo) AdjustStock(_ context.Context, itemID, adminID uint, delta int, reason string) (domain.StockDelta, error) {
	f.lastReason = reason
	if f.adjustErr != nil {
		return domain.StockDelta{}, f.adjustErr
	}

	f.stock[itemID] += delta

	return domain.StockDelta{ItemID: itemID, Delta: delta, Reason: reason}, nil
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{fakeCartItemRepo: *newFakeCartItemRepo()}
}

func TestCatalogService_CreateItem(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newFakeCatalogRepo())

	t.Run("creates an item", func(t *testing.T) {
		item, err := svc.CreateItem(ctx, domain.Item{AdminID: 10, SKU: "mug-01", Name: "Mug"})

		require.NoError(t, err)
		assert.NotZero(t, item.ID)
	})

	t.Run("duplicate sku for the same admin", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, domain.Item{AdminID: 10, SKU: "MUG-01", Name: "Another Mug"})

		assert.ErrorIs(t, err, ErrDuplicateSKU)
	})

	t.Run("same sku under another admin is fine", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, domain.Item{AdminID: 20, SKU: "mug-01", Name: "Mug"})

		assert.NoError(t, err)
	})
}

func TestCatalogService_AdjustStock(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the reason", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		svc := NewCatalogService(repo)

		delta, err := svc.AdjustStock(ctx, 1, 10, 5, "")

		require.NoError(t, err)
		assert.Equal(t, "Manual adjustment", delta.Reason)
		assert.Equal(t, "Manual adjustment", repo.lastReason)
	})

	t.Run("keeps an explicit reason", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		svc := NewCatalogService(repo)

		_, err := svc.AdjustStock(ctx, 1, 10, -2, "Damaged in transit")

		require.NoError(t, err)
		assert.Equal(t, "Damaged in transit", repo.lastReason)
	})

	t.Run("passes insufficient stock through", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		repo.adjustErr = &InsufficientStockError{ItemName: "Red Tee (M)", Available: 5}
		svc := NewCatalogService(repo)

		_, err := svc.AdjustStock(ctx, 1, 10, -10, "")

		var stockErr *InsufficientStockError
		assert.ErrorAs(t, err, &stockErr)
	})
}

func TestCatalogService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(newFakeCatalogRepo())

	t.Run("updates fields", func(t *testing.T) {
		item, err := svc.UpdateItem(ctx, domain.Item{ID: 1, AdminID: 10, Name: "Renamed Tee"})

		require.NoError(t, err)
		assert.Equal(t, "Renamed Tee", item.Name)
	})

	t.Run("missing or foreign item", func(t *testing.T) {
		_, err := svc.UpdateItem(ctx, domain.Item{ID: 1, AdminID: 99, Name: "x"})

		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Item struct {
	ID      uint `gorm:"primaryKey"`
	AdminID uint `gorm:"not null;uniqueIndex:uni_items_admin_sku_key,priority:1"`

	SKU         string `gorm:"not null"`
	SKUKey      string `gorm:"not null;uniqueIndex:uni_items_admin_sku_key,priority:2"`
	Name        string `gorm:"not null"`
	Description string
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	CreatedAt time.Time `gorm:"not null"`
}

func (Item) TableName() string {
	return "inventory_items"
}

// StockDelta rows are append-only; current stock is derived by summing
// delta_quantity per item.
type StockDelta struct {
	ID            uint   `gorm:"primaryKey"`
	ItemID        uint   `gorm:"index;not null"`
	DeltaQuantity int    `gorm:"not null"`
	Reason        string `gorm:"not null"`
	CreatedAt     time.Time
}

func (StockDelta) TableName() string {
	return "inventory_stock"
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func (d *ItemDAO) Insert(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Item{}, ErrDuplicateSKU
		}

		return Item{}, result.Error
	}

	return item, nil
}

// Update persists name, description and unit price for an item owned by
// the admin. Cross-tenant updates fail closed with ErrItemNotFound.
func (d *ItemDAO) Update(ctx context.Context, item Item) (Item, error) {
	var existing Item

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.First(&existing, "id = ? AND admin_id = ?", item.ID, item.AdminID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}

			return result.Error
		}

		existing.Name = item.Name
		existing.Description = item.Description
		existing.UnitPrice = item.UnitPrice

		return tx.Save(&existing).Error
	})
	if err != nil {
		return Item{}, err
	}

	return existing, nil
}

func (d *ItemDAO) FindByIDForAdmin(ctx context.Context, itemID, adminID uint) (Item, error) {
	var item Item

	result := d.db.WithContext(ctx).First(&item, "id = ? AND admin_id = ?", itemID, adminID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) ListByAdmin(ctx context.Context, adminID uint) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("created_at DESC").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// Search matches SKU or name by case-insensitive substring, scoped to
// the admin, ordered by name.
func (d *ItemDAO) Search(ctx context.Context, adminID uint, query string) ([]Item, error) {
	var items []Item

	pattern := "%" + query + "%"
	result := d.db.WithContext(ctx).
		Where("admin_id = ? AND (sku ILIKE ? OR name ILIKE ?)", adminID, pattern, pattern).
		Order("name").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// CurrentStock sums the delta ledger for the item, 0 when no deltas exist.
func (d *ItemDAO) CurrentStock(ctx context.Context, itemID uint) (int, error) {
	return currentStock(d.db.WithContext(ctx), itemID)
}

func currentStock(tx *gorm.DB, itemID uint) (int, error) {
	var stock int

	err := tx.Model(&StockDelta{}).
		Where("item_id = ?", itemID).
		Select("COALESCE(SUM(delta_quantity), 0)").
		Scan(&stock).Error
	if err != nil {
		return 0, err
	}

	return stock, nil
}

// PostDelta appends one immutable ledger row. The ledger itself never
// rejects a delta; resulting non-negativity is the caller's concern.
func (d *ItemDAO) PostDelta(ctx context.Context, delta StockDelta) (StockDelta, error) {
	result := d.db.WithContext(ctx).Create(&delta)
	if result.Error != nil {
		return StockDelta{}, result.Error
	}

	return delta, nil
}

// AdjustStock posts a manual stock adjustment for an item owned by the
// admin. Reductions are pre-checked against the current ledger sum while
// holding the item row lock, so the balance can never go negative.
func (d *ItemDAO) AdjustStock(ctx context.Context, itemID, adminID uint, delta int, reason string) (StockDelta, error) {
	var posted StockDelta

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item Item
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ? AND admin_id = ?", itemID, adminID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}

			return result.Error
		}

		if delta < 0 {
			available, err := currentStock(tx, itemID)
			if err != nil {
				return err
			}
			if available < -delta {
				return &InsufficientStockError{ItemName: item.Name, Available: available}
			}
		}

		posted = StockDelta{
			ItemID:        itemID,
			DeltaQuantity: delta,
			Reason:        reason,
		}

		return tx.Create(&posted).Error
	})
	if err != nil {
		return StockDelta{}, err
	}

	return posted, nil
}

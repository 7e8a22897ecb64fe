package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Customer records are shared across admins: one customer base for all
// storefronts, keyed by mobile number.
type Customer struct {
	ID uint `gorm:"primaryKey"`

	Mobile string `gorm:"unique;not null"`
	Name   string

	CreatedAt time.Time `gorm:"not null"`
}

type CustomerDAO struct {
	db *gorm.DB
}

func NewCustomerDAO(db *gorm.DB) *CustomerDAO {
	return &CustomerDAO{
		db: db,
	}
}

func (d *CustomerDAO) Insert(ctx context.Context, customer Customer) (Customer, error) {
	result := d.db.WithContext(ctx).Create(&customer)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Customer{}, ErrCustomerMobileExists
		}

		return Customer{}, result.Error
	}

	return customer, nil
}

func (d *CustomerDAO) FindByMobile(ctx context.Context, mobile string) (Customer, error) {
	var customer Customer

	result := d.db.WithContext(ctx).First(&customer, "mobile = ?", mobile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Customer{}, ErrCustomerNotFound
		}

		return Customer{}, result.Error
	}

	return customer, nil
}

func (d *CustomerDAO) FindByID(ctx context.Context, id uint) (Customer, error) {
	var customer Customer

	result := d.db.WithContext(ctx).First(&customer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Customer{}, ErrCustomerNotFound
		}

		return Customer{}, result.Error
	}

	return customer, nil
}

// FindOrCreate looks the customer up by exact mobile match and lazily
// inserts a new record when absent.
func (d *CustomerDAO) FindOrCreate(ctx context.Context, mobile, name string) (Customer, error) {
	return findOrCreateCustomer(d.db.WithContext(ctx), mobile, name)
}

func findOrCreateCustomer(tx *gorm.DB, mobile, name string) (Customer, error) {
	var customer Customer

	result := tx.First(&customer, "mobile = ?", mobile)
	if result.Error == nil {
		return customer, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Customer{}, result.Error
	}

	customer = Customer{Mobile: mobile, Name: name}
	if err := tx.Create(&customer).Error; err != nil {
		return Customer{}, err
	}

	// Re-read so callers always see the persisted row.
	if err := tx.First(&customer, "mobile = ?", mobile).Error; err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Search matches name or mobile by case-insensitive substring, at most
// 20 rows ordered by name. Not admin-scoped: the directory is shared.
func (d *CustomerDAO) Search(ctx context.Context, query string) ([]Customer, error) {
	var customers []Customer

	pattern := "%" + query + "%"
	result := d.db.WithContext(ctx).
		Where("name ILIKE ? OR mobile ILIKE ?", pattern, pattern).
		Order("name").
		Limit(20).
		Find(&customers)
	if result.Error != nil {
		return nil, result.Error
	}

	return customers, nil
}

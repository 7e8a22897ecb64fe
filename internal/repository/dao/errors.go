package dao

import (
	"errors"
	"fmt"
)

var (
	ErrAdminEmailExists     = errors.New("admin email already exists")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrDuplicateSKU         = errors.New("an item with this SKU already exists")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrCustomerMobileExists = errors.New("a customer with this mobile already exists")
	ErrInvoiceNotFound      = errors.New("invoice not found")
)

// InsufficientStockError names the offending item and how many units
// are actually available.
type InsufficientStockError struct {
	ItemName  string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s, available: %d", e.ItemName, e.Available)
}

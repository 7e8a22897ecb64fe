package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

var errNegativeDecimal = errors.New("must be a non-negative number")

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || d.IsNegative() {
		return errNegativeDecimal
	}

	return nil
}

type CreateItemRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (req *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SKU, validation.Required, validation.Length(1, 64)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.UnitPrice, validation.By(nonNegativeDecimal)),
	)
}

type UpdateItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (req *UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.UnitPrice, validation.By(nonNegativeDecimal)),
	)
}

type AdjustStockRequest struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}

func (req *AdjustStockRequest) Validate() error {
	// Required rejects the zero value, so a zero delta fails here too.
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Delta, validation.Required),
		validation.Field(&req.Reason, validation.Length(0, 200)),
	)
}

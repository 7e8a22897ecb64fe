package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

var mobileExp = regexp.MustCompile(`^\d{8}$`)

type CheckoutRequest struct {
	Mobile      string          `json:"mobile"`
	Name        string          `json:"name"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	PaymentMode string          `json:"payment_mode"`
}

func (req *CheckoutRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Mobile, validation.Required, validation.Match(mobileExp)),
		validation.Field(&req.Name, validation.Length(0, 100)),
		validation.Field(&req.TaxRate, validation.By(nonNegativeDecimal)),
		validation.Field(&req.PaymentMode, validation.Length(0, 30)),
	)
}

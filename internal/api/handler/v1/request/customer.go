package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateCustomerRequest struct {
	Mobile string `json:"mobile"`
	Name   string `json:"name"`
}

func (req *CreateCustomerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Mobile, validation.Required, validation.Match(mobileExp)),
		validation.Field(&req.Name, validation.Length(0, 100)),
	)
}

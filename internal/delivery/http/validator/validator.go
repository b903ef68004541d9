// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	govalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *govalidator.Validate
}

// New creates an echo.Validator backed by go-playground/validator.
func New() echo.Validator {
	return &echoValidator{validate: govalidator.New()}
}

// Validate checks struct tags on the bound request payload. The raw
// validation error is returned so handlers can map field failures onto the
// domain error vocabulary.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

package handler

import (
	stderrors "errors"

	domainerrors "forkcast/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// validationError maps struct-tag failures onto the domain error vocabulary
// so validation rejections keep the same wire messages the usecases produce.
func validationError(err error, fallback *domainerrors.BaseError) error {
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			switch fieldErr.Tag() {
			case "email":
				return domainerrors.ErrInvalidEmail.WrapMessage("email format check failed")
			case "min":
				return domainerrors.ErrPasswordTooShort.WrapMessage("password below minimum length")
			}
		}
	}

	return fallback.WrapMessage(err.Error())
}

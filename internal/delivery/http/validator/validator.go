// Package validator adapts go-playground struct validation to echo.
package validator

import (
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator on top of go-playground.
type CustomValidator struct {
	validate *validator.Validate
}

// New is the constructor for CustomValidator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks the struct tags of a bound request. Violations surface as
// a single validation error carrying the offending fields in the details.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// Package validator wires go-playground/validator into Echo's binding flow.
package validator

import (
	domainerrors "expensetracker/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator adapts a validator.Validate instance to echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Struct tag violations surface as a
// single 400 with the offending fields in the details.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

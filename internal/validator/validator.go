// Package validator wraps go-playground/validator with the listener's custom
// tags and a single error format.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"

	"github.com/Mantelijo/sui-wallet-listener/internal/chain"
)

// ErrValidationFailed is the first error of the chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var validator *gvalidator.Validate

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	// sui_address accepts anything NormalizeAddress can canonicalize.
	if err := validator.RegisterValidation("sui_address", func(fl gvalidator.FieldLevel) bool {
		return chain.IsValidAddress(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its validate tags. On failure the returned error
// wraps ErrValidationFailed and one message per offending field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}
	return nil
}

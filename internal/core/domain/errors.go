package domain

import (
	"errors"
	"fmt"
)

// ErrValidation marks user-correctable input errors.
// Every concrete validation sentinel wraps it.
var ErrValidation = errors.New("validation")

var (
	ErrNoVariant         = fmt.Errorf("%w: no variant selected", ErrValidation)
	ErrUnknownVariant    = fmt.Errorf("%w: unknown variant for product kind", ErrValidation)
	ErrEmptyCart         = fmt.Errorf("%w: cart is empty", ErrValidation)
	ErrCustomerInfo      = fmt.Errorf("%w: customer info is incomplete", ErrValidation)
	ErrConfirmRequired   = fmt.Errorf("%w: confirmation required", ErrValidation)
	ErrProductNotFound   = errors.New("product not found")
	ErrIndexOutOfRange   = errors.New("cart index out of range")
	ErrExportUnavailable = errors.New("receipt renderer is unavailable")
)

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrCategoryNotFound  = errors.New("product type not found")
	ErrProductNotFound   = errors.New("product not found or not available")
	ErrDuplicateOrder    = errors.New("order_id already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrShipmentExists    = errors.New("shipment already recorded for this booking")
	ErrInvalidRecipient  = errors.New("invalid mobile number format")
)

// ValidationError names the rejected field so callers can report exactly
// what was missing or malformed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError anywhere in its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

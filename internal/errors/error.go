// Package errors provides the error kinds raised by the inventory service.
package errors

import "errors"

var (
	ErrProductNotFound = errors.New("product with given ID not found")
	ErrDuplicateName   = errors.New("product with same name already exists")
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
	ErrInvalidPrice    = errors.New("price cannot be negative")
	ErrInvalidName     = errors.New("name cannot be blank")

	// ErrStoreUnavailable is returned while the store circuit breaker is open.
	ErrStoreUnavailable = errors.New("product store is temporarily unavailable")
)

// IsBusinessRule reports whether err is a violation of an inventory rule,
// as opposed to a missing product or an infrastructure fault.
func IsBusinessRule(err error) bool {
	return errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidName)
}

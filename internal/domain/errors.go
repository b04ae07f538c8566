// internal/domain/errors.go
package domain

import "errors"

var (
	// ErrNotFound is returned for an unknown product id or a category
	// with zero matches. A normal, client-visible outcome.
	ErrNotFound = errors.New("not found")

	// ErrModelUnavailable is returned when the direct-prediction path is
	// invoked while the process runs in fallback-formula mode. This is a
	// startup configuration issue, not a transient fault.
	ErrModelUnavailable = errors.New("pricing model not loaded")

	// ErrInvalidInput is returned for inputs that would make the pricing
	// math undefined (non-positive base price, all-zero-stock dataset).
	ErrInvalidInput = errors.New("invalid input")
)

package ks

import "github.com/pkg/errors"

var (
	// ErrUnsupportedValue is returned when a scalar payload has no fixed size.
	ErrUnsupportedValue = errors.New("value has no fixed-size encoding")
	// ErrItemSizeMismatch is returned when an entry declares a size different
	// from the number of bytes it serializes to.
	ErrItemSizeMismatch = errors.New("multiple item entry size mismatch")
	// ErrCountMismatch is returned when a multiple item header's Count does not
	// match the entries present.
	ErrCountMismatch = errors.New("multiple item count mismatch")
	// ErrSizeMismatch is returned when a multiple item header's Size does not
	// match the bytes its entries occupy.
	ErrSizeMismatch = errors.New("multiple item size mismatch")

	ErrInvalidNotification = errors.New("invalid event notification type")
	ErrInvalidBounds       = errors.New("bounds are not defined for this variant type")
	ErrInvalidMembers      = errors.New("invalid property members list")
)

package transform

import "errors"

// Sentinel errors returned by the transform operations. Call sites
// wrap them with the observed dtype or shape, so callers can match
// the category with errors.Is and still see what was passed.
var (
	// ErrInvalidShape reports an input tensor whose dtype or shape
	// does not match the layout an operation expects.
	ErrInvalidShape = errors.New("invalid tensor shape")

	// ErrInvalidTriple reports a plane set that is not exactly three
	// non-nil tensors.
	ErrInvalidTriple = errors.New("invalid plane triple")
)

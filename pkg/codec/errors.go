package codec

import "errors"

var (
	// ErrInvalidHex is returned when a hex string has odd length or
	// contains characters outside [0-9a-fA-F].
	ErrInvalidHex = errors.New("invalid hex")
	// ErrPrecisionOverflow is returned when an amount literal carries more
	// than eight fractional digits.
	ErrPrecisionOverflow = errors.New("amount precision overflow")
	// ErrInvalidAmount is returned when an amount literal is not a plain
	// decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrUnknownVariant is returned when an integer tag does not belong to
	// the closed variant set being decoded.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrMissingField is returned when a required wire field is absent.
	ErrMissingField = errors.New("missing field")
	// ErrShapeMismatch is returned when a value's JSON kind does not match
	// any shape the target type can hold.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// Package codec implements the wire representations used by the Dash Core
// JSON-RPC interface.
//
// The node encodes domain values in a handful of recurring shapes, and this
// package owns the translation between those shapes and Go values:
//
//   - Hex-binary: byte sequences carried as lowercase, unprefixed hex strings
//     (HexBytes), and fixed-width 32-byte hashes printed in the node's
//     reversed display order (Hash).
//   - Fixed-point amounts: monetary values with eight fractional digits,
//     held as an integer count of duffs (Amount). Parsing and formatting
//     never touch floating point, so amounts round-trip exactly.
//   - Tagged enumerations: closed variant sets carried as small integers
//     or well-known name strings (EnumCodec). Unknown tags are an error,
//     never a default.
//   - Bit-packed flags: named booleans at fixed bit positions (FlagCodec).
//     Bits the codec does not know about are preserved in a residual word so
//     that repacking reproduces the original value.
//
// Every codec obeys the round-trip law: decoding a canonical encoding and
// re-encoding it yields the identical text, and encoding a value and decoding
// it back yields the identical value.
//
// # Errors
//
// Decoding failures are reported through a small set of sentinel errors
// (ErrInvalidHex, ErrPrecisionOverflow, ErrUnknownVariant, ErrMissingField,
// ErrShapeMismatch, ErrInvalidAmount), wrapped with context:
//
//	if _, err := codec.DecodeHex("abc"); errors.Is(err, codec.ErrInvalidHex) {
//	    // odd length
//	}
//
// Higher layers classify any error wrapping one of these sentinels as a
// decode failure, distinct from transport and node errors.
package codec

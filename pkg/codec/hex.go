package codec

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// DecodeHex decodes an even-length hex string into bytes.
// Both upper- and lower-case digits are accepted; a "0x" prefix is not.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidHex, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return b, nil
}

// EncodeHex encodes bytes as a lowercase, unprefixed hex string.
// This is the canonical form: EncodeHex(DecodeHex(s)) == strings.ToLower(s).
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexBytes is a byte sequence carried on the wire as a hex string.
// The zero value is an empty sequence, which encodes as "".
type HexBytes []byte

// String returns the canonical lowercase hex encoding.
func (h HexBytes) String() string {
	return EncodeHex(h)
}

// Bytes returns the underlying byte slice.
func (h HexBytes) Bytes() []byte {
	return h
}

// MarshalJSON encodes the bytes as a JSON hex string.
func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a JSON hex string into bytes.
func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: hex value is not a string", ErrShapeMismatch)
	}
	b, err := DecodeHex(s)
	if err != nil {
		return err
	}
	*h = b
	return nil
}

// HashSize is the width of the node's block, transaction and quorum hashes.
const HashSize = 32

// Hash is a fixed-width 32-byte hash.
//
// The node displays hashes byte-reversed relative to their in-memory order,
// so Hash stores the internal order and reverses on the text boundary.
// String, MarshalJSON and NewHashFromHex all speak the display order.
type Hash [HashSize]byte

// NewHashFromHex parses a 64-digit hex string in display order.
func NewHashFromHex(s string) (Hash, error) {
	var h Hash
	b, err := DecodeHex(s)
	if err != nil {
		return h, err
	}
	if len(b) != HashSize {
		return h, fmt.Errorf("%w: hash must be %d bytes, got %d", ErrInvalidHex, HashSize, len(b))
	}
	for i, v := range b {
		h[HashSize-1-i] = v
	}
	return h, nil
}

// String returns the display-order hex encoding.
func (h Hash) String() string {
	var rev [HashSize]byte
	for i, v := range h {
		rev[HashSize-1-i] = v
	}
	return EncodeHex(rev[:])
}

// Bytes returns the hash in internal byte order.
func (h Hash) Bytes() []byte {
	return h[:]
}

// IsZero reports whether the hash is all zeroes.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// MarshalJSON encodes the hash as a display-order JSON hex string.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a display-order JSON hex string.
func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: hash value is not a string", ErrShapeMismatch)
	}
	parsed, err := NewHashFromHex(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// MarshalText lets a Hash serve as a JSON object key.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText parses a display-order hex key.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := NewHashFromHex(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

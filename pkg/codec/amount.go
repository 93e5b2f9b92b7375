package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DuffsPerDash is the number of duffs in one DASH.
const DuffsPerDash = 100_000_000

// amountDecimals is the number of fractional digits in the canonical
// amount encoding.
const amountDecimals = 8

// Amount is a monetary value held as an integer count of duffs.
//
// The node carries amounts as decimal numbers with up to eight fractional
// digits. Amount keeps them scaled by 1e8 so that arithmetic and comparison
// are exact; the decimal boundary is crossed only in ParseAmount and String,
// which work digit-by-digit and never involve floating point.
type Amount int64

// AmountFromDuffs wraps a raw duff count.
func AmountFromDuffs(duffs int64) Amount {
	return Amount(duffs)
}

// ParseAmount parses a plain decimal literal such as "12.5" or "-0.00000001"
// into duffs. More than eight fractional digits fail with
// ErrPrecisionOverflow; anything that is not a plain decimal number fails
// with ErrInvalidAmount.
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}

	rest := s
	neg := false
	switch rest[0] {
	case '-':
		neg = true
		rest = rest[1:]
	case '+':
		rest = rest[1:]
	}

	intPart := rest
	fracPart := ""
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		intPart, fracPart = rest[:i], rest[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if intPart == "" {
		intPart = "0"
	}
	if !isDecimalDigits(intPart) || (fracPart != "" && !isDecimalDigits(fracPart)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(fracPart) > amountDecimals {
		return 0, fmt.Errorf("%w: %q has %d fractional digits", ErrPrecisionOverflow, s, len(fracPart))
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, s)
	}

	var frac int64
	if fracPart != "" {
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		for i := len(fracPart); i < amountDecimals; i++ {
			frac *= 10
		}
	}

	if whole > (math.MaxInt64-frac)/DuffsPerDash {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, s)
	}
	duffs := whole*DuffsPerDash + frac
	if neg {
		duffs = -duffs
	}
	return Amount(duffs), nil
}

func isDecimalDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Duffs returns the raw duff count.
func (a Amount) Duffs() int64 {
	return int64(a)
}

// String formats the amount with exactly eight fractional digits,
// e.g. 100000001 duffs -> "1.00000001".
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	u := uint64(v)
	if v < 0 {
		sign = "-"
		u = -u
	}
	return fmt.Sprintf("%s%d.%08d", sign, u/DuffsPerDash, u%DuffsPerDash)
}

// MarshalJSON emits the amount as a JSON number with exactly eight
// fractional digits. The literal is written directly, so the value is
// never rounded through a float.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts both the node's number form and a quoted decimal
// string. Either way the literal is routed through ParseAmount, so number
// and string forms cannot drift apart.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

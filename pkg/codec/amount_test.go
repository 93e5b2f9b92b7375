package codec_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/dashrpc/pkg/codec"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name      string
		input     string
		wantDuffs int64
		wantErr   error
	}{
		{
			name:      "integer",
			input:     "1",
			wantDuffs: 100_000_000,
		},
		{
			name:      "full precision",
			input:     "1.00000001",
			wantDuffs: 100_000_001,
		},
		{
			name:      "short fraction scales up",
			input:     "12.5",
			wantDuffs: 1_250_000_000,
		},
		{
			name:      "zero",
			input:     "0",
			wantDuffs: 0,
		},
		{
			name:      "smallest unit",
			input:     "0.00000001",
			wantDuffs: 1,
		},
		{
			name:      "negative",
			input:     "-3.25",
			wantDuffs: -325_000_000,
		},
		{
			name:      "bare fraction",
			input:     ".5",
			wantDuffs: 50_000_000,
		},
		{
			name:    "nine fractional digits",
			input:   "1.000000011",
			wantErr: codec.ErrPrecisionOverflow,
		},
		{
			name:    "not a number",
			input:   "abc",
			wantErr: codec.ErrInvalidAmount,
		},
		{
			name:    "exponent rejected",
			input:   "1e8",
			wantErr: codec.ErrInvalidAmount,
		},
		{
			name:    "lone dot",
			input:   ".",
			wantErr: codec.ErrInvalidAmount,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: codec.ErrInvalidAmount,
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := codec.ParseAmount(tc.input)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantDuffs, got.Duffs())
		})
	}
}

func TestAmountString(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name  string
		duffs int64
		want  string
	}{
		{name: "one dash", duffs: 100_000_000, want: "1.00000000"},
		{name: "one duff", duffs: 1, want: "0.00000001"},
		{name: "zero", duffs: 0, want: "0.00000000"},
		{name: "mixed", duffs: 1_250_000_000, want: "12.50000000"},
		{name: "negative", duffs: -100_000_001, want: "-1.00000001"},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, codec.AmountFromDuffs(tc.duffs).String())
		})
	}
}

func TestAmountRoundTrip(t *testing.T) {
	t.Parallel()

	// decode(encode(x)) == x over a spread of values.
	for _, duffs := range []int64{0, 1, 99, 100_000_000, 123_456_789_012, -1, -100_000_001} {
		a := codec.AmountFromDuffs(duffs)
		back, err := codec.ParseAmount(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}

	// encode(decode(s)) == s for canonical eight-digit literals.
	for _, s := range []string{"0.00000000", "1.00000001", "12.50000000", "-0.00000001"} {
		a, err := codec.ParseAmount(s)
		require.NoError(t, err)
		assert.Equal(t, s, a.String())
	}
}

func TestAmountJSON(t *testing.T) {
	t.Parallel()

	// The node's number form and the string form decode identically.
	var fromNumber, fromString codec.Amount
	require.NoError(t, json.Unmarshal([]byte(`12.5`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`"12.5"`), &fromString))
	assert.Equal(t, int64(1_250_000_000), fromNumber.Duffs())
	assert.Equal(t, fromNumber, fromString)

	// Marshalling writes the literal directly as a number.
	out, err := json.Marshal(codec.AmountFromDuffs(100_000_001))
	require.NoError(t, err)
	assert.Equal(t, `1.00000001`, string(out))

	var tooPrecise codec.Amount
	err = json.Unmarshal([]byte(`1.000000011`), &tooPrecise)
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrPrecisionOverflow))
}

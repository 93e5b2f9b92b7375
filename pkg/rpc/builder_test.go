package rpc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/dashrpc/pkg/rpc"
)

func raws(vals ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(vals))
	for _, v := range vals {
		out = append(out, json.RawMessage(v))
	}
	return out
}

func TestTrimDefaults(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name     string
		args     []json.RawMessage
		defaults []json.RawMessage
		want     []json.RawMessage
		wantErr  bool
	}{
		{
			name:     "trailing unset args are dropped",
			args:     raws(`0`, `null`, `null`),
			defaults: raws(`1`, `2`),
			want:     raws(`0`),
		},
		{
			name:     "set args survive untouched",
			args:     raws(`0`, `1`, `null`),
			defaults: raws(`2`),
			want:     raws(`0`, `1`),
		},
		{
			name:     "mid-list unset arg takes its default",
			args:     raws(`0`, `null`, `5`),
			defaults: raws(`2`, `3`),
			want:     raws(`0`, `2`, `5`),
		},
		{
			name:     "default substitution and tail trim combine",
			args:     raws(`0`, `null`, `5`, `null`),
			defaults: raws(`2`, `3`, `4`),
			want:     raws(`0`, `2`, `5`),
		},
		{
			name:     "all-optional list trims to nothing",
			args:     raws(`null`, `null`),
			defaults: raws(`2`, `3`),
			want:     raws(),
		},
		{
			name:     "required null stays literal",
			args:     raws(`null`, `1`),
			defaults: raws(),
			want:     raws(`null`, `1`),
		},
		{
			name:     "empty in empty out",
			args:     raws(),
			defaults: raws(),
			want:     raws(),
		},
		{
			name:     "single set optional kept",
			args:     raws(`0`),
			defaults: raws(`2`),
			want:     raws(`0`),
		},
		{
			name:     "unset arg with null default cannot be filled",
			args:     raws(`0`, `null`, `5`),
			defaults: raws(`null`, `null`),
			wantErr:  true,
		},
		{
			name:     "more defaults than args",
			args:     raws(`0`),
			defaults: raws(`1`, `2`),
			wantErr:  true,
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := rpc.TrimDefaults(tc.args, tc.defaults)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMarshalArgs(t *testing.T) {
	t.Parallel()

	var unset *int
	set := 7

	args, err := rpc.MarshalArgs("abc", true, unset, &set)
	require.NoError(t, err)
	assert.Equal(t, raws(`"abc"`, `true`, `null`, `7`), args)

	assert.True(t, rpc.IsNull(args[2]))
	assert.False(t, rpc.IsNull(args[3]))
	assert.True(t, rpc.IsNull(nil))
}

func TestMustMarshalArgsPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		rpc.MustMarshalArgs(func() {})
	})
}

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erc7824/dashrpc/pkg/codec"
)

func TestJSONKind(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		in   string
		want byte
	}{
		{`{"a":1}`, '{'},
		{`[1,2]`, '['},
		{`"text"`, '"'},
		{`true`, 't'},
		{`false`, 'f'},
		{`null`, 'n'},
		{`12.5`, '1'},
		{`-3`, '-'},
		{"  \t\n[]", '['},
		{``, 0},
		{"   ", 0},
	}

	for _, tc := range tcs {
		assert.Equal(t, tc.want, codec.JSONKind([]byte(tc.in)), "input %q", tc.in)
	}
}

package codec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/dashrpc/pkg/codec"
)

func TestEnumCodec(t *testing.T) {
	t.Parallel()

	colors := codec.NewEnumCodec(map[int64]string{
		1:   "red",
		2:   "green",
		100: "blue",
	})

	// Known tags decode and re-encode to the same tag.
	for tag := range map[int64]struct{}{1: {}, 2: {}, 100: {}} {
		v, err := colors.Decode(tag)
		require.NoError(t, err)

		back, err := colors.Encode(v)
		require.NoError(t, err)
		assert.Equal(t, tag, back)
	}

	// Out-of-range tags fail instead of defaulting.
	_, err := colors.Decode(42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrUnknownVariant))

	_, err = colors.Encode("magenta")
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrUnknownVariant))

	assert.True(t, colors.Knows(100))
	assert.False(t, colors.Knows(0))
}

func TestEnumCodecStringTags(t *testing.T) {
	t.Parallel()

	type stage uint8
	stages := codec.NewEnumCodec(map[string]stage{
		"STAGE_INITIAL":  0,
		"STAGE_FINISHED": 1,
	})

	v, err := stages.Decode("STAGE_FINISHED")
	require.NoError(t, err)
	assert.Equal(t, stage(1), v)

	tag, err := stages.Encode(stage(0))
	require.NoError(t, err)
	assert.Equal(t, "STAGE_INITIAL", tag)

	_, err = stages.Decode("STAGE_RETIRED")
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrUnknownVariant))

	_, err = stages.Encode(stage(7))
	require.Error(t, err)
	assert.True(t, errors.Is(err, codec.ErrUnknownVariant))
}

func TestEnumCodecDuplicateValuePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		codec.NewEnumCodec(map[int64]string{1: "same", 2: "same"})
	})
}

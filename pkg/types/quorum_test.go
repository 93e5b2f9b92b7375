package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/dashrpc/pkg/codec"
	"github.com/erc7824/dashrpc/pkg/types"
)

func TestQuorumTypeDecode(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		in   string
		want types.QuorumType
	}{
		{name: "numeric id", in: `1`, want: types.QuorumLlmq50_60},
		{name: "llmq name", in: `"llmq_400_85"`, want: types.QuorumLlmq400_85},
		{name: "rotated devnet name", in: `"llmq_devnet_dip0024"`, want: types.QuorumLlmqDevnetDip0024},
		{name: "single node name", in: `"llmq_1_100"`, want: types.QuorumLlmqSingleNode},
		{name: "unknown number", in: `42`, want: types.QuorumTypeUnknown},
		{name: "unknown name", in: `"llmq_0_0"`, want: types.QuorumTypeUnknown},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var qt types.QuorumType
			require.NoError(t, json.Unmarshal([]byte(tc.in), &qt))
			assert.Equal(t, tc.want, qt)
		})
	}
}

func TestQuorumTypeEncode(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(types.QuorumLlmq100_67)
	require.NoError(t, err)
	assert.Equal(t, `4`, string(out))

	assert.Equal(t, "llmq_100_67", types.QuorumLlmq100_67.String())
	assert.Equal(t, "unknown", types.QuorumTypeUnknown.String())
}

func TestQuorumListResultDecode(t *testing.T) {
	t.Parallel()

	body := `{
	  "llmq_50_60": [
	    "000000da4509523408c751905d4e48df335e3ee565b4d2288800c7e51d592e2f"
	  ],
	  "llmq_400_60": []
	}`

	var list types.QuorumListResult
	require.NoError(t, json.Unmarshal([]byte(body), &list))

	hashes := list.QuorumsByType[types.QuorumLlmq50_60]
	require.Len(t, hashes, 1)
	assert.Equal(t, "000000da4509523408c751905d4e48df335e3ee565b4d2288800c7e51d592e2f", hashes[0].String())
	assert.Empty(t, list.QuorumsByType[types.QuorumLlmq400_60])
}

func TestExtendedQuorumListResultDecode(t *testing.T) {
	t.Parallel()

	body := `{
	  "llmq_50_60": [
	    {
	      "000000da4509523408c751905d4e48df335e3ee565b4d2288800c7e51d592e2f": {
	        "creationHeight": 871992,
	        "minedBlockHash": "000000cd7f101437069956c0ca9f4180b41f0506827a828d57e85b35f215487e",
	        "numValidMembers": 50,
	        "healthRatio": "1.00"
	      }
	    }
	  ]
	}`

	var list types.ExtendedQuorumListResult
	require.NoError(t, json.Unmarshal([]byte(body), &list))

	byHash := list.QuorumsByType[types.QuorumLlmq50_60]
	require.Len(t, byHash, 1)

	hash, err := codec.NewHashFromHex("000000da4509523408c751905d4e48df335e3ee565b4d2288800c7e51d592e2f")
	require.NoError(t, err)

	details, ok := byHash[hash]
	require.True(t, ok)
	assert.Equal(t, uint32(871992), details.CreationHeight)
	assert.Equal(t, "000000cd7f101437069956c0ca9f4180b41f0506827a828d57e85b35f215487e", details.MinedBlockHash.String())
	assert.Equal(t, uint32(50), details.NumValidMembers)
	assert.InDelta(t, 1.0, float64(details.HealthRatio), 1e-9)
}

func TestQuorumSignResultShapes(t *testing.T) {
	t.Parallel()

	var accepted types.QuorumSignResult
	require.NoError(t, json.Unmarshal([]byte(`true`), &accepted))
	assert.True(t, accepted.Accepted())
	assert.Nil(t, accepted.Signature)

	body := `{
	  "llmqType": 1,
	  "quorumHash": "000000da4509523408c751905d4e48df335e3ee565b4d2288800c7e51d592e2f",
	  "id": "0102",
	  "msgHash": "0304",
	  "signHash": "0506",
	  "signature": "0708"
	}`
	var share types.QuorumSignResult
	require.NoError(t, json.Unmarshal([]byte(body), &share))
	require.NotNil(t, share.Signature)
	assert.Equal(t, types.QuorumLlmq50_60, share.Signature.LlmqType)
	assert.Equal(t, "0708", share.Signature.Signature.String())
	assert.False(t, share.Accepted())

	var bad types.QuorumSignResult
	require.Error(t, json.Unmarshal([]byte(`"nope"`), &bad))
}

func TestMemberDetailShapes(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name  string
		in    string
		check func(t *testing.T, d types.MemberDetail)
	}{
		{
			name: "count form",
			in:   `3`,
			check: func(t *testing.T, d types.MemberDetail) {
				require.NotNil(t, d.Count)
				assert.Equal(t, int32(3), *d.Count)
			},
		},
		{
			name: "index list form",
			in:   `[0,2,5]`,
			check: func(t *testing.T, d types.MemberDetail) {
				assert.Equal(t, []int32{0, 2, 5}, d.Indexes)
			},
		},
		{
			name: "member list form",
			in:   `[{"memberIndex":1,"proTxHash":"c560a9be2be9db79e1aaa16e4dd3cd22bddcb0155f88aba68aa4797d375ef370"}]`,
			check: func(t *testing.T, d types.MemberDetail) {
				require.Len(t, d.Members, 1)
				assert.Equal(t, uint32(1), d.Members[0].MemberIndex)
			},
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var d types.MemberDetail
			require.NoError(t, json.Unmarshal([]byte(tc.in), &d))
			tc.check(t, d)
		})
	}
}

func TestShapePolymorphsRejectForeignKinds(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		in   string
		dst  any
	}{
		{"sign result number", `123`, &types.QuorumSignResult{}},
		{"sign result null", `null`, &types.QuorumSignResult{}},
		{"member detail string", `"three"`, &types.MemberDetail{}},
		{"member detail object", `{"count":3}`, &types.MemberDetail{}},
		{"ratio object", `{}`, new(types.Ratio)},
		{"quorum type list", `[1]`, new(types.QuorumType)},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := json.Unmarshal([]byte(tc.in), tc.dst)
			require.Error(t, err)
			assert.ErrorIs(t, err, codec.ErrShapeMismatch)
		})
	}
}

package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/dashrpc/pkg/types"
)

const mnListDiffFixture = `{
  "baseHeight": 850000,
  "blockHeight": 867165,
  "addedMNs": [
    {
      "type": "Regular",
      "proTxHash": "c560a9be2be9db79e1aaa16e4dd3cd22bddcb0155f88aba68aa4797d375ef370",
      "collateralHash": "ff6226e6c97bfcf40b6d04e12e3f75678024988823bfba28cde2a9ac11b1a765",
      "collateralIndex": 1,
      "collateralAddress": "yNqYnF9sHURjwRmhZMLFGQ3WjC5DZNJMUi",
      "operatorReward": 0,
      "state": {
        "service": "194.135.88.228:6667",
        "registeredHeight": 850310,
        "lastPaidHeight": 0,
        "consecutivePayments": 0,
        "PoSePenalty": 0,
        "PoSeRevivedHeight": -1,
        "PoSeBanHeight": -1,
        "revocationReason": 0,
        "ownerAddress": "yPBWCdMRY5PsS3hJzs7csbdWQVRR85yxUz",
        "votingAddress": "ySM11LUD65Bi4p1gm68XLkdWc65TBKRzvQ",
        "payoutAddress": "yX4Ve7Q8Y4jscV4LZJD8HVCHKyePzR3MhA",
        "pubKeyOperator": "8ed3f0c208efbcfc815cbfb94490dc68cf2e29d44dd9f8a91e20e06057aa110d7062c8ab7ccc85a9ff0c88760157f563"
      }
    },
    {
      "type": "Evo",
      "proTxHash": "9a8cfd0e5fa3a7467b81a5a2fa41e40f7981591cfb62d86e35db37962c128bb0",
      "collateralHash": "35215134107b5e423d327cab12d2b4c60a9b769301096e05a95916676d2f7867",
      "collateralIndex": 0,
      "collateralAddress": "yd2PwFoqtEJdnJVSEzBDMxVnFVgEvJyvyY",
      "operatorReward": 0,
      "state": {
        "service": "172.17.0.1:20201",
        "registeredHeight": 1176,
        "lastPaidHeight": 1641,
        "consecutivePayments": 3,
        "PoSePenalty": 0,
        "PoSeRevivedHeight": -1,
        "PoSeBanHeight": -1,
        "revocationReason": 0,
        "ownerAddress": "yLtkvxSueGSufQZQq8L9GVHch9QRqJqGkZ",
        "votingAddress": "yLtkvxSueGSufQZQq8L9GVHch9QRqJqGkZ",
        "platformNodeID": "9f3ea5525b35daf58dd17e916b8ec03cd0fa2f0c",
        "platformP2PPort": 46856,
        "platformHTTPPort": 2643,
        "payoutAddress": "ybhjexnMcGckdJCyUwFu3F25zPo4mqQg1k",
        "pubKeyOperator": "a792ce1af5f7bb9281053b3934cb8b08d00d075a56498e1a525388ce467f188e8a80911fd96a20982baa9b9678452534"
      }
    }
  ],
  "removedMNs": [
    "a370c55db003676e937b1555196f92789506093e7b84eff6197f42617331b4c3",
    "51238bb9e2b68fc822e8eb15d415e97ebc86f769a72c15e0a6e25d9ea8d38475"
  ],
  "updatedMNs": [
    {
      "3bed128ba5c04b627627cf5d9f1dec0622caef4725d8d9d4c37c65642dce92ff": {
        "lastPaidHeight": 867103,
        "PoSePenalty": 0,
        "PoSeRevivedHeight": 854855,
        "PoSeBanHeight": -1
      }
    },
    {
      "8e7a3cbb99a9ce89685175ce3b3b5efe33498f22ddb539a2c66190390ff9e37e": {
        "lastPaidHeight": 867104,
        "PoSeRevivedHeight": 853498
      }
    }
  ]
}`

func TestMasternodeListDiffDecode(t *testing.T) {
	t.Parallel()

	var diff types.MasternodeListDiff
	require.NoError(t, json.Unmarshal([]byte(mnListDiffFixture), &diff))

	assert.Equal(t, uint32(850000), diff.BaseHeight)
	assert.Equal(t, uint32(867165), diff.BlockHeight)
	require.Len(t, diff.AddedMNs, 2)
	require.Len(t, diff.RemovedMNs, 2)
	require.Len(t, diff.UpdatedMNs, 2)

	regular := diff.AddedMNs[0]
	assert.Equal(t, types.MasternodeRegular, regular.Type)
	assert.Equal(t, "c560a9be2be9db79e1aaa16e4dd3cd22bddcb0155f88aba68aa4797d375ef370", regular.ProTxHash.String())
	assert.Equal(t, "194.135.88.228:6667", regular.State.Service)
	assert.Equal(t,
		"8ed3f0c208efbcfc815cbfb94490dc68cf2e29d44dd9f8a91e20e06057aa110d7062c8ab7ccc85a9ff0c88760157f563",
		regular.State.PubKeyOperator.String())
	// -1 in the PoSe fields means the height was never set.
	assert.False(t, regular.State.PoSeRevivedHeight.Valid)
	assert.False(t, regular.State.PoSeBanHeight.Valid)
	assert.Nil(t, regular.State.PlatformNodeID)

	evo := diff.AddedMNs[1]
	assert.Equal(t, types.MasternodeEvo, evo.Type)
	require.NotNil(t, evo.State.PlatformNodeID)
	assert.Equal(t, "9f3ea5525b35daf58dd17e916b8ec03cd0fa2f0c", *evo.State.PlatformNodeID)
	require.NotNil(t, evo.State.PlatformP2PPort)
	assert.Equal(t, uint32(46856), *evo.State.PlatformP2PPort)

	assert.Equal(t, "a370c55db003676e937b1555196f92789506093e7b84eff6197f42617331b4c3", diff.RemovedMNs[0].String())

	byHash := map[string]types.DMNStateDiff{}
	for _, u := range diff.UpdatedMNs {
		byHash[u.ProTxHash.String()] = u.Diff
	}

	first, ok := byHash["3bed128ba5c04b627627cf5d9f1dec0622caef4725d8d9d4c37c65642dce92ff"]
	require.True(t, ok)
	require.NotNil(t, first.LastPaidHeight)
	assert.Equal(t, uint32(867103), *first.LastPaidHeight)
	require.NotNil(t, first.PoSeRevivedHeight)
	assert.True(t, first.PoSeRevivedHeight.Valid)
	assert.Equal(t, uint32(854855), first.PoSeRevivedHeight.Height)
	// Reported -1 is distinct from a missing field.
	require.NotNil(t, first.PoSeBanHeight)
	assert.False(t, first.PoSeBanHeight.Valid)

	second, ok := byHash["8e7a3cbb99a9ce89685175ce3b3b5efe33498f22ddb539a2c66190390ff9e37e"]
	require.True(t, ok)
	assert.Nil(t, second.PoSeBanHeight)
	assert.Nil(t, second.Service)
}

func TestDMNStateApplyDiff(t *testing.T) {
	t.Parallel()

	state := types.DMNState{
		Service:        "194.135.88.228:6667",
		LastPaidHeight: 1,
	}

	newService := "10.0.0.1:9999"
	paid := uint32(867103)
	diff := types.DMNStateDiff{
		Service:        &newService,
		LastPaidHeight: &paid,
		PoSeBanHeight:  &types.OptionalHeight{},
	}

	state.Apply(&diff)
	assert.Equal(t, "10.0.0.1:9999", state.Service)
	assert.Equal(t, uint32(867103), state.LastPaidHeight)
	assert.False(t, state.PoSeBanHeight.Valid)
}

func TestOptionalHeightRoundTrip(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		in   string
		want types.OptionalHeight
	}{
		{name: "negative means unset", in: `-1`, want: types.OptionalHeight{}},
		{name: "zero is a height", in: `0`, want: types.OptionalHeight{Height: 0, Valid: true}},
		{name: "positive height", in: `861579`, want: types.OptionalHeight{Height: 861579, Valid: true}},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var h types.OptionalHeight
			require.NoError(t, json.Unmarshal([]byte(tc.in), &h))
			assert.Equal(t, tc.want, h)

			out, err := json.Marshal(h)
			require.NoError(t, err)
			if tc.want.Valid {
				assert.Equal(t, tc.in, string(out))
			} else {
				assert.Equal(t, `-1`, string(out))
			}
		})
	}
}

func TestMnSyncStatusDecode(t *testing.T) {
	t.Parallel()

	body := `{
	  "AssetID": 999,
	  "AssetName": "MASTERNODE_SYNC_FINISHED",
	  "AssetStartTime": 1507662300,
	  "Attempt": 0,
	  "IsBlockchainSynced": true,
	  "IsSynced": true
	}`

	var status types.MnSyncStatus
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.Equal(t, uint16(999), status.AssetID)
	assert.Equal(t, types.MnSyncFinished, status.AssetName)
	assert.True(t, status.IsSynced)

	var bad types.MnSyncStatus
	err := json.Unmarshal([]byte(`{"AssetName":"MASTERNODE_SYNC_NOPE"}`), &bad)
	require.Error(t, err)
}

func TestMasternodeStatusOutpoint(t *testing.T) {
	t.Parallel()

	var op types.OutPoint
	require.NoError(t, json.Unmarshal(
		[]byte(`"ff6226e6c97bfcf40b6d04e12e3f75678024988823bfba28cde2a9ac11b1a765-1"`), &op))
	assert.Equal(t, "ff6226e6c97bfcf40b6d04e12e3f75678024988823bfba28cde2a9ac11b1a765", op.Txid.String())
	assert.Equal(t, uint32(1), op.Vout)

	out, err := json.Marshal(op)
	require.NoError(t, err)
	assert.Equal(t, `"ff6226e6c97bfcf40b6d04e12e3f75678024988823bfba28cde2a9ac11b1a765-1"`, string(out))

	require.Error(t, json.Unmarshal([]byte(`"deadbeef"`), &op))
}

package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/dashrpc/pkg/types"
)

func TestGetBlockResultDecode(t *testing.T) {
	t.Parallel()

	body := `{
	  "hash": "000000cd7f101437069956c0ca9f4180b41f0506827a828d57e85b35f215487e",
	  "confirmations": 12,
	  "size": 2812,
	  "height": 867165,
	  "version": 536870912,
	  "versionHex": "20000000",
	  "merkleroot": "ff6226e6c97bfcf40b6d04e12e3f75678024988823bfba28cde2a9ac11b1a765",
	  "tx": [
	    "c560a9be2be9db79e1aaa16e4dd3cd22bddcb0155f88aba68aa4797d375ef370"
	  ],
	  "cbTx": {
	    "version": 2,
	    "height": 867165,
	    "merkleRootMNList": "aabb",
	    "merkleRootQuorums": "ccdd"
	  },
	  "time": 1507662300,
	  "mediantime": 1507662100,
	  "nonce": 1234567,
	  "bits": "1a0fffff",
	  "difficulty": 1048576.5,
	  "chainwork": "0000000000000000000000000000000000000000000000000000000100010001",
	  "nTx": 1,
	  "previousblockhash": "000000da4509523408c751905d4e48df335e3ee565b4d2288800c7e51d592e2f",
	  "chainlock": true
	}`

	var block types.GetBlockResult
	require.NoError(t, json.Unmarshal([]byte(body), &block))
	assert.Equal(t, "000000cd7f101437069956c0ca9f4180b41f0506827a828d57e85b35f215487e", block.Hash.String())
	assert.Equal(t, uint64(867165), block.Height)
	require.Len(t, block.Tx, 1)
	assert.Equal(t, uint64(867165), block.CbTx.Height)
	assert.Equal(t, "aabb", block.CbTx.MerkleRootMNList.String())
	require.NotNil(t, block.PreviousBlockHash)
	assert.Nil(t, block.NextBlockHash)
	assert.True(t, block.ChainLock)
}

func TestGetMempoolEntryResultSizeAlias(t *testing.T) {
	t.Parallel()

	// Newer nodes report vsize, older ones size.
	var entry types.GetMempoolEntryResult
	require.NoError(t, json.Unmarshal([]byte(
		`{"vsize":225,"time":1,"height":2,"descendantcount":1,"descendantsize":225,"ancestorcount":1,"ancestorsize":225,"fees":{"base":0.00000225,"modified":0.00000225,"ancestor":0.00000225,"descendant":0.00000225},"depends":[],"spentby":[]}`), &entry))
	assert.Equal(t, uint64(225), entry.VSize)

	require.NoError(t, json.Unmarshal([]byte(
		`{"size":300,"time":1,"height":2,"descendantcount":1,"descendantsize":300,"ancestorcount":1,"ancestorsize":300,"fees":{"base":0.00000225,"modified":0.00000225,"ancestor":0.00000225,"descendant":0.00000225},"depends":[],"spentby":[]}`), &entry))
	assert.Equal(t, uint64(300), entry.VSize)
	assert.Equal(t, int64(225), int64(entry.Fees.Base))
}

func TestScanTxOutRequestForms(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(types.ScanTxOutRequest{Desc: "addr(yNqYnF9s)"})
	require.NoError(t, err)
	assert.Equal(t, `"addr(yNqYnF9s)"`, string(out))

	rng := [2]uint64{0, 100}
	out, err = json.Marshal(types.ScanTxOutRequest{Desc: "pkh(xpub...)", Range: &rng})
	require.NoError(t, err)
	assert.JSONEq(t, `{"desc":"pkh(xpub...)","range":[0,100]}`, string(out))

	var req types.ScanTxOutRequest
	require.NoError(t, json.Unmarshal([]byte(`{"desc":"pkh(xpub...)","range":[5,10]}`), &req))
	require.NotNil(t, req.Range)
	assert.Equal(t, [2]uint64{5, 10}, *req.Range)
}

func TestVinCoinbaseDetection(t *testing.T) {
	t.Parallel()

	var coinbase types.Vin
	require.NoError(t, json.Unmarshal([]byte(`{"coinbase":"04ffff001d0104","sequence":4294967295}`), &coinbase))
	assert.True(t, coinbase.IsCoinbase())

	var spend types.Vin
	require.NoError(t, json.Unmarshal([]byte(
		`{"txid":"ff6226e6c97bfcf40b6d04e12e3f75678024988823bfba28cde2a9ac11b1a765","vout":1,"sequence":4294967294}`), &spend))
	assert.False(t, spend.IsCoinbase())
	require.NotNil(t, spend.Vout)
	assert.Equal(t, uint32(1), *spend.Vout)
}

func TestProTxListShapes(t *testing.T) {
	t.Parallel()

	var hashes types.ProTxList
	require.NoError(t, json.Unmarshal([]byte(
		`["c560a9be2be9db79e1aaa16e4dd3cd22bddcb0155f88aba68aa4797d375ef370"]`), &hashes))
	assert.False(t, hashes.Detailed())
	require.Len(t, hashes.Hashes, 1)

	body := `[{
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
	  },
	  "confirmations": 12,
	  "metaInfo": {
	    "lastDSQ": 0,
	    "mixingTxCount": 0,
	    "lastOutboundAttempt": 0,
	    "lastOutboundAttemptElapsed": 0,
	    "lastOutboundSuccess": 0,
	    "lastOutboundSuccessElapsed": 0
	  }
	}]`

	var infos types.ProTxList
	require.NoError(t, json.Unmarshal([]byte(body), &infos))
	assert.True(t, infos.Detailed())
	require.Len(t, infos.Infos, 1)
	assert.Equal(t, uint32(12), infos.Infos[0].Confirmations)
}

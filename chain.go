package dashrpc

import (
	"context"
	"strconv"

	"github.com/erc7824/dashrpc/pkg/codec"
	"github.com/erc7824/dashrpc/pkg/rpc"
	"github.com/erc7824/dashrpc/pkg/types"
)

// GetBestBlockHash returns the hash of the chain tip.
func (c *Client) GetBestBlockHash(ctx context.Context) (types.BlockHash, error) {
	var hash types.BlockHash
	err := c.call(ctx, "getbestblockhash", nil, &hash)
	return hash, err
}

// GetBestChainLock returns the most recent chain lock the node has seen.
func (c *Client) GetBestChainLock(ctx context.Context) (*types.GetBestChainLockResult, error) {
	var res types.GetBestChainLockResult
	err := c.call(ctx, "getbestchainlock", nil, &res)
	return &res, err
}

// GetBlockchainInfo returns the state of the block chain.
func (c *Client) GetBlockchainInfo(ctx context.Context) (*types.GetBlockchainInfoResult, error) {
	var res types.GetBlockchainInfoResult
	err := c.call(ctx, "getblockchaininfo", nil, &res)
	return &res, err
}

// GetBlockCount returns the height of the chain tip.
func (c *Client) GetBlockCount(ctx context.Context) (uint64, error) {
	var count uint64
	err := c.call(ctx, "getblockcount", nil, &count)
	return count, err
}

// GetBlockHash returns the hash of the block at the given height.
func (c *Client) GetBlockHash(ctx context.Context, height uint32) (types.BlockHash, error) {
	var hash types.BlockHash
	err := c.call(ctx, "getblockhash", nil, &hash, height)
	return hash, err
}

// GetBlockHex returns the serialized block (verbosity 0).
func (c *Client) GetBlockHex(ctx context.Context, hash types.BlockHash) (codec.HexBytes, error) {
	var raw codec.HexBytes
	err := c.call(ctx, "getblock", nil, &raw, hash, 0)
	return raw, err
}

// GetBlock returns the decoded block (verbosity 1).
func (c *Client) GetBlock(ctx context.Context, hash types.BlockHash) (*types.GetBlockResult, error) {
	var res types.GetBlockResult
	err := c.call(ctx, "getblock", nil, &res, hash, 1)
	return &res, err
}

// GetBlockHeaderHex returns the serialized block header.
func (c *Client) GetBlockHeaderHex(ctx context.Context, hash types.BlockHash) (codec.HexBytes, error) {
	var raw codec.HexBytes
	err := c.call(ctx, "getblockheader", nil, &raw, hash, false)
	return raw, err
}

// GetBlockHeader returns the decoded block header.
func (c *Client) GetBlockHeader(ctx context.Context, hash types.BlockHash) (*types.GetBlockHeaderResult, error) {
	var res types.GetBlockHeaderResult
	err := c.call(ctx, "getblockheader", nil, &res, hash, true)
	return &res, err
}

// GetBlockStats computes all per-block statistics for the block at the
// given height.
func (c *Client) GetBlockStats(ctx context.Context, height uint32) (*types.GetBlockStatsResult, error) {
	var res types.GetBlockStatsResult
	err := c.call(ctx, "getblockstats", nil, &res, height)
	return &res, err
}

// GetBlockStatsFields computes only the selected per-block statistics for
// the block at the given height.
func (c *Client) GetBlockStatsFields(ctx context.Context, height uint32, fields []types.BlockStatsField) (*types.GetBlockStatsResultPartial, error) {
	var res types.GetBlockStatsResultPartial
	err := c.call(ctx, "getblockstats", nil, &res, height, fields)
	return &res, err
}

// GetBlockFilter returns the BIP-157 filter of the given block.
func (c *Client) GetBlockFilter(ctx context.Context, hash types.BlockHash) (*types.GetBlockFilterResult, error) {
	var res types.GetBlockFilterResult
	err := c.call(ctx, "getblockfilter", nil, &res, hash)
	return &res, err
}

// GetChainTips returns every known tip of the block tree, including stale
// branches.
func (c *Client) GetChainTips(ctx context.Context) ([]types.ChainTip, error) {
	var tips []types.ChainTip
	err := c.call(ctx, "getchaintips", nil, &tips)
	return tips, err
}

// GetDifficulty returns the proof-of-work difficulty at the chain tip.
func (c *Client) GetDifficulty(ctx context.Context) (float64, error) {
	var difficulty float64
	err := c.call(ctx, "getdifficulty", nil, &difficulty)
	return difficulty, err
}

// GetMempoolEntry returns mempool data for the given transaction.
func (c *Client) GetMempoolEntry(ctx context.Context, txid types.Txid) (*types.GetMempoolEntryResult, error) {
	var res types.GetMempoolEntryResult
	err := c.call(ctx, "getmempoolentry", nil, &res, txid)
	return &res, err
}

// GetRawMempool returns the txids of every transaction in the mempool.
func (c *Client) GetRawMempool(ctx context.Context) ([]types.Txid, error) {
	var txids []types.Txid
	err := c.call(ctx, "getrawmempool", nil, &txids)
	return txids, err
}

// GetTxOut returns details about an unspent transaction output, or nil if
// the output is spent or unknown.
func (c *Client) GetTxOut(ctx context.Context, txid types.Txid, vout uint32, includeMempool *bool) (*types.GetTxOutResult, error) {
	var res *types.GetTxOutResult
	err := c.call(ctx, "gettxout", rpc.MustMarshalArgs(nil), &res, txid, vout, includeMempool)
	return res, err
}

// GetTxOutProof returns a merkle proof that the given transactions are
// included in a block.
func (c *Client) GetTxOutProof(ctx context.Context, txids []types.Txid, blockHash *types.BlockHash) (codec.HexBytes, error) {
	var proof codec.HexBytes
	err := c.call(ctx, "gettxoutproof", rpc.MustMarshalArgs(nil), &proof, txids, blockHash)
	return proof, err
}

// GetTxOutSetInfo returns statistics about the unspent transaction output
// set. This call can take a while on the node.
func (c *Client) GetTxOutSetInfo(ctx context.Context) (*types.GetTxOutSetInfoResult, error) {
	var res types.GetTxOutSetInfoResult
	err := c.call(ctx, "gettxoutsetinfo", nil, &res)
	return &res, err
}

// GetMiningInfo returns mining-related state.
func (c *Client) GetMiningInfo(ctx context.Context) (*types.GetMiningInfoResult, error) {
	var res types.GetMiningInfoResult
	err := c.call(ctx, "getmininginfo", nil, &res)
	return &res, err
}

// GetBlockTemplate returns a block template for mining. The request
// declares which block rules and client features the miner supports.
func (c *Client) GetBlockTemplate(ctx context.Context, request types.GetBlockTemplateRequest) (*types.GetBlockTemplateResult, error) {
	var res types.GetBlockTemplateResult
	err := c.call(ctx, "getblocktemplate", nil, &res, request)
	return &res, err
}

// GetNetworkHashPS estimates the network hashes per second over the last
// nBlocks blocks, ending at the given height. Nil arguments use the node's
// defaults.
func (c *Client) GetNetworkHashPS(ctx context.Context, nBlocks, height *uint64) (float64, error) {
	var hashPS float64
	err := c.call(ctx, "getnetworkhashps", rpc.MustMarshalArgs(nil, nil), &hashPS, nBlocks, height)
	return hashPS, err
}

// Uptime returns the node's uptime in seconds.
func (c *Client) Uptime(ctx context.Context) (uint64, error) {
	var uptime uint64
	err := c.call(ctx, "uptime", nil, &uptime)
	return uptime, err
}

// WaitForNewBlock waits for any new block and returns the tip. A zero
// timeout (milliseconds) waits indefinitely; on timeout the current tip
// is returned.
func (c *Client) WaitForNewBlock(ctx context.Context, timeoutMS uint64) (*types.BlockRef, error) {
	var res types.BlockRef
	err := c.call(ctx, "waitfornewblock", nil, &res, timeoutMS)
	return &res, err
}

// WaitForBlock waits until the given block is seen and returns the tip.
// A zero timeout (milliseconds) waits indefinitely.
func (c *Client) WaitForBlock(ctx context.Context, hash types.BlockHash, timeoutMS uint64) (*types.BlockRef, error) {
	var res types.BlockRef
	err := c.call(ctx, "waitforblock", nil, &res, hash, timeoutMS)
	return &res, err
}

// ScanTxOutSet scans the UTXO set for outputs matching the given
// descriptors. The call blocks until the scan finishes.
func (c *Client) ScanTxOutSet(ctx context.Context, descriptors []types.ScanTxOutRequest) (*types.ScanTxOutResult, error) {
	var res types.ScanTxOutResult
	err := c.call(ctx, "scantxoutset", nil, &res, "start", descriptors)
	return &res, err
}

// GetTxChainLocks returns the chain lock status of each given transaction.
// Entries are nil for transactions the node does not know.
func (c *Client) GetTxChainLocks(ctx context.Context, txids []types.Txid) ([]*types.GetTransactionLockedResult, error) {
	var res []*types.GetTransactionLockedResult
	err := c.call(ctx, "gettxchainlocks", nil, &res, txids)
	return res, err
}

// GetAssetUnlockStatuses returns the platform asset unlock status of each
// given withdrawal index. With a height only Chainlocked or Unknown are
// reported.
func (c *Client) GetAssetUnlockStatuses(ctx context.Context, indices []uint64, height *uint32) ([]types.AssetUnlockStatusResult, error) {
	// The node takes the indices as decimal strings.
	strs := make([]string, 0, len(indices))
	for _, index := range indices {
		strs = append(strs, strconv.FormatUint(index, 10))
	}
	var res []types.AssetUnlockStatusResult
	err := c.call(ctx, "getassetunlockstatuses", nil, &res, strs, height)
	return res, err
}

// VerifyChainLock tests whether a quorum signature is a valid chain lock
// for the given block.
func (c *Client) VerifyChainLock(ctx context.Context, blockHash types.BlockHash, signature codec.HexBytes, height *uint32) (bool, error) {
	var valid bool
	err := c.call(ctx, "verifychainlock", rpc.MustMarshalArgs(nil), &valid, blockHash, signature, height)
	return valid, err
}

// SubmitChainLock submits a chain lock to the node. The returned height is
// the best chain-locked height the node knows afterwards; a value below
// the submitted height means the lock was accepted before its block.
func (c *Client) SubmitChainLock(ctx context.Context, blockHash types.BlockHash, signature codec.HexBytes, height uint32) (uint32, error) {
	var best uint32
	err := c.call(ctx, "submitchainlock", rpc.MustMarshalArgs(nil), &best, blockHash, signature, height)
	return best, err
}

// VerifyInstantSendLock tests whether a quorum signature is a valid
// InstantSend lock for the given transaction.
func (c *Client) VerifyInstantSendLock(ctx context.Context, id codec.HexBytes, txid types.Txid, signature codec.HexBytes, maxHeight *uint32) (bool, error) {
	var valid bool
	err := c.call(ctx, "verifyislock", rpc.MustMarshalArgs(nil), &valid, id, txid, signature, maxHeight)
	return valid, err
}

// Generate mines up to numBlocks blocks to a wallet address. Regtest
// only; removed from recent node versions in favor of generatetoaddress.
func (c *Client) Generate(ctx context.Context, numBlocks uint64, maxTries *uint64) ([]types.BlockHash, error) {
	var hashes []types.BlockHash
	err := c.call(ctx, "generate", nil, &hashes, numBlocks, maxTries)
	return hashes, err
}

// GenerateToAddress mines the given number of blocks paying coinbase to
// address. Regtest only.
func (c *Client) GenerateToAddress(ctx context.Context, numBlocks uint64, address string) ([]types.BlockHash, error) {
	var hashes []types.BlockHash
	err := c.call(ctx, "generatetoaddress", nil, &hashes, numBlocks, address)
	return hashes, err
}

// InvalidateBlock marks a block as invalid.
func (c *Client) InvalidateBlock(ctx context.Context, hash types.BlockHash) error {
	return c.call(ctx, "invalidateblock", nil, nil, hash)
}

// ReconsiderBlock removes the invalid mark from a block.
func (c *Client) ReconsiderBlock(ctx context.Context, hash types.BlockHash) error {
	return c.call(ctx, "reconsiderblock", nil, nil, hash)
}

// Stop asks the node to shut down.
func (c *Client) Stop(ctx context.Context) (string, error) {
	var msg string
	err := c.call(ctx, "stop", nil, &msg)
	return msg, err
}

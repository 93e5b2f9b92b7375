package dashrpc

import (
	"context"

	"github.com/erc7824/dashrpc/pkg/codec"
	"github.com/erc7824/dashrpc/pkg/rpc"
	"github.com/erc7824/dashrpc/pkg/types"
)

// GetRawTransactionHex returns the serialized transaction. blockHash
// narrows the lookup to one block for nodes without a full tx index.
func (c *Client) GetRawTransactionHex(ctx context.Context, txid types.Txid, blockHash *types.BlockHash) (codec.HexBytes, error) {
	var raw codec.HexBytes
	err := c.call(ctx, "getrawtransaction", rpc.MustMarshalArgs(nil), &raw, txid, false, blockHash)
	return raw, err
}

// GetRawTransaction returns the decoded transaction.
func (c *Client) GetRawTransaction(ctx context.Context, txid types.Txid, blockHash *types.BlockHash) (*types.GetRawTransactionResult, error) {
	var res types.GetRawTransactionResult
	err := c.call(ctx, "getrawtransaction", rpc.MustMarshalArgs(nil), &res, txid, true, blockHash)
	return &res, err
}

// GetRawTransactionMulti fetches several serialized transactions at once,
// grouped by the block each set is expected in.
func (c *Client) GetRawTransactionMulti(ctx context.Context, txidsByBlock map[types.BlockHash][]types.Txid) (map[types.Txid]codec.HexBytes, error) {
	var res map[types.Txid]codec.HexBytes
	err := c.call(ctx, "getrawtransactionmulti", rpc.MustMarshalArgs(nil), &res, txidsByBlock, false)
	return res, err
}

// DecodeRawTransaction decodes a serialized transaction without needing it
// to be known to the node.
func (c *Client) DecodeRawTransaction(ctx context.Context, tx codec.HexBytes) (*types.GetRawTransactionResult, error) {
	var res types.GetRawTransactionResult
	err := c.call(ctx, "decoderawtransaction", nil, &res, tx)
	return &res, err
}

// CreateRawTransaction builds an unsigned transaction spending the given
// inputs to the given address->amount outputs.
func (c *Client) CreateRawTransaction(ctx context.Context, inputs []types.CreateRawTransactionInput, outputs map[string]codec.Amount, locktime *int64) (codec.HexBytes, error) {
	var raw codec.HexBytes
	err := c.call(ctx, "createrawtransaction", rpc.MustMarshalArgs(int64(0), nil), &raw, inputs, outputs, locktime)
	return raw, err
}

// FundRawTransaction adds inputs and a change output until the transaction
// is fully funded.
func (c *Client) FundRawTransaction(ctx context.Context, tx codec.HexBytes, options *types.FundRawTransactionOptions) (*types.FundRawTransactionResult, error) {
	var res types.FundRawTransactionResult
	err := c.call(ctx, "fundrawtransaction", rpc.MustMarshalArgs(struct{}{}, nil), &res, tx, options)
	return &res, err
}

// SignRawTransactionWithWallet signs the transaction with keys from the
// wallet. prevTxs describes outputs this transaction spends that the node
// may not know yet.
func (c *Client) SignRawTransactionWithWallet(ctx context.Context, tx codec.HexBytes, prevTxs []types.SignRawTransactionInput, sigHashType *types.SigHashType) (*types.SignRawTransactionResult, error) {
	var res types.SignRawTransactionResult
	err := c.call(ctx, "signrawtransactionwithwallet",
		rpc.MustMarshalArgs([]types.SignRawTransactionInput{}, nil), &res, tx, prevTxs, sigHashType)
	return &res, err
}

// SignRawTransactionWithKey signs the transaction with the given private
// keys (WIF-encoded).
func (c *Client) SignRawTransactionWithKey(ctx context.Context, tx codec.HexBytes, privKeys []string, prevTxs []types.SignRawTransactionInput, sigHashType *types.SigHashType) (*types.SignRawTransactionResult, error) {
	var res types.SignRawTransactionResult
	err := c.call(ctx, "signrawtransactionwithkey",
		rpc.MustMarshalArgs([]types.SignRawTransactionInput{}, nil), &res, tx, privKeys, prevTxs, sigHashType)
	return &res, err
}

// SendRawTransaction broadcasts a signed transaction and returns its txid.
func (c *Client) SendRawTransaction(ctx context.Context, tx codec.HexBytes) (types.Txid, error) {
	var txid types.Txid
	err := c.call(ctx, "sendrawtransaction", nil, &txid, tx)
	return txid, err
}

// TestMempoolAccept checks whether the given signed transactions would be
// accepted into the mempool, without broadcasting them.
func (c *Client) TestMempoolAccept(ctx context.Context, txs []codec.HexBytes) ([]types.TestMempoolAcceptResult, error) {
	var res []types.TestMempoolAcceptResult
	err := c.call(ctx, "testmempoolaccept", nil, &res, txs)
	return res, err
}

// CombinePSBT merges several partially signed transactions for the same
// underlying transaction into one.
func (c *Client) CombinePSBT(ctx context.Context, psbts []string) (string, error) {
	var combined string
	err := c.call(ctx, "combinepsbt", nil, &combined, psbts)
	return combined, err
}

// FinalizePSBT finalizes the inputs of a partially signed transaction.
// extract controls whether the fully signed network transaction is
// extracted; the node defaults to true.
func (c *Client) FinalizePSBT(ctx context.Context, psbt string, extract *bool) (*types.FinalizePsbtResult, error) {
	var res types.FinalizePsbtResult
	err := c.call(ctx, "finalizepsbt", rpc.MustMarshalArgs(true), &res, psbt, extract)
	return &res, err
}

// GetDescriptorInfo analyzes an output descriptor.
func (c *Client) GetDescriptorInfo(ctx context.Context, descriptor string) (*types.GetDescriptorInfoResult, error) {
	var res types.GetDescriptorInfoResult
	err := c.call(ctx, "getdescriptorinfo", nil, &res, descriptor)
	return &res, err
}

// DeriveAddresses derives the addresses of an output descriptor. indexRange
// is required for ranged descriptors.
func (c *Client) DeriveAddresses(ctx context.Context, descriptor string, indexRange *[2]uint32) ([]string, error) {
	var addresses []string
	err := c.call(ctx, "deriveaddresses", rpc.MustMarshalArgs(nil), &addresses, descriptor, indexRange)
	return addresses, err
}

// EstimateSmartFee estimates the fee rate needed to confirm within
// confTarget blocks.
func (c *Client) EstimateSmartFee(ctx context.Context, confTarget uint16, mode *types.EstimateMode) (*types.EstimateSmartFeeResult, error) {
	var res types.EstimateSmartFeeResult
	err := c.call(ctx, "estimatesmartfee", rpc.MustMarshalArgs(nil), &res, confTarget, mode)
	return &res, err
}

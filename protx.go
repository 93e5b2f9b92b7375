package dashrpc

import (
	"context"

	"github.com/erc7824/dashrpc/pkg/codec"
	"github.com/erc7824/dashrpc/pkg/rpc"
	"github.com/erc7824/dashrpc/pkg/types"
)

// ProTxDiff returns the simplified masternode list diff between two
// heights, with the coinbase merkle proof.
func (c *Client) ProTxDiff(ctx context.Context, baseBlock, block uint32) (*types.SimplifiedMasternodeListDiff, error) {
	var res types.SimplifiedMasternodeListDiff
	err := c.call(ctx, "protx", rpc.MustMarshalArgs(nil), &res, "diff", baseBlock, block)
	return &res, err
}

// ProTxListDiff returns the full deterministic masternode list diff
// between two heights.
func (c *Client) ProTxListDiff(ctx context.Context, baseBlock, block uint32) (*types.MasternodeListDiff, error) {
	var res types.MasternodeListDiff
	err := c.call(ctx, "protx", rpc.MustMarshalArgs(nil, nil), &res, "listdiff", baseBlock, block)
	return &res, err
}

// ProTxInfo returns detailed information about a deterministic masternode,
// at the given block or the tip when nil.
func (c *Client) ProTxInfo(ctx context.Context, proTxHash types.ProTxHash, blockHash *types.BlockHash) (*types.ProTxInfo, error) {
	var res types.ProTxInfo
	err := c.call(ctx, "protx", rpc.MustMarshalArgs(nil), &res, "info", proTxHash, blockHash)
	return &res, err
}

// ProTxList returns provider transactions, as bare hashes or detailed
// entries depending on detailed.
func (c *Client) ProTxList(ctx context.Context, listType *types.ProTxListType, detailed *bool, height *uint32) (*types.ProTxList, error) {
	var res types.ProTxList
	err := c.call(ctx, "protx", rpc.MustMarshalArgs(nil), &res, "list", listType, detailed, height)
	return &res, err
}

// ProTxRegister creates a ProRegTx referencing an existing collateral and
// sends it to the network.
func (c *Client) ProTxRegister(ctx context.Context, collateralHash string, collateralIndex uint32, ipAndPort, ownerAddress string, operatorPubKey codec.HexBytes, votingAddress string, operatorReward float32, payoutAddress string, feeSourceAddress *string, submit *bool) (types.ProTxHash, error) {
	var hash types.ProTxHash
	err := c.call(ctx, "protx", rpc.MustMarshalArgs(nil), &hash,
		"register", collateralHash, collateralIndex, ipAndPort, ownerAddress,
		operatorPubKey, votingAddress, operatorReward, payoutAddress,
		feeSourceAddress, submit)
	return hash, err
}

// ProTxRegisterFund creates and funds a ProRegTx with the 1000 DASH
// collateral, then sends it to the network.
func (c *Client) ProTxRegisterFund(ctx context.Context, collateralAddress, ipAndPort, ownerAddress string, operatorPubKey codec.HexBytes, votingAddress string, operatorReward float32, payoutAddress string, fundAddress *string, submit *bool) (types.ProTxHash, error) {
	var hash types.ProTxHash
	err := c.call(ctx, "protx", rpc.MustMarshalArgs(nil), &hash,
		"register_fund", collateralAddress, ipAndPort, ownerAddress,
		operatorPubKey, votingAddress, operatorReward, payoutAddress,
		fundAddress, submit)
	return hash, err
}

// ProTxRegisterPrepare creates an unsigned ProRegTx and the collateral
// message that must be signed externally.
func (c *Client) ProTxRegisterPrepare(ctx context.Context, collateralHash string, collateralIndex uint32, ipAndPort, ownerAddress string, operatorPubKey codec.HexBytes, votingAddress string, operatorReward float32, payoutAddress string, feeSourceAddress *string) (*types.ProTxRegPrepare, error) {
	var res types.ProTxRegPrepare
	err := c.call(ctx, "protx", rpc.MustMarshalArgs(nil), &res,
		"register_prepare", collateralHash, collateralIndex, ipAndPort,
		ownerAddress, operatorPubKey, votingAddress, operatorReward,
		payoutAddress, feeSourceAddress)
	return &res, err
}

// ProTxRegisterSubmit combines an unsigned ProRegTx with the external
// collateral signature and broadcasts it.
func (c *Client) ProTxRegisterSubmit(ctx context.Context, tx, sig string) (types.ProTxHash, error) {
	var hash types.ProTxHash
	err := c.call(ctx, "protx", rpc.MustMarshalArgs(nil), &hash, "register_submit", tx, sig)
	return hash, err
}

// ProTxRevoke creates and sends a ProUpRevTx, revoking the masternode's
// operator.
func (c *Client) ProTxRevoke(ctx context.Context, proTxHash string, operatorPrivKey string, reason types.ProTxRevokeReason, feeSourceAddress *string) (types.ProTxHash, error) {
	var hash types.ProTxHash
	err := c.call(ctx, "protx", rpc.MustMarshalArgs(nil), &hash,
		"revoke", proTxHash, operatorPrivKey, uint8(reason), feeSourceAddress)
	return hash, err
}

// ProTxUpdateRegistrar creates and sends a ProUpRegTx, updating the
// masternode's operator key, voting address or payout address.
func (c *Client) ProTxUpdateRegistrar(ctx context.Context, proTxHash string, operatorPubKey codec.HexBytes, votingAddress, payoutAddress string, feeSourceAddress *string) (types.ProTxHash, error) {
	var hash types.ProTxHash
	err := c.call(ctx, "protx", rpc.MustMarshalArgs(nil), &hash,
		"update_registrar", proTxHash, operatorPubKey, votingAddress,
		payoutAddress, feeSourceAddress)
	return hash, err
}

// ProTxUpdateService creates and sends a ProUpServTx, updating the
// masternode's service address.
func (c *Client) ProTxUpdateService(ctx context.Context, proTxHash, ipAndPort, operatorKey string, operatorPayoutAddress, feeSourceAddress *string) (types.ProTxHash, error) {
	var hash types.ProTxHash
	err := c.call(ctx, "protx", rpc.MustMarshalArgs(nil), &hash,
		"update_service", proTxHash, ipAndPort, operatorKey,
		operatorPayoutAddress, feeSourceAddress)
	return hash, err
}

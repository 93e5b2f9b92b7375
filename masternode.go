package dashrpc

import (
	"context"

	"github.com/erc7824/dashrpc/pkg/rpc"
	"github.com/erc7824/dashrpc/pkg/types"
)

// GetMasternodeCount returns the number of known masternodes.
func (c *Client) GetMasternodeCount(ctx context.Context) (*types.GetMasternodeCountResult, error) {
	var res types.GetMasternodeCountResult
	err := c.call(ctx, "masternode", nil, &res, "count")
	return &res, err
}

// GetMasternodeList returns the known masternodes keyed by collateral
// outpoint. mode selects the output format (the node defaults to "json");
// filter narrows the list by substring.
func (c *Client) GetMasternodeList(ctx context.Context, mode, filter *string) (map[string]types.Masternode, error) {
	var res map[string]types.Masternode
	err := c.call(ctx, "masternode", rpc.MustMarshalArgs("json", nil), &res, "list", mode, filter)
	return res, err
}

// GetMasternodeOutputs returns the wallet outputs usable as masternode
// collateral, as txid to output-index pairs.
func (c *Client) GetMasternodeOutputs(ctx context.Context) (map[string]string, error) {
	var res map[string]string
	err := c.call(ctx, "masternode", nil, &res, "outputs")
	return res, err
}

// GetMasternodePayments returns the masternode payments of one or more
// blocks, starting at blockHash (tip when nil), count blocks forward or
// backward.
func (c *Client) GetMasternodePayments(ctx context.Context, blockHash, count *string) ([]types.GetMasternodePaymentsResult, error) {
	var res []types.GetMasternodePaymentsResult
	err := c.call(ctx, "masternode", rpc.MustMarshalArgs(nil, nil), &res, "payments", blockHash, count)
	return res, err
}

// GetMasternodeStatus returns the status of the node's own masternode.
func (c *Client) GetMasternodeStatus(ctx context.Context) (*types.MasternodeStatus, error) {
	var res types.MasternodeStatus
	err := c.call(ctx, "masternode", nil, &res, "status")
	return &res, err
}

// GetMasternodeWinners returns the payees of the last count blocks (and
// the upcoming projection), keyed by height.
func (c *Client) GetMasternodeWinners(ctx context.Context, count, filter *string) (map[string]string, error) {
	var res map[string]string
	err := c.call(ctx, "masternode", rpc.MustMarshalArgs("10", nil), &res, "winners", count, filter)
	return res, err
}

// MnSyncStatus returns the masternode sync state.
func (c *Client) MnSyncStatus(ctx context.Context) (*types.MnSyncStatus, error) {
	var res types.MnSyncStatus
	err := c.call(ctx, "mnsync", nil, &res, "status")
	return &res, err
}

// BLSGenerate creates a fresh BLS key pair.
func (c *Client) BLSGenerate(ctx context.Context) (*types.BLS, error) {
	var res types.BLS
	err := c.call(ctx, "bls", nil, &res, "generate")
	return &res, err
}

// BLSFromSecret derives the BLS key pair of the given secret key.
func (c *Client) BLSFromSecret(ctx context.Context, secret string) (*types.BLS, error) {
	var res types.BLS
	err := c.call(ctx, "bls", rpc.MustMarshalArgs(nil), &res, "fromsecret", secret)
	return &res, err
}

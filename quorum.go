package dashrpc

import (
	"context"

	"github.com/erc7824/dashrpc/pkg/codec"
	"github.com/erc7824/dashrpc/pkg/rpc"
	"github.com/erc7824/dashrpc/pkg/types"
)

// QuorumList returns the active on-chain quorums grouped by type. count
// selects how many quorums per type, newest first; the node defaults to 1.
func (c *Client) QuorumList(ctx context.Context, count *uint8) (*types.QuorumListResult, error) {
	var res types.QuorumListResult
	err := c.call(ctx, "quorum", rpc.MustMarshalArgs(1, nil), &res, "list", count)
	return &res, err
}

// QuorumListExtended returns the active quorums with per-quorum details,
// at the given height or the tip when nil.
func (c *Client) QuorumListExtended(ctx context.Context, height *uint32) (*types.ExtendedQuorumListResult, error) {
	var res types.ExtendedQuorumListResult
	err := c.call(ctx, "quorum", nil, &res, "listextended", height)
	return &res, err
}

// QuorumInfo returns the composition of one quorum. includeSkShare adds
// this node's secret key share when it is a member.
func (c *Client) QuorumInfo(ctx context.Context, llmqType types.QuorumType, quorumHash types.QuorumHash, includeSkShare *bool) (*types.QuorumInfoResult, error) {
	var res types.QuorumInfoResult
	err := c.call(ctx, "quorum", rpc.MustMarshalArgs(nil), &res, "info", llmqType, quorumHash, includeSkShare)
	return &res, err
}

// QuorumDKGStatus returns the state of the running DKG sessions.
func (c *Client) QuorumDKGStatus(ctx context.Context, detailLevel *uint8) (*types.QuorumDKGStatus, error) {
	var res types.QuorumDKGStatus
	err := c.call(ctx, "quorum", rpc.MustMarshalArgs(0, nil), &res, "dkgstatus", detailLevel)
	return &res, err
}

// QuorumSign requests threshold-signing of a message.
func (c *Client) QuorumSign(ctx context.Context, llmqType types.QuorumType, id, msgHash string, quorumHash *string, submit *bool) (*types.QuorumSignResult, error) {
	var res types.QuorumSignResult
	err := c.call(ctx, "quorum", rpc.MustMarshalArgs(nil), &res, "sign", llmqType, id, msgHash, quorumHash, submit)
	return &res, err
}

// QuorumGetRecSig returns the recovered signature of a previous signing
// request.
func (c *Client) QuorumGetRecSig(ctx context.Context, llmqType types.QuorumType, id, msgHash string) (*types.QuorumSignature, error) {
	var res types.QuorumSignature
	err := c.call(ctx, "quorum", rpc.MustMarshalArgs(nil), &res, "getrecsig", llmqType, id, msgHash)
	return &res, err
}

// QuorumHasRecSig reports whether a recovered signature exists for a
// previous signing request.
func (c *Client) QuorumHasRecSig(ctx context.Context, llmqType types.QuorumType, id, msgHash string) (bool, error) {
	var has bool
	err := c.call(ctx, "quorum", rpc.MustMarshalArgs(nil), &has, "hasrecsig", llmqType, id, msgHash)
	return has, err
}

// QuorumIsConflicting reports whether a signing request conflicts with an
// existing one.
func (c *Client) QuorumIsConflicting(ctx context.Context, llmqType types.QuorumType, id, msgHash string) (bool, error) {
	var conflicting bool
	err := c.call(ctx, "quorum", rpc.MustMarshalArgs(nil), &conflicting, "isconflicting", llmqType, id, msgHash)
	return conflicting, err
}

// QuorumMemberOf returns the quorums the given masternode is a member of.
func (c *Client) QuorumMemberOf(ctx context.Context, proTxHash types.ProTxHash, scanQuorumsCount *uint8) ([]types.QuorumMemberOf, error) {
	var res []types.QuorumMemberOf
	err := c.call(ctx, "quorum", rpc.MustMarshalArgs(nil), &res, "memberof", proTxHash, scanQuorumsCount)
	return res, err
}

// QuorumRotationInfo returns quorum rotation snapshots and masternode list
// diffs for the given block.
func (c *Client) QuorumRotationInfo(ctx context.Context, blockRequestHash types.BlockHash, extraShare *bool, baseBlockHash *string) (*types.QuorumRotationInfo, error) {
	var res types.QuorumRotationInfo
	err := c.call(ctx, "quorum", rpc.MustMarshalArgs(false, "", nil), &res,
		"rotationinfo", blockRequestHash, extraShare, baseBlockHash)
	return &res, err
}

// QuorumSelectQuorum returns the quorum that would sign the given request.
func (c *Client) QuorumSelectQuorum(ctx context.Context, llmqType types.QuorumType, id string) (*types.SelectQuorumResult, error) {
	var res types.SelectQuorumResult
	err := c.call(ctx, "quorum", rpc.MustMarshalArgs(nil), &res, "selectquorum", llmqType, id)
	return &res, err
}

// QuorumVerify tests a threshold signature against a request id and
// message hash.
func (c *Client) QuorumVerify(ctx context.Context, llmqType types.QuorumType, id, msgHash string, signature codec.HexBytes, quorumHash *types.QuorumHash, signHeight *uint32) (bool, error) {
	var valid bool
	err := c.call(ctx, "quorum", rpc.MustMarshalArgs(nil), &valid,
		"verify", llmqType, id, msgHash, signature, quorumHash, signHeight)
	return valid, err
}

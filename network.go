package dashrpc

import (
	"context"

	"github.com/erc7824/dashrpc/pkg/types"
)

// GetNetworkInfo returns the node's view of the p2p network.
func (c *Client) GetNetworkInfo(ctx context.Context) (*types.GetNetworkInfoResult, error) {
	var res types.GetNetworkInfoResult
	err := c.call(ctx, "getnetworkinfo", nil, &res)
	return &res, err
}

// GetConnectionCount returns the number of connected peers.
func (c *Client) GetConnectionCount(ctx context.Context) (uint64, error) {
	var count uint64
	err := c.call(ctx, "getconnectioncount", nil, &count)
	return count, err
}

// GetPeerInfo returns data about each connected peer.
func (c *Client) GetPeerInfo(ctx context.Context) ([]types.GetPeerInfoResult, error) {
	var peers []types.GetPeerInfoResult
	err := c.call(ctx, "getpeerinfo", nil, &peers)
	return peers, err
}

// GetNetTotals returns network traffic totals.
func (c *Client) GetNetTotals(ctx context.Context) (*types.GetNetTotalsResult, error) {
	var res types.GetNetTotalsResult
	err := c.call(ctx, "getnettotals", nil, &res)
	return &res, err
}

// AddNode adds a node to the addnode list and tries to keep a connection
// to it open.
func (c *Client) AddNode(ctx context.Context, addr string) error {
	return c.call(ctx, "addnode", nil, nil, addr, "add")
}

// RemoveNode removes a node from the addnode list.
func (c *Client) RemoveNode(ctx context.Context, addr string) error {
	return c.call(ctx, "addnode", nil, nil, addr, "remove")
}

// OneTryNode attempts a single connection to a node without adding it to
// the addnode list.
func (c *Client) OneTryNode(ctx context.Context, addr string) error {
	return c.call(ctx, "addnode", nil, nil, addr, "onetry")
}

// DisconnectNode disconnects the peer with the given address.
func (c *Client) DisconnectNode(ctx context.Context, addr string) error {
	return c.call(ctx, "disconnectnode", nil, nil, addr)
}

// DisconnectNodeByID disconnects the peer with the given node id.
func (c *Client) DisconnectNodeByID(ctx context.Context, nodeID uint32) error {
	return c.call(ctx, "disconnectnode", nil, nil, "", nodeID)
}

// GetAddedNodeInfo returns information about one added node, or all of
// them when node is nil. Nodes connected with OneTryNode are not listed.
func (c *Client) GetAddedNodeInfo(ctx context.Context, node *string) ([]types.GetAddedNodeInfoResult, error) {
	var res []types.GetAddedNodeInfoResult
	var err error
	if node != nil {
		err = c.call(ctx, "getaddednodeinfo", nil, &res, *node)
	} else {
		err = c.call(ctx, "getaddednodeinfo", nil, &res)
	}
	return res, err
}

// GetNodeAddresses returns known peer addresses usable for finding new
// nodes. A nil count asks for one address.
func (c *Client) GetNodeAddresses(ctx context.Context, count *uint32) ([]types.GetNodeAddressesResult, error) {
	cnt := uint32(1)
	if count != nil {
		cnt = *count
	}
	var res []types.GetNodeAddressesResult
	err := c.call(ctx, "getnodeaddresses", nil, &res, cnt)
	return res, err
}

// ListBanned lists all banned IPs and subnets.
func (c *Client) ListBanned(ctx context.Context) ([]types.ListBannedResult, error) {
	var res []types.ListBannedResult
	err := c.call(ctx, "listbanned", nil, &res)
	return res, err
}

// ClearBanned removes every ban.
func (c *Client) ClearBanned(ctx context.Context) error {
	return c.call(ctx, "clearbanned", nil, nil)
}

// AddBan bans an IP or subnet. banTime is in seconds, or an absolute unix
// timestamp when absolute is true; zero uses the node's default.
func (c *Client) AddBan(ctx context.Context, subnet string, banTime uint64, absolute bool) error {
	return c.call(ctx, "setban", nil, nil, subnet, "add", banTime, absolute)
}

// RemoveBan lifts the ban on an IP or subnet.
func (c *Client) RemoveBan(ctx context.Context, subnet string) error {
	return c.call(ctx, "setban", nil, nil, subnet, "remove")
}

// SetNetworkActive enables or disables all p2p network activity.
func (c *Client) SetNetworkActive(ctx context.Context, active bool) (bool, error) {
	var state bool
	err := c.call(ctx, "setnetworkactive", nil, &state, active)
	return state, err
}

// Ping queues a ping to every peer; results show up in GetPeerInfo's
// pingtime and pingwait fields.
func (c *Client) Ping(ctx context.Context) error {
	return c.call(ctx, "ping", nil, nil)
}

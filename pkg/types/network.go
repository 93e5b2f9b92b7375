package types

import (
	"encoding/json"
	"strconv"

	"github.com/erc7824/dashrpc/pkg/codec"
)

// Service flag bits advertised in the localservices word.
const (
	ServiceNetwork           uint = 0
	ServiceGetUTXO           uint = 1
	ServiceBloom             uint = 2
	ServiceCompactFilters    uint = 6
	ServiceNetworkLimited    uint = 10
	ServiceHeadersCompressed uint = 11
)

// serviceFlagCodec unpacks the node's service bit words into named flags.
var serviceFlagCodec = codec.NewFlagCodec(
	codec.Flag{Name: "NETWORK", Bit: ServiceNetwork},
	codec.Flag{Name: "GETUTXO", Bit: ServiceGetUTXO},
	codec.Flag{Name: "BLOOM", Bit: ServiceBloom},
	codec.Flag{Name: "COMPACT_FILTERS", Bit: ServiceCompactFilters},
	codec.Flag{Name: "NETWORK_LIMITED", Bit: ServiceNetworkLimited},
	codec.Flag{Name: "HEADERS_COMPRESSED", Bit: ServiceHeadersCompressed},
)

// ServiceFlags is the service bit word a peer advertises. The node prints
// it as a 16-digit hex string.
type ServiceFlags uint64

func (f ServiceFlags) String() string {
	return formatServiceWord(uint64(f))
}

func formatServiceWord(word uint64) string {
	s := strconv.FormatUint(word, 16)
	for len(s) < 16 {
		s = "0" + s
	}
	return s
}

// Flags splits the word into the named flags and the residual of bits this
// package does not know about.
func (f ServiceFlags) Flags() codec.FlagSet {
	return serviceFlagCodec.Unpack(uint64(f))
}

func (f ServiceFlags) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *ServiceFlags) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	word, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return err
	}
	*f = ServiceFlags(word)
	return nil
}

// GetNetworkInfoResultNetwork describes the reachability of one network.
type GetNetworkInfoResultNetwork struct {
	Name                      string `json:"name"`
	Limited                   bool   `json:"limited"`
	Reachable                 bool   `json:"reachable"`
	Proxy                     string `json:"proxy"`
	ProxyRandomizeCredentials bool   `json:"proxy_randomize_credentials"`
}

// GetNetworkInfoResultAddress is one local address the node listens on.
type GetNetworkInfoResultAddress struct {
	Address string `json:"address"`
	Port    uint16 `json:"port"`
	Score   uint64 `json:"score"`
}

// GetNetworkInfoResult models the result of "getnetworkinfo".
type GetNetworkInfoResult struct {
	Version               uint64                        `json:"version"`
	BuildVersion          string                        `json:"buildversion"`
	Subversion            string                        `json:"subversion"`
	ProtocolVersion       uint64                        `json:"protocolversion"`
	LocalServices         ServiceFlags                  `json:"localservices"`
	LocalServicesNames    []string                      `json:"localservicesnames"`
	LocalRelay            bool                          `json:"localrelay"`
	TimeOffset            int64                         `json:"timeoffset"`
	NetworkActive         bool                          `json:"networkactive"`
	Connections           uint64                        `json:"connections"`
	InboundConnections    uint64                        `json:"inboundconnections"`
	OutboundConnections   uint64                        `json:"outboundconnections"`
	MNConnections         uint64                        `json:"mnconnections"`
	InboundMNConnections  uint64                        `json:"inboundmnconnections"`
	OutboundMNConnections uint64                        `json:"outboundmnconnections"`
	SocketEvents          string                        `json:"socketevents"`
	Networks              []GetNetworkInfoResultNetwork `json:"networks"`
	RelayFee              codec.Amount                  `json:"relayfee"`
	IncrementalFee        codec.Amount                  `json:"incrementalfee"`
	LocalAddresses        []GetNetworkInfoResultAddress `json:"localaddresses"`
	Warnings              string                        `json:"warnings"`
}

// PeerNetwork is the network a peer connected over.
type PeerNetwork string

const (
	NetIPv4        PeerNetwork = "ipv4"
	NetIPv6        PeerNetwork = "ipv6"
	NetOnion       PeerNetwork = "onion"
	NetI2P         PeerNetwork = "i2p"
	NetCJDNS       PeerNetwork = "cjdns"
	NetInternal    PeerNetwork = "internal"
	NetNotRoutable PeerNetwork = "not_publicly_routable"
)

// PeerConnectionType is the reason a connection exists.
type PeerConnectionType string

const (
	ConnOutboundFullRelay PeerConnectionType = "outbound-full-relay"
	ConnBlockRelayOnly    PeerConnectionType = "block-relay-only"
	ConnInbound           PeerConnectionType = "inbound"
	ConnManual            PeerConnectionType = "manual"
	ConnAddrFetch         PeerConnectionType = "addr-fetch"
	ConnFeeler            PeerConnectionType = "feeler"
)

// GetPeerInfoResult is one entry in the result of "getpeerinfo".
type GetPeerInfoResult struct {
	ID              uint64              `json:"id"`
	Addr            string              `json:"addr"`
	AddrBind        string              `json:"addrbind"`
	AddrLocal       *string             `json:"addrlocal,omitempty"`
	Network         *PeerNetwork        `json:"network,omitempty"`
	Services        ServiceFlags        `json:"services"`
	RelayTxes       bool                `json:"relaytxes"`
	LastSend        uint64              `json:"lastsend"`
	LastRecv        uint64              `json:"lastrecv"`
	LastTransaction *uint64             `json:"last_transaction,omitempty"`
	LastBlock       *uint64             `json:"last_block,omitempty"`
	BytesSent       uint64              `json:"bytessent"`
	BytesRecv       uint64              `json:"bytesrecv"`
	ConnTime        uint64              `json:"conntime"`
	TimeOffset      int64               `json:"timeoffset"`
	PingTime        *float64            `json:"pingtime,omitempty"`
	MinPing         *float64            `json:"minping,omitempty"`
	PingWait        *float64            `json:"pingwait,omitempty"`
	Version         uint64              `json:"version"`
	Subver          string              `json:"subver"`
	Inbound         bool                `json:"inbound"`
	AddNode         *bool               `json:"addnode,omitempty"`
	StartingHeight  int64               `json:"startingheight"`
	BanScore        *int64              `json:"banscore,omitempty"`
	SyncedHeaders   int64               `json:"synced_headers"`
	SyncedBlocks    int64               `json:"synced_blocks"`
	InFlight        []uint64            `json:"inflight"`
	Whitelisted     *bool               `json:"whitelisted,omitempty"`
	MinFeeFilter    *codec.Amount       `json:"minfeefilter,omitempty"`
	BytesSentPerMsg map[string]uint64   `json:"bytessent_per_msg"`
	BytesRecvPerMsg map[string]uint64   `json:"bytesrecv_per_msg"`
	ConnectionType  *PeerConnectionType `json:"connection_type,omitempty"`
}

// AddedNodeAddress is one resolved address of a manually added node.
type AddedNodeAddress struct {
	Address   string `json:"address"`
	Connected string `json:"connected"` // "inbound" or "outbound"
}

// GetAddedNodeInfoResult is one entry in the result of "getaddednodeinfo".
type GetAddedNodeInfoResult struct {
	AddedNode string             `json:"addednode"`
	Connected *bool              `json:"connected,omitempty"`
	Addresses []AddedNodeAddress `json:"addresses,omitempty"`
}

// GetNodeAddressesResult is one entry in the result of "getnodeaddresses".
type GetNodeAddressesResult struct {
	Time     uint64       `json:"time"`
	Services ServiceFlags `json:"services"`
	Address  string       `json:"address"`
	Port     uint16       `json:"port"`
}

// ListBannedResult is one entry in the result of "listbanned".
type ListBannedResult struct {
	Address     string `json:"address"`
	BannedUntil uint64 `json:"banned_until"`
	BanCreated  uint64 `json:"ban_created"`
}

// GetNetTotalsResultUploadTarget reports upload throttling state.
type GetNetTotalsResultUploadTarget struct {
	TimeFrame             uint64 `json:"timeframe"`
	Target                uint64 `json:"target"`
	TargetReached         bool   `json:"target_reached"`
	ServeHistoricalBlocks bool   `json:"serve_historical_blocks"`
	BytesLeftInCycle      uint64 `json:"bytes_left_in_cycle"`
	TimeLeftInCycle       uint64 `json:"time_left_in_cycle"`
}

// GetNetTotalsResult models the result of "getnettotals".
type GetNetTotalsResult struct {
	TotalBytesRecv uint64                         `json:"totalbytesrecv"`
	TotalBytesSent uint64                         `json:"totalbytessent"`
	TimeMillis     uint64                         `json:"timemillis"`
	UploadTarget   GetNetTotalsResultUploadTarget `json:"uploadtarget"`
}

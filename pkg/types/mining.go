package types

import (
	"github.com/erc7824/dashrpc/pkg/codec"
)

// GetBlockTemplateMode selects how the node answers "getblocktemplate".
type GetBlockTemplateMode string

const (
	// GetBlockTemplateModeTemplate asks the node to assemble a block
	// template. This is the node's default.
	GetBlockTemplateModeTemplate GetBlockTemplateMode = "template"
)

// GetBlockTemplateRule names a block rule the caller declares support for.
type GetBlockTemplateRule string

const (
	GetBlockTemplateRuleCSV       GetBlockTemplateRule = "csv"
	GetBlockTemplateRuleV20       GetBlockTemplateRule = "v20"
	GetBlockTemplateRuleTestdummy GetBlockTemplateRule = "testdummy"
)

// GetBlockTemplateCapability names a client-side feature advertised in the
// request. The node currently defines none that a client must send.
type GetBlockTemplateCapability string

// GetBlockTemplateRequest is the single object argument of
// "getblocktemplate".
type GetBlockTemplateRequest struct {
	Mode         GetBlockTemplateMode         `json:"mode"`
	Rules        []GetBlockTemplateRule       `json:"rules"`
	Capabilities []GetBlockTemplateCapability `json:"capabilities"`
}

// GetBlockTemplateResultTransaction is one template transaction. Fee is in
// duffs.
type GetBlockTemplateResultTransaction struct {
	Data    codec.HexBytes `json:"data"`
	Hash    BlockHash      `json:"hash"`
	Depends []uint32       `json:"depends"`
	Fee     int64          `json:"fee"`
	SigOps  uint32         `json:"sigops"`
}

// GetBlockTemplateResultPayeeInfo is one masternode or superblock payout
// in a block template. Amount is in duffs.
type GetBlockTemplateResultPayeeInfo struct {
	Payee  string `json:"payee"`
	Script string `json:"script"`
	Amount int64  `json:"amount"`
}

// GetBlockTemplateResult models the result of "getblocktemplate".
// CoinbaseValue is in duffs; Target, NonceRange and the bits fields keep
// the node's big-endian hex payloads as raw bytes.
type GetBlockTemplateResult struct {
	Capabilities               []string                            `json:"capabilities"`
	Version                    uint32                              `json:"version"`
	Rules                      []GetBlockTemplateRule              `json:"rules"`
	VersionBitsAvailable       map[string]uint32                   `json:"vbavailable"`
	VersionBitsRequired        uint32                              `json:"vbrequired"`
	PreviousBlockHash          BlockHash                           `json:"previousblockhash"`
	Transactions               []GetBlockTemplateResultTransaction `json:"transactions"`
	CoinbaseAux                map[string]string                   `json:"coinbaseaux"`
	CoinbaseValue              int64                               `json:"coinbasevalue"`
	Target                     codec.HexBytes                      `json:"target"`
	MinTime                    uint64                              `json:"mintime"`
	Mutable                    []string                            `json:"mutable"`
	NonceRange                 codec.HexBytes                      `json:"noncerange"`
	SigOpLimit                 uint32                              `json:"sigoplimit"`
	SizeLimit                  uint32                              `json:"sizelimit"`
	CurrentTime                uint64                              `json:"curtime"`
	Bits                       codec.HexBytes                      `json:"bits"`
	PreviousBits               codec.HexBytes                      `json:"previousbits"`
	Height                     uint64                              `json:"height"`
	Masternode                 []GetBlockTemplateResultPayeeInfo   `json:"masternode"`
	MasternodePaymentsStarted  bool                                `json:"masternode_payments_started"`
	MasternodePaymentsEnforced bool                                `json:"masternode_payments_enforced"`
	SuperBlock                 []GetBlockTemplateResultPayeeInfo   `json:"superblock"`
	SuperBlocksStarted         bool                                `json:"superblocks_started"`
	SuperBlocksEnabled         bool                                `json:"superblocks_enabled"`
	CoinbasePayload            string                              `json:"coinbase_payload"`
}

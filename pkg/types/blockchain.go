package types

import (
	"encoding/json"
	"fmt"

	"github.com/erc7824/dashrpc/pkg/codec"
)

// GetBlockchainInfoResult models the result of "getblockchaininfo".
type GetBlockchainInfoResult struct {
	Chain                Chain                   `json:"chain"`
	Blocks               uint64                  `json:"blocks"`
	Headers              uint64                  `json:"headers"`
	BestBlockHash        BlockHash               `json:"bestblockhash"`
	Difficulty           float64                 `json:"difficulty"`
	MedianTime           uint64                  `json:"mediantime"`
	VerificationProgress float64                 `json:"verificationprogress"`
	InitialBlockDownload bool                    `json:"initialblockdownload"`
	ChainWork            codec.HexBytes          `json:"chainwork"`
	SizeOnDisk           uint64                  `json:"size_on_disk"`
	Pruned               bool                    `json:"pruned"`
	PruneHeight          *uint64                 `json:"pruneheight,omitempty"`
	AutomaticPruning     *bool                   `json:"automatic_pruning,omitempty"`
	PruneTargetSize      *uint64                 `json:"prune_target_size,omitempty"`
	Softforks            map[string]SoftforkInfo `json:"softforks"`
	Warnings             string                  `json:"warnings"`
}

// Chain names the network the node runs on.
type Chain string

const (
	ChainMain    Chain = "main"
	ChainTestnet Chain = "test"
	ChainDevnet  Chain = "devnet"
	ChainRegtest Chain = "regtest"
)

// SoftforkType distinguishes buried deployments from active BIP9 ones.
type SoftforkType string

const (
	SoftforkBuried SoftforkType = "buried"
	SoftforkBip9   SoftforkType = "bip9"
)

// SoftforkInfo describes the status of one softfork deployment.
type SoftforkInfo struct {
	Type   SoftforkType      `json:"type"`
	Active bool              `json:"active"`
	Height *uint64           `json:"height,omitempty"`
	Bip9   *Bip9SoftforkInfo `json:"bip9,omitempty"`
}

// Bip9SoftforkStatus is the BIP9 deployment state machine.
type Bip9SoftforkStatus string

const (
	Bip9StatusDefined  Bip9SoftforkStatus = "defined"
	Bip9StatusStarted  Bip9SoftforkStatus = "started"
	Bip9StatusLockedIn Bip9SoftforkStatus = "locked_in"
	Bip9StatusActive   Bip9SoftforkStatus = "active"
	Bip9StatusFailed   Bip9SoftforkStatus = "failed"
)

// Bip9SoftforkInfo carries the BIP9 specific deployment details.
type Bip9SoftforkInfo struct {
	Status     Bip9SoftforkStatus      `json:"status"`
	Bit        *uint8                  `json:"bit,omitempty"`
	StartTime  int64                   `json:"start_time"`
	Timeout    uint64                  `json:"timeout"`
	Since      uint64                  `json:"since"`
	Statistics *Bip9SoftforkStatistics `json:"statistics,omitempty"`
}

// Bip9SoftforkStatistics reports signalling progress for a started deployment.
type Bip9SoftforkStatistics struct {
	Period    uint64  `json:"period"`
	Threshold *uint64 `json:"threshold,omitempty"`
	Elapsed   uint64  `json:"elapsed"`
	Count     uint64  `json:"count"`
	Possible  *bool   `json:"possible,omitempty"`
}

// CoinbaseTxDetails is the cbTx section of a block, carrying the
// deterministic masternode list commitments.
type CoinbaseTxDetails struct {
	Version           uint16         `json:"version"`
	Height            uint64         `json:"height"`
	MerkleRootMNList  codec.HexBytes `json:"merkleRootMNList"`
	MerkleRootQuorums codec.HexBytes `json:"merkleRootQuorums"`
}

// GetBlockResult models the result of "getblock" with verbosity 1.
type GetBlockResult struct {
	Hash              BlockHash         `json:"hash"`
	Confirmations     int32             `json:"confirmations"`
	Size              uint64            `json:"size"`
	StrippedSize      *uint64           `json:"strippedsize,omitempty"`
	Height            uint64            `json:"height"`
	Version           int32             `json:"version"`
	VersionHex        codec.HexBytes    `json:"versionHex,omitempty"`
	MerkleRoot        codec.Hash        `json:"merkleroot"`
	Tx                []Txid            `json:"tx"`
	CbTx              CoinbaseTxDetails `json:"cbTx"`
	Time              uint64            `json:"time"`
	MedianTime        uint64            `json:"mediantime"`
	Nonce             uint32            `json:"nonce"`
	Bits              string            `json:"bits"`
	Difficulty        float64           `json:"difficulty"`
	ChainWork         codec.HexBytes    `json:"chainwork"`
	NTx               uint64            `json:"nTx"`
	PreviousBlockHash *BlockHash        `json:"previousblockhash,omitempty"`
	NextBlockHash     *BlockHash        `json:"nextblockhash,omitempty"`
	ChainLock         bool              `json:"chainlock"`
}

// GetBlockHeaderResult models the result of "getblockheader" with
// verbose=true.
type GetBlockHeaderResult struct {
	Hash              BlockHash      `json:"hash"`
	Confirmations     int32          `json:"confirmations"`
	Height            uint64         `json:"height"`
	Version           int32          `json:"version"`
	VersionHex        codec.HexBytes `json:"versionHex,omitempty"`
	MerkleRoot        codec.Hash     `json:"merkleroot"`
	Time              uint64         `json:"time"`
	MedianTime        *uint64        `json:"mediantime,omitempty"`
	Nonce             uint32         `json:"nonce"`
	Bits              string         `json:"bits"`
	Difficulty        float64        `json:"difficulty"`
	ChainWork         codec.HexBytes `json:"chainwork"`
	NTx               uint64         `json:"nTx"`
	PreviousBlockHash *BlockHash     `json:"previousblockhash,omitempty"`
	NextBlockHash     *BlockHash     `json:"nextblockhash,omitempty"`
}

// GetBestChainLockResult models the result of "getbestchainlock".
type GetBestChainLockResult struct {
	BlockHash  BlockHash      `json:"blockhash"`
	Height     uint64         `json:"height"`
	Signature  codec.HexBytes `json:"signature"`
	KnownBlock bool           `json:"known_block"`
}

// FeeRatePercentiles carries the feerate distribution of a block in
// duffs per virtual byte.
type FeeRatePercentiles struct {
	FeeRate10th int64 `json:"10th_percentile_feerate"`
	FeeRate25th int64 `json:"25th_percentile_feerate"`
	FeeRate50th int64 `json:"50th_percentile_feerate"`
	FeeRate75th int64 `json:"75th_percentile_feerate"`
	FeeRate90th int64 `json:"90th_percentile_feerate"`
}

// GetBlockStatsResult models the result of "getblockstats" when every
// field is requested. Fee and output totals are reported in duffs.
type GetBlockStatsResult struct {
	AvgFee             int64              `json:"avgfee"`
	AvgFeeRate         int64              `json:"avgfeerate"`
	AvgTxSize          uint32             `json:"avgtxsize"`
	BlockHash          BlockHash          `json:"blockhash"`
	FeeRatePercentiles FeeRatePercentiles `json:"feerate_percentiles"`
	Height             uint32             `json:"height"`
	Ins                uint64             `json:"ins"`
	MaxFee             int64              `json:"maxfee"`
	MaxFeeRate         int64              `json:"maxfeerate"`
	MaxTxSize          uint32             `json:"maxtxsize"`
	MedianFee          int64              `json:"medianfee"`
	MedianTime         uint64             `json:"mediantime"`
	MedianTxSize       uint32             `json:"mediantxsize"`
	MinFee             int64              `json:"minfee"`
	MinFeeRate         int64              `json:"minfeerate"`
	MinTxSize          uint32             `json:"mintxsize"`
	Outs               uint64             `json:"outs"`
	Subsidy            int64              `json:"subsidy"`
	Time               uint64             `json:"time"`
	TotalOut           int64              `json:"total_out"`
	TotalSize          uint64             `json:"total_size"`
	TotalFee           int64              `json:"totalfee"`
	Txs                uint64             `json:"txs"`
	UtxoIncrease       int32              `json:"utxo_increase"`
	UtxoSizeIncrease   int32              `json:"utxo_size_inc"`
}

// GetBlockStatsResultPartial is the all-optional variant returned when the
// caller asks for a subset of stats.
type GetBlockStatsResultPartial struct {
	AvgFee             *int64              `json:"avgfee,omitempty"`
	AvgFeeRate         *int64              `json:"avgfeerate,omitempty"`
	AvgTxSize          *uint32             `json:"avgtxsize,omitempty"`
	BlockHash          *BlockHash          `json:"blockhash,omitempty"`
	FeeRatePercentiles *FeeRatePercentiles `json:"feerate_percentiles,omitempty"`
	Height             *uint32             `json:"height,omitempty"`
	Ins                *uint64             `json:"ins,omitempty"`
	MaxFee             *int64              `json:"maxfee,omitempty"`
	MaxFeeRate         *int64              `json:"maxfeerate,omitempty"`
	MaxTxSize          *uint32             `json:"maxtxsize,omitempty"`
	MedianFee          *int64              `json:"medianfee,omitempty"`
	MedianTime         *uint64             `json:"mediantime,omitempty"`
	MedianTxSize       *uint32             `json:"mediantxsize,omitempty"`
	MinFee             *int64              `json:"minfee,omitempty"`
	MinFeeRate         *int64              `json:"minfeerate,omitempty"`
	MinTxSize          *uint32             `json:"mintxsize,omitempty"`
	Outs               *uint64             `json:"outs,omitempty"`
	Subsidy            *int64              `json:"subsidy,omitempty"`
	Time               *uint64             `json:"time,omitempty"`
	TotalOut           *int64              `json:"total_out,omitempty"`
	TotalSize          *uint64             `json:"total_size,omitempty"`
	TotalFee           *int64              `json:"totalfee,omitempty"`
	Txs                *uint64             `json:"txs,omitempty"`
	UtxoIncrease       *int32              `json:"utxo_increase,omitempty"`
	UtxoSizeIncrease   *int32              `json:"utxo_size_inc,omitempty"`
}

// BlockStatsField selects a single stat for "getblockstats".
type BlockStatsField string

const (
	StatAvgFee             BlockStatsField = "avgfee"
	StatAvgFeeRate         BlockStatsField = "avgfeerate"
	StatAvgTxSize          BlockStatsField = "avgtxsize"
	StatBlockHash          BlockStatsField = "blockhash"
	StatFeeRatePercentiles BlockStatsField = "feerate_percentiles"
	StatHeight             BlockStatsField = "height"
	StatIns                BlockStatsField = "ins"
	StatMaxFee             BlockStatsField = "maxfee"
	StatMaxFeeRate         BlockStatsField = "maxfeerate"
	StatMaxTxSize          BlockStatsField = "maxtxsize"
	StatMedianFee          BlockStatsField = "medianfee"
	StatMedianTime         BlockStatsField = "mediantime"
	StatMedianTxSize       BlockStatsField = "mediantxsize"
	StatMinFee             BlockStatsField = "minfee"
	StatMinFeeRate         BlockStatsField = "minfeerate"
	StatMinTxSize          BlockStatsField = "mintxsize"
	StatOuts               BlockStatsField = "outs"
	StatSubsidy            BlockStatsField = "subsidy"
	StatTime               BlockStatsField = "time"
	StatTotalOut           BlockStatsField = "total_out"
	StatTotalSize          BlockStatsField = "total_size"
	StatTotalFee           BlockStatsField = "totalfee"
	StatTxs                BlockStatsField = "txs"
	StatUtxoIncrease       BlockStatsField = "utxo_increase"
	StatUtxoSizeIncrease   BlockStatsField = "utxo_size_inc"
)

// GetMiningInfoResult models the result of "getmininginfo".
type GetMiningInfoResult struct {
	Blocks             uint32  `json:"blocks"`
	CurrentBlockWeight *uint64 `json:"currentblockweight,omitempty"`
	CurrentBlockTx     *uint64 `json:"currentblocktx,omitempty"`
	Difficulty         float64 `json:"difficulty"`
	NetworkHashPS      float64 `json:"networkhashps"`
	PooledTx           uint64  `json:"pooledtx"`
	Chain              Chain   `json:"chain"`
	Warnings           string  `json:"warnings"`
}

// ChainTipStatus is the validation status of a chain tip.
type ChainTipStatus string

const (
	TipInvalid      ChainTipStatus = "invalid"
	TipHeadersOnly  ChainTipStatus = "headers-only"
	TipValidHeaders ChainTipStatus = "valid-headers"
	TipValidFork    ChainTipStatus = "valid-fork"
	TipActive       ChainTipStatus = "active"
)

// ChainTip is one entry in the result of "getchaintips".
type ChainTip struct {
	Height       uint64         `json:"height"`
	Hash         BlockHash      `json:"hash"`
	BranchLength uint64         `json:"branchlen"`
	Status       ChainTipStatus `json:"status"`
}

// BlockRef names a block by hash and height, as returned by
// "waitfornewblock" and "waitforblock".
type BlockRef struct {
	Hash   BlockHash `json:"hash"`
	Height uint64    `json:"height"`
}

// GetTxOutSetInfoResult models the result of "gettxoutsetinfo".
type GetTxOutSetInfoResult struct {
	Height          uint64       `json:"height"`
	BestBlock       BlockHash    `json:"bestblock"`
	Transactions    uint64       `json:"transactions"`
	TxOuts          uint64       `json:"txouts"`
	BogoSize        uint64       `json:"bogosize"`
	HashSerialized2 codec.Hash   `json:"hash_serialized_2"`
	DiskSize        uint64       `json:"disk_size"`
	TotalAmount     codec.Amount `json:"total_amount"`
}

// GetBlockFilterResult models the result of "getblockfilter".
type GetBlockFilterResult struct {
	Header codec.Hash     `json:"header"`
	Filter codec.HexBytes `json:"filter"`
}

// GetMempoolEntryResultFees groups the fee components of a mempool entry.
type GetMempoolEntryResultFees struct {
	Base       codec.Amount `json:"base"`
	Modified   codec.Amount `json:"modified"`
	Ancestor   codec.Amount `json:"ancestor"`
	Descendant codec.Amount `json:"descendant"`
}

// GetMempoolEntryResult models the result of "getmempoolentry".
type GetMempoolEntryResult struct {
	VSize           uint64                    `json:"vsize"`
	Weight          *uint64                   `json:"weight,omitempty"`
	Time            uint64                    `json:"time"`
	Height          uint64                    `json:"height"`
	DescendantCount uint64                    `json:"descendantcount"`
	DescendantSize  uint64                    `json:"descendantsize"`
	AncestorCount   uint64                    `json:"ancestorcount"`
	AncestorSize    uint64                    `json:"ancestorsize"`
	Fees            GetMempoolEntryResultFees `json:"fees"`
	Depends         []Txid                    `json:"depends"`
	SpentBy         []Txid                    `json:"spentby"`
	Unbroadcast     *bool                     `json:"unbroadcast,omitempty"`
}

// Older nodes report the entry size as "size" instead of "vsize".
func (r *GetMempoolEntryResult) UnmarshalJSON(data []byte) error {
	type plain GetMempoolEntryResult
	aux := struct {
		*plain
		Size *uint64 `json:"size"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.VSize == 0 && aux.Size != nil {
		r.VSize = *aux.Size
	}
	return nil
}

// ScanTxOutRequest selects the UTXOs to scan for: a bare output descriptor
// or a descriptor with an xpub derivation range.
type ScanTxOutRequest struct {
	Desc  string
	Range *[2]uint64
}

func (r ScanTxOutRequest) MarshalJSON() ([]byte, error) {
	if r.Range == nil {
		return json.Marshal(r.Desc)
	}
	return json.Marshal(struct {
		Desc  string    `json:"desc"`
		Range [2]uint64 `json:"range"`
	}{Desc: r.Desc, Range: *r.Range})
}

func (r *ScanTxOutRequest) UnmarshalJSON(data []byte) error {
	switch codec.JSONKind(data) {
	case '"':
		if err := json.Unmarshal(data, &r.Desc); err != nil {
			return err
		}
		r.Range = nil
		return nil
	case '{':
		var ext struct {
			Desc  string    `json:"desc"`
			Range [2]uint64 `json:"range"`
		}
		if err := json.Unmarshal(data, &ext); err != nil {
			return err
		}
		r.Desc = ext.Desc
		rng := ext.Range
		r.Range = &rng
		return nil
	default:
		return fmt.Errorf("%w: scan request is neither descriptor nor object", codec.ErrShapeMismatch)
	}
}

// ScanTxOutUtxo is one unspent output found by "scantxoutset".
type ScanTxOutUtxo struct {
	Txid         Txid           `json:"txid"`
	Vout         uint32         `json:"vout"`
	ScriptPubKey codec.HexBytes `json:"scriptPubKey"`
	Descriptor   string         `json:"desc"`
	Amount       codec.Amount   `json:"amount"`
	Height       uint64         `json:"height"`
}

// ScanTxOutResult models the result of "scantxoutset".
type ScanTxOutResult struct {
	Success     *bool           `json:"success,omitempty"`
	TxOuts      *uint64         `json:"txouts,omitempty"`
	Height      *uint64         `json:"height,omitempty"`
	BestBlock   *BlockHash      `json:"bestblock,omitempty"`
	Unspents    []ScanTxOutUtxo `json:"unspents"`
	TotalAmount codec.Amount    `json:"total_amount"`
}

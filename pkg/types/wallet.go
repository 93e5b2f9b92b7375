package types

import (
	"encoding/json"
	"fmt"

	"github.com/erc7824/dashrpc/pkg/codec"
)

// AddMultiSigAddressResult models the result of "addmultisigaddress".
type AddMultiSigAddressResult struct {
	Address      string         `json:"address"`
	RedeemScript codec.HexBytes `json:"redeemScript"`
}

// LoadWalletResult models the result of "loadwallet" and "createwallet".
type LoadWalletResult struct {
	Name    string  `json:"name"`
	Warning *string `json:"warning,omitempty"`
}

// UnloadWalletResult models the result of "unloadwallet". The node answers
// with either null or an object carrying a warning.
type UnloadWalletResult struct {
	Warning *string
}

func (r UnloadWalletResult) MarshalJSON() ([]byte, error) {
	if r.Warning == nil {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Warning string `json:"warning"`
	}{Warning: *r.Warning})
}

func (r *UnloadWalletResult) UnmarshalJSON(data []byte) error {
	r.Warning = nil
	if string(data) == "null" {
		return nil
	}

	var obj struct {
		Warning string `json:"warning"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: unload result is neither null nor object", codec.ErrShapeMismatch)
	}
	r.Warning = &obj.Warning
	return nil
}

// ScanningDetails reports rescan progress. An idle wallet sends the literal
// false instead of the object form.
type ScanningDetails struct {
	Active   bool
	Duration uint64
	Progress float64
}

func (d ScanningDetails) MarshalJSON() ([]byte, error) {
	if !d.Active {
		return []byte("false"), nil
	}
	return json.Marshal(struct {
		Duration uint64  `json:"duration"`
		Progress float64 `json:"progress"`
	}{Duration: d.Duration, Progress: d.Progress})
}

func (d *ScanningDetails) UnmarshalJSON(data []byte) error {
	switch codec.JSONKind(data) {
	case 't', 'f':
		var active bool
		if err := json.Unmarshal(data, &active); err != nil {
			return err
		}
		if active {
			return fmt.Errorf("%w: scanning flag must be false", codec.ErrShapeMismatch)
		}
		*d = ScanningDetails{}
		return nil
	case '{':
		var obj struct {
			Duration uint64  `json:"duration"`
			Progress float64 `json:"progress"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*d = ScanningDetails{Active: true, Duration: obj.Duration, Progress: obj.Progress}
		return nil
	default:
		return fmt.Errorf("%w: scanning is neither false nor object", codec.ErrShapeMismatch)
	}
}

// GetWalletInfoResult models the result of "getwalletinfo".
type GetWalletInfoResult struct {
	WalletName            string           `json:"walletname"`
	WalletVersion         uint32           `json:"walletversion"`
	Balance               codec.Amount     `json:"balance"`
	CoinjoinBalance       codec.Amount     `json:"coinjoin_balance"`
	UnconfirmedBalance    codec.Amount     `json:"unconfirmed_balance"`
	ImmatureBalance       codec.Amount     `json:"immature_balance"`
	TxCount               uint64           `json:"txcount"`
	TimeFirstKey          uint32           `json:"timefirstkey"`
	KeypoolOldest         uint64           `json:"keypoololdest"`
	KeypoolSize           uint64           `json:"keypoolsize"`
	KeypoolSizeHDInternal *uint64          `json:"keypoolsize_hd_internal,omitempty"`
	KeysLeft              uint64           `json:"keys_left"`
	UnlockedUntil         *uint64          `json:"unlocked_until,omitempty"`
	PayTxFee              float64          `json:"paytxfee"`
	HDChainID             codec.HexBytes   `json:"hdchainid,omitempty"`
	HDAccountCount        *uint32          `json:"hdaccountcount,omitempty"`
	Scanning              *ScanningDetails `json:"scanning,omitempty"`
}

// GetBalancesResultEntry groups one ownership class of wallet balances.
type GetBalancesResultEntry struct {
	Trusted          codec.Amount `json:"trusted"`
	UntrustedPending codec.Amount `json:"untrusted_pending"`
	Immature         codec.Amount `json:"immature"`
}

// GetBalancesResult models the result of "getbalances".
type GetBalancesResult struct {
	Mine      GetBalancesResultEntry  `json:"mine"`
	Watchonly *GetBalancesResultEntry `json:"watchonly,omitempty"`
}

// TxCategory classifies a wallet transaction detail entry.
type TxCategory string

const (
	TxCategorySend     TxCategory = "send"
	TxCategoryReceive  TxCategory = "receive"
	TxCategoryGenerate TxCategory = "generate"
	TxCategoryImmature TxCategory = "immature"
	TxCategoryOrphan   TxCategory = "orphan"
)

// WalletTxInfo is the chain placement shared by every wallet transaction
// result.
type WalletTxInfo struct {
	Confirmations   int32      `json:"confirmations"`
	BlockHash       *BlockHash `json:"blockhash,omitempty"`
	BlockIndex      *uint64    `json:"blockindex,omitempty"`
	BlockTime       *uint64    `json:"blocktime,omitempty"`
	BlockHeight     *uint32    `json:"blockheight,omitempty"`
	Txid            Txid       `json:"txid"`
	Time            uint64     `json:"time"`
	TimeReceived    uint64     `json:"timereceived"`
	WalletConflicts []Txid     `json:"walletconflicts"`
}

// WalletTxDetail describes one send or receive leg of a wallet transaction.
// Amount and fee are signed: sends are negative.
type WalletTxDetail struct {
	InvolvesWatchonly *bool         `json:"involvesWatchonly,omitempty"`
	Address           *string       `json:"address,omitempty"`
	Category          TxCategory    `json:"category"`
	Amount            codec.Amount  `json:"amount"`
	Label             *string       `json:"label,omitempty"`
	Vout              uint32        `json:"vout"`
	Fee               *codec.Amount `json:"fee,omitempty"`
	Abandoned         *bool         `json:"abandoned,omitempty"`
}

// ListTransactionResult is one entry in "listtransactions": the chain info
// and the detail flattened into a single object.
type ListTransactionResult struct {
	WalletTxInfo
	WalletTxDetail

	Trusted *bool   `json:"trusted,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// ListSinceBlockResult models the result of "listsinceblock".
type ListSinceBlockResult struct {
	Transactions []ListTransactionResult `json:"transactions"`
	Removed      []ListTransactionResult `json:"removed,omitempty"`
	LastBlock    BlockHash               `json:"lastblock"`
}

// GetTransactionLockedResult models the result of "gettransactionlocked".
type GetTransactionLockedResult struct {
	Height    int32 `json:"height"`
	ChainLock bool  `json:"chainlock"`
	Mempool   bool  `json:"mempool"`
}

// AssetUnlockStatus is the lifecycle state of a platform withdrawal.
type AssetUnlockStatus string

const (
	AssetUnlockChainlocked AssetUnlockStatus = "chainlocked"
	AssetUnlockMined       AssetUnlockStatus = "mined"
	AssetUnlockMempooled   AssetUnlockStatus = "mempooled"
	AssetUnlockUnknown     AssetUnlockStatus = "unknown"
)

// AssetUnlockStatusResult is one entry in the result of
// "getassetunlockstatuses".
type AssetUnlockStatusResult struct {
	Index  uint64            `json:"index"`
	Status AssetUnlockStatus `json:"status"`
}

// GetTxOutResult models the result of "gettxout".
type GetTxOutResult struct {
	BestBlock     BlockHash        `json:"bestblock"`
	Confirmations uint32           `json:"confirmations"`
	Value         codec.Amount     `json:"value"`
	ScriptPubKey  VoutScriptPubKey `json:"scriptPubKey"`
	Coinbase      bool             `json:"coinbase"`
}

// ListUnspentQueryOptions filters the output set of "listunspent".
type ListUnspentQueryOptions struct {
	MinimumAmount    *codec.Amount `json:"minimumAmount,omitempty"`
	MaximumAmount    *codec.Amount `json:"maximumAmount,omitempty"`
	MaximumCount     *uint64       `json:"maximumCount,omitempty"`
	MinimumSumAmount *codec.Amount `json:"minimumSumAmount,omitempty"`
}

// ListUnspentResultEntry is one entry in the result of "listunspent".
type ListUnspentResultEntry struct {
	Txid           Txid           `json:"txid"`
	Vout           uint32         `json:"vout"`
	Address        *string        `json:"address,omitempty"`
	ScriptPubKey   codec.HexBytes `json:"scriptPubKey"`
	RedeemScript   codec.HexBytes `json:"redeemScript,omitempty"`
	Amount         codec.Amount   `json:"amount"`
	Confirmations  uint32         `json:"confirmations"`
	Spendable      bool           `json:"spendable"`
	Solvable       bool           `json:"solvable"`
	Descriptor     *string        `json:"desc,omitempty"`
	Reused         *bool          `json:"reused,omitempty"`
	Safe           bool           `json:"safe"`
	CoinjoinRounds int32          `json:"coinjoin_rounds"`
}

// ListReceivedByAddressResult is one entry in the result of
// "listreceivedbyaddress".
type ListReceivedByAddressResult struct {
	InvolvesWatchonly bool         `json:"involvesWatchonly,omitempty"`
	Address           string       `json:"address"`
	Amount            codec.Amount `json:"amount"`
	Confirmations     uint32       `json:"confirmations"`
	Label             string       `json:"label"`
	Txids             []Txid       `json:"txids"`
}

// AddressLabel is one label attached to an address. Newer nodes send a bare
// string, older ones an object with a purpose.
type AddressLabel struct {
	Name    string
	Purpose *string
}

func (l AddressLabel) MarshalJSON() ([]byte, error) {
	if l.Purpose == nil {
		return json.Marshal(l.Name)
	}
	return json.Marshal(struct {
		Name    string `json:"name"`
		Purpose string `json:"purpose"`
	}{Name: l.Name, Purpose: *l.Purpose})
}

func (l *AddressLabel) UnmarshalJSON(data []byte) error {
	switch codec.JSONKind(data) {
	case '"':
		if err := json.Unmarshal(data, &l.Name); err != nil {
			return err
		}
		l.Purpose = nil
		return nil
	case '{':
		var obj struct {
			Name    string `json:"name"`
			Purpose string `json:"purpose"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		l.Name = obj.Name
		l.Purpose = &obj.Purpose
		return nil
	default:
		return fmt.Errorf("%w: label is neither string nor object", codec.ErrShapeMismatch)
	}
}

// GetAddressInfoResult models the result of "getaddressinfo".
type GetAddressInfoResult struct {
	Address             string            `json:"address"`
	ScriptPubKey        codec.HexBytes    `json:"scriptPubKey"`
	IsMine              bool              `json:"ismine"`
	IsWatchonly         bool              `json:"iswatchonly"`
	Solvable            bool              `json:"solvable"`
	Descriptor          *string           `json:"desc,omitempty"`
	IsScript            bool              `json:"isscript"`
	IsChange            bool              `json:"ischange"`
	Script              *ScriptPubkeyType `json:"script,omitempty"`
	Hex                 codec.HexBytes    `json:"hex,omitempty"`
	PubKeys             []string          `json:"pubkeys,omitempty"`
	PubKey              *string           `json:"pubkey,omitempty"`
	SignaturesRequired  *uint32           `json:"sigsrequired,omitempty"`
	IsCompressed        *bool             `json:"iscompressed,omitempty"`
	Timestamp           *uint64           `json:"timestamp,omitempty"`
	HDChainID           *string           `json:"hdchainid,omitempty"`
	HDKeyPath           *string           `json:"hdkeypath,omitempty"`
	HDMasterFingerprint *string           `json:"hdmasterfingerprint,omitempty"`
	Labels              []AddressLabel    `json:"labels"`
}

// RescanSince is the rescan starting point of an "importmulti" request:
// either the literal "now" or a unix timestamp.
type RescanSince struct {
	Now       bool
	Timestamp uint64
}

// RescanNow skips the historical rescan entirely.
func RescanNow() RescanSince {
	return RescanSince{Now: true}
}

// RescanFrom rescans from the given unix timestamp.
func RescanFrom(ts uint64) RescanSince {
	return RescanSince{Timestamp: ts}
}

func (r RescanSince) MarshalJSON() ([]byte, error) {
	if r.Now {
		return json.Marshal("now")
	}
	return json.Marshal(r.Timestamp)
}

func (r *RescanSince) UnmarshalJSON(data []byte) error {
	switch kind := codec.JSONKind(data); {
	case kind == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil || s != "now" {
			return fmt.Errorf("%w: rescan point is neither timestamp nor \"now\"", codec.ErrShapeMismatch)
		}
		*r = RescanSince{Now: true}
		return nil
	case kind >= '0' && kind <= '9':
		var ts uint64
		if err := json.Unmarshal(data, &ts); err != nil {
			return err
		}
		*r = RescanSince{Timestamp: ts}
		return nil
	default:
		return fmt.Errorf("%w: rescan point is neither timestamp nor \"now\"", codec.ErrShapeMismatch)
	}
}

// ImportMultiRequest is one import descriptor for "importmulti".
type ImportMultiRequest struct {
	Timestamp     RescanSince    `json:"timestamp"`
	Descriptor    *string        `json:"desc,omitempty"`
	ScriptPubKey  *ScriptOrAddr  `json:"scriptPubKey,omitempty"`
	RedeemScript  codec.HexBytes `json:"redeemscript,omitempty"`
	WitnessScript codec.HexBytes `json:"witnessscript,omitempty"`
	PubKeys       []string       `json:"pubkeys,omitempty"`
	Keys          []string       `json:"keys,omitempty"`
	Range         *[2]uint64     `json:"range,omitempty"`
	Internal      *bool          `json:"internal,omitempty"`
	Watchonly     *bool          `json:"watchonly,omitempty"`
	Label         *string        `json:"label,omitempty"`
	Keypool       *bool          `json:"keypool,omitempty"`
}

// ScriptOrAddr is the scriptPubKey slot of an import request: a raw hex
// script or an {"address": ...} object.
type ScriptOrAddr struct {
	Script  codec.HexBytes
	Address string
}

func (s ScriptOrAddr) MarshalJSON() ([]byte, error) {
	if s.Address != "" {
		return json.Marshal(struct {
			Address string `json:"address"`
		}{Address: s.Address})
	}
	return json.Marshal(s.Script)
}

func (s *ScriptOrAddr) UnmarshalJSON(data []byte) error {
	switch codec.JSONKind(data) {
	case '"':
		var script codec.HexBytes
		if err := json.Unmarshal(data, &script); err != nil {
			return err
		}
		*s = ScriptOrAddr{Script: script}
		return nil
	case '{':
		var obj struct {
			Address string `json:"address"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*s = ScriptOrAddr{Address: obj.Address}
		return nil
	default:
		return fmt.Errorf("%w: scriptPubKey is neither hex nor address object", codec.ErrShapeMismatch)
	}
}

// ImportMultiOptions tunes "importmulti".
type ImportMultiOptions struct {
	Rescan *bool `json:"rescan,omitempty"`
}

// ImportMultiResultError is the per-request failure detail of "importmulti".
type ImportMultiResultError struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// ImportMultiResult is one entry in the result of "importmulti".
type ImportMultiResult struct {
	Success  bool                    `json:"success"`
	Warnings []string                `json:"warnings,omitempty"`
	Error    *ImportMultiResultError `json:"error,omitempty"`
}

// AddressType selects the kind of address the wallet generates.
type AddressType string

const (
	AddressTypeLegacy     AddressType = "legacy"
	AddressTypeP2SHSegwit AddressType = "p2sh-segwit"
	AddressTypeBech32     AddressType = "bech32"
)

// WalletCreateFundedPsbtOptions tunes coin selection for
// "walletcreatefundedpsbt".
type WalletCreateFundedPsbtOptions struct {
	AddInputs              *bool         `json:"add_inputs,omitempty"`
	ChangeAddress          *string       `json:"changeAddress,omitempty"`
	ChangePosition         *uint16       `json:"changePosition,omitempty"`
	IncludeWatching        *bool         `json:"includeWatching,omitempty"`
	LockUnspents           *bool         `json:"lockUnspents,omitempty"`
	FeeRate                *codec.Amount `json:"feeRate,omitempty"`
	SubtractFeeFromOutputs []uint16      `json:"subtractFeeFromOutputs,omitempty"`
	ConfTarget             *uint16       `json:"conf_target,omitempty"`
	EstimateMode           *EstimateMode `json:"estimate_mode,omitempty"`
}

// WalletCreateFundedPsbtResult models the result of
// "walletcreatefundedpsbt".
type WalletCreateFundedPsbtResult struct {
	Psbt           string       `json:"psbt"`
	Fee            codec.Amount `json:"fee"`
	ChangePosition int32        `json:"changepos"`
}

// WalletProcessPsbtResult models the result of "walletprocesspsbt".
type WalletProcessPsbtResult struct {
	Psbt     string `json:"psbt"`
	Complete bool   `json:"complete"`
}

// RescanBlockchainResult models the result of "rescanblockchain".
type RescanBlockchainResult struct {
	StartHeight uint64  `json:"start_height"`
	StopHeight  *uint64 `json:"stop_height,omitempty"`
}

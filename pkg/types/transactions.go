package types

import (
	"github.com/erc7824/dashrpc/pkg/codec"
)

// ScriptPubkeyType classifies an output script.
type ScriptPubkeyType string

const (
	ScriptNonstandard ScriptPubkeyType = "nonstandard"
	ScriptPubkey      ScriptPubkeyType = "pubkey"
	ScriptPubkeyHash  ScriptPubkeyType = "pubkeyhash"
	ScriptHash        ScriptPubkeyType = "scripthash"
	ScriptMultiSig    ScriptPubkeyType = "multisig"
	ScriptNullData    ScriptPubkeyType = "nulldata"
)

// VinScriptSig is the unlocking script of a transaction input.
type VinScriptSig struct {
	Asm string         `json:"asm"`
	Hex codec.HexBytes `json:"hex"`
}

// Vin is one decoded transaction input. Coinbase inputs carry only the
// Coinbase and Sequence fields.
type Vin struct {
	Txid      *Txid          `json:"txid,omitempty"`
	Vout      *uint32        `json:"vout,omitempty"`
	ScriptSig *VinScriptSig  `json:"scriptSig,omitempty"`
	Coinbase  codec.HexBytes `json:"coinbase,omitempty"`
	Value     *codec.Amount  `json:"value,omitempty"`
	ValueSat  *int64         `json:"valueSat,omitempty"`
	Addresses []string       `json:"addresses,omitempty"`
	Sequence  uint32         `json:"sequence"`
}

// IsCoinbase reports whether this input spends the block subsidy.
func (v *Vin) IsCoinbase() bool {
	return v.Coinbase != nil
}

// VoutScriptPubKey is the locking script of a transaction output.
type VoutScriptPubKey struct {
	Asm       string            `json:"asm"`
	Hex       codec.HexBytes    `json:"hex"`
	ReqSigs   *uint32           `json:"reqSigs,omitempty"`
	Type      *ScriptPubkeyType `json:"type,omitempty"`
	Addresses []string          `json:"addresses,omitempty"`
}

// Vout is one decoded transaction output.
type Vout struct {
	Value        codec.Amount     `json:"value"`
	ValueSat     int64            `json:"valueSat"`
	N            uint32           `json:"n"`
	ScriptPubKey VoutScriptPubKey `json:"scriptPubKey"`
}

// GetRawTransactionResult models the result of "getrawtransaction" with
// verbose=true.
type GetRawTransactionResult struct {
	InActiveChain    bool           `json:"in_active_chain"`
	Txid             Txid           `json:"txid"`
	Size             uint64         `json:"size"`
	Version          uint32         `json:"version"`
	Type             uint32         `json:"type"`
	LockTime         uint32         `json:"locktime"`
	Vin              []Vin          `json:"vin"`
	Vout             []Vout         `json:"vout"`
	ExtraPayloadSize *uint32        `json:"extraPayloadSize,omitempty"`
	ExtraPayload     codec.HexBytes `json:"extraPayload,omitempty"`
	Hex              codec.HexBytes `json:"hex"`
	BlockHash        *BlockHash     `json:"blockhash,omitempty"`
	Height           *int64         `json:"height,omitempty"`
	Confirmations    *uint32        `json:"confirmations,omitempty"`
	Time             *uint64        `json:"time,omitempty"`
	BlockTime        *uint64        `json:"blocktime,omitempty"`
	InstantLock      bool           `json:"instantlock"`
	InstantLockLocal bool           `json:"instantlock_internal"`
	ChainLock        bool           `json:"chainlock"`
}

// IsCoinbase reports whether the transaction is a coinbase.
func (r *GetRawTransactionResult) IsCoinbase() bool {
	return len(r.Vin) == 1 && r.Vin[0].IsCoinbase()
}

// CreateRawTransactionInput selects an existing output to spend in
// "createrawtransaction".
type CreateRawTransactionInput struct {
	Txid     Txid    `json:"txid"`
	Vout     uint32  `json:"vout"`
	Sequence *uint32 `json:"sequence,omitempty"`
}

// FundRawTransactionOptions tunes coin selection for "fundrawtransaction".
type FundRawTransactionOptions struct {
	ChangeAddress          *string       `json:"changeAddress,omitempty"`
	ChangePosition         *uint32       `json:"changePosition,omitempty"`
	IncludeWatching        *bool         `json:"includeWatching,omitempty"`
	LockUnspents           *bool         `json:"lockUnspents,omitempty"`
	FeeRate                *codec.Amount `json:"feeRate,omitempty"`
	SubtractFeeFromOutputs []uint32      `json:"subtractFeeFromOutputs,omitempty"`
}

// FundRawTransactionResult models the result of "fundrawtransaction".
type FundRawTransactionResult struct {
	Hex            codec.HexBytes `json:"hex"`
	Fee            codec.Amount   `json:"fee"`
	ChangePosition int32          `json:"changepos"`
}

// SignRawTransactionInput describes a previous output for the offline
// signing calls.
type SignRawTransactionInput struct {
	Txid         Txid           `json:"txid"`
	Vout         uint32         `json:"vout"`
	ScriptPubKey codec.HexBytes `json:"scriptPubKey"`
	RedeemScript codec.HexBytes `json:"redeemScript,omitempty"`
	Amount       *codec.Amount  `json:"amount,omitempty"`
}

// SignRawTransactionResult models the result of the
// "signrawtransactionwith*" calls.
type SignRawTransactionResult struct {
	Hex      codec.HexBytes `json:"hex"`
	Complete bool           `json:"complete"`
}

// TestMempoolAcceptResult is one entry in the result of "testmempoolaccept".
type TestMempoolAcceptResult struct {
	Txid         Txid    `json:"txid"`
	Allowed      bool    `json:"allowed"`
	RejectReason *string `json:"reject-reason,omitempty"`
}

// SigHashType selects the signature hash flags for the signing calls.
type SigHashType string

const (
	SigHashAll                SigHashType = "ALL"
	SigHashNone               SigHashType = "NONE"
	SigHashSingle             SigHashType = "SINGLE"
	SigHashAllAnyoneCanPay    SigHashType = "ALL|ANYONECANPAY"
	SigHashNoneAnyoneCanPay   SigHashType = "NONE|ANYONECANPAY"
	SigHashSingleAnyoneCanPay SigHashType = "SINGLE|ANYONECANPAY"
)

// EstimateMode selects the fee estimate mode.
type EstimateMode string

const (
	EstimateModeUnset        EstimateMode = "UNSET"
	EstimateModeEconomical   EstimateMode = "ECONOMICAL"
	EstimateModeConservative EstimateMode = "CONSERVATIVE"
)

// EstimateSmartFeeResult models the result of "estimatesmartfee".
type EstimateSmartFeeResult struct {
	FeeRate *codec.Amount `json:"feerate,omitempty"`
	Errors  []string      `json:"errors,omitempty"`
	Blocks  int64         `json:"blocks"`
}

// GetDescriptorInfoResult models the result of "getdescriptorinfo".
type GetDescriptorInfoResult struct {
	Descriptor     string `json:"descriptor"`
	Checksum       string `json:"checksum"`
	IsRange        bool   `json:"isrange"`
	IsSolvable     bool   `json:"issolvable"`
	HasPrivateKeys bool   `json:"hasprivatekeys"`
}

// FinalizePsbtResult models the result of "finalizepsbt".
type FinalizePsbtResult struct {
	Psbt     string         `json:"psbt"`
	Hex      codec.HexBytes `json:"hex,omitempty"`
	Complete bool           `json:"complete"`
}

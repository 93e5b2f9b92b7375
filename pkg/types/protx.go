package types

import (
	"encoding/json"
	"fmt"

	"github.com/erc7824/dashrpc/pkg/codec"
)

// ProTxListType selects the subset of provider transactions to list.
type ProTxListType string

const (
	ProTxListRegistered ProTxListType = "registered"
	ProTxListValid      ProTxListType = "valid"
	ProTxListWallet     ProTxListType = "wallet"
)

// ProTxWallet reports which provider keys the wallet holds.
type ProTxWallet struct {
	HasOwnerKey              bool `json:"hasOwnerKey"`
	HasOperatorKey           bool `json:"hasOperatorKey"`
	HasVotingKey             bool `json:"hasVotingKey"`
	OwnsCollateral           bool `json:"ownsCollateral"`
	OwnsPayeeScript          bool `json:"ownsPayeeScript"`
	OwnsOperatorRewardScript bool `json:"ownsOperatorRewardScript"`
}

// ProTxMetaInfo is the local peer bookkeeping for a provider.
type ProTxMetaInfo struct {
	LastDSQ                    uint32 `json:"lastDSQ"`
	MixingTxCount              uint32 `json:"mixingTxCount"`
	LastOutboundAttempt        int64  `json:"lastOutboundAttempt"`
	LastOutboundAttemptElapsed int64  `json:"lastOutboundAttemptElapsed"`
	LastOutboundSuccess        int64  `json:"lastOutboundSuccess"`
	LastOutboundSuccessElapsed int64  `json:"lastOutboundSuccessElapsed"`
}

// ProTxInfo models the result of "protx info" and the detailed entries of
// "protx list".
type ProTxInfo struct {
	Type              *string        `json:"type,omitempty"`
	ProTxHash         ProTxHash      `json:"proTxHash"`
	CollateralHash    codec.HexBytes `json:"collateralHash"`
	CollateralIndex   uint32         `json:"collateralIndex"`
	CollateralAddress string         `json:"collateralAddress"`
	OperatorReward    uint32         `json:"operatorReward"`
	State             DMNState       `json:"state"`
	Confirmations     uint32         `json:"confirmations"`
	Wallet            *ProTxWallet   `json:"wallet,omitempty"`
	MetaInfo          ProTxMetaInfo  `json:"metaInfo"`
}

// ProTxList models the result of "protx list": bare hashes by default, or
// full infos when detailed=true.
type ProTxList struct {
	Hashes []ProTxHash
	Infos  []ProTxInfo
}

// Detailed reports whether the list carries full infos.
func (l ProTxList) Detailed() bool {
	return l.Infos != nil
}

func (l ProTxList) MarshalJSON() ([]byte, error) {
	if l.Detailed() {
		return json.Marshal(l.Infos)
	}
	return json.Marshal(l.Hashes)
}

func (l *ProTxList) UnmarshalJSON(data []byte) error {
	*l = ProTxList{}

	if codec.JSONKind(data) != '[' {
		return fmt.Errorf("%w: protx list is not a list", codec.ErrShapeMismatch)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	// The two list forms differ in their element kind. An empty list
	// decodes as the hash form.
	if len(items) == 0 || codec.JSONKind(items[0]) != '{' {
		var hashes []ProTxHash
		if err := json.Unmarshal(data, &hashes); err != nil {
			return fmt.Errorf("%w: protx list is neither hashes nor infos", codec.ErrShapeMismatch)
		}
		l.Hashes = hashes
		return nil
	}

	var infos []ProTxInfo
	if err := json.Unmarshal(data, &infos); err != nil {
		return err
	}
	l.Infos = infos
	return nil
}

// ProTxRegPrepare models the result of "protx register_prepare".
type ProTxRegPrepare struct {
	Tx                ProTxHash `json:"tx"`
	CollateralAddress string    `json:"collateralAddress"`
	SignMessage       string    `json:"signMessage"`
}

// ProTxRevokeReason explains why an operator revokes its service.
type ProTxRevokeReason uint8

const (
	RevokeNotSpecified         ProTxRevokeReason = 0
	RevokeTerminationOfService ProTxRevokeReason = 1
	RevokeCompromisedKeys      ProTxRevokeReason = 2
	RevokeChangeOfKeys         ProTxRevokeReason = 3
)

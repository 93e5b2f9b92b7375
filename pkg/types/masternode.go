package types

import (
	"encoding/json"
	"fmt"

	"github.com/erc7824/dashrpc/pkg/codec"
)

// GetMasternodeCountResult models the result of "masternode count".
type GetMasternodeCountResult struct {
	Total   uint32 `json:"total"`
	Enabled uint32 `json:"enabled"`
}

// MasternodeType distinguishes regular masternodes from Evo nodes.
type MasternodeType string

const (
	MasternodeRegular MasternodeType = "Regular"
	MasternodeEvo     MasternodeType = "Evo"
)

// Masternode is one entry in the result of "masternode list".
type Masternode struct {
	ProTxHash           ProTxHash      `json:"proTxHash"`
	Address             string         `json:"address"`
	Payee               string         `json:"payee"`
	Status              string         `json:"status"`
	Type                MasternodeType `json:"type"`
	PlatformNodeID      *string        `json:"platformNodeID,omitempty"`
	PlatformP2PPort     *uint32        `json:"platformP2PPort,omitempty"`
	PlatformHTTPPort    *uint32        `json:"platformHTTPPort,omitempty"`
	PoSePenaltyScore    uint32         `json:"pospenaltyscore"`
	ConsecutivePayments uint32         `json:"consecutivePayments"`
	LastPaidTime        uint32         `json:"lastpaidtime"`
	LastPaidBlock       uint32         `json:"lastpaidblock"`
	OwnerAddress        string         `json:"owneraddress"`
	VotingAddress       string         `json:"votingaddress"`
	CollateralAddress   string         `json:"collateraladdress"`
	PubKeyOperator      string         `json:"pubkeyoperator"`
}

// OptionalHeight is a block height the node reports as -1 when unset.
type OptionalHeight struct {
	Height uint32
	Valid  bool
}

func (h OptionalHeight) MarshalJSON() ([]byte, error) {
	if !h.Valid {
		return []byte("-1"), nil
	}
	return json.Marshal(h.Height)
}

func (h *OptionalHeight) UnmarshalJSON(data []byte) error {
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: height is not a number", codec.ErrShapeMismatch)
	}
	if v < 0 {
		*h = OptionalHeight{}
		return nil
	}
	*h = OptionalHeight{Height: uint32(v), Valid: true}
	return nil
}

// DMNState is the registered state of a deterministic masternode.
type DMNState struct {
	Service               string         `json:"service"`
	RegisteredHeight      uint32         `json:"registeredHeight"`
	LastPaidHeight        uint32         `json:"lastPaidHeight"`
	ConsecutivePayments   int32          `json:"consecutivePayments"`
	PoSePenalty           uint32         `json:"PoSePenalty"`
	PoSeRevivedHeight     OptionalHeight `json:"PoSeRevivedHeight"`
	PoSeBanHeight         OptionalHeight `json:"PoSeBanHeight"`
	RevocationReason      uint32         `json:"revocationReason"`
	OwnerAddress          string         `json:"ownerAddress"`
	VotingAddress         string         `json:"votingAddress"`
	PayoutAddress         string         `json:"payoutAddress"`
	PubKeyOperator        codec.HexBytes `json:"pubKeyOperator"`
	OperatorPayoutAddress *string        `json:"operatorPayoutAddress,omitempty"`
	PlatformNodeID        *string        `json:"platformNodeID,omitempty"`
	PlatformP2PPort       *uint32        `json:"platformP2PPort,omitempty"`
	PlatformHTTPPort      *uint32        `json:"platformHTTPPort,omitempty"`
}

// DMNStateDiff carries only the state fields that changed. A nil pointer
// means the field did not change; PoSe heights additionally distinguish a
// reported -1 from absence.
type DMNStateDiff struct {
	Service               *string         `json:"service,omitempty"`
	RegisteredHeight      *uint32         `json:"registeredHeight,omitempty"`
	LastPaidHeight        *uint32         `json:"lastPaidHeight,omitempty"`
	ConsecutivePayments   *int32          `json:"consecutivePayments,omitempty"`
	PoSePenalty           *uint32         `json:"PoSePenalty,omitempty"`
	PoSeRevivedHeight     *OptionalHeight `json:"PoSeRevivedHeight,omitempty"`
	PoSeBanHeight         *OptionalHeight `json:"PoSeBanHeight,omitempty"`
	RevocationReason      *uint32         `json:"revocationReason,omitempty"`
	OwnerAddress          *string         `json:"ownerAddress,omitempty"`
	VotingAddress         *string         `json:"votingAddress,omitempty"`
	PayoutAddress         *string         `json:"payoutAddress,omitempty"`
	PubKeyOperator        codec.HexBytes  `json:"pubKeyOperator,omitempty"`
	OperatorPayoutAddress *string         `json:"operatorPayoutAddress,omitempty"`
	PlatformNodeID        *string         `json:"platformNodeID,omitempty"`
	PlatformP2PPort       *uint32         `json:"platformP2PPort,omitempty"`
	PlatformHTTPPort      *uint32         `json:"platformHTTPPort,omitempty"`
}

// Apply folds the diff into the state.
func (s *DMNState) Apply(diff *DMNStateDiff) {
	if diff.Service != nil {
		s.Service = *diff.Service
	}
	if diff.RegisteredHeight != nil {
		s.RegisteredHeight = *diff.RegisteredHeight
	}
	if diff.LastPaidHeight != nil {
		s.LastPaidHeight = *diff.LastPaidHeight
	}
	if diff.ConsecutivePayments != nil {
		s.ConsecutivePayments = *diff.ConsecutivePayments
	}
	if diff.PoSePenalty != nil {
		s.PoSePenalty = *diff.PoSePenalty
	}
	if diff.PoSeRevivedHeight != nil {
		s.PoSeRevivedHeight = *diff.PoSeRevivedHeight
	}
	if diff.PoSeBanHeight != nil {
		s.PoSeBanHeight = *diff.PoSeBanHeight
	}
	if diff.RevocationReason != nil {
		s.RevocationReason = *diff.RevocationReason
	}
	if diff.OwnerAddress != nil {
		s.OwnerAddress = *diff.OwnerAddress
	}
	if diff.VotingAddress != nil {
		s.VotingAddress = *diff.VotingAddress
	}
	if diff.PayoutAddress != nil {
		s.PayoutAddress = *diff.PayoutAddress
	}
	if diff.PubKeyOperator != nil {
		s.PubKeyOperator = diff.PubKeyOperator
	}
	if diff.OperatorPayoutAddress != nil {
		s.OperatorPayoutAddress = diff.OperatorPayoutAddress
	}
	if diff.PlatformNodeID != nil {
		s.PlatformNodeID = diff.PlatformNodeID
	}
	if diff.PlatformP2PPort != nil {
		s.PlatformP2PPort = diff.PlatformP2PPort
	}
	if diff.PlatformHTTPPort != nil {
		s.PlatformHTTPPort = diff.PlatformHTTPPort
	}
}

// MasternodeListItem is one added masternode in a "protx diff" listing.
type MasternodeListItem struct {
	Type              MasternodeType `json:"type"`
	ProTxHash         ProTxHash      `json:"proTxHash"`
	CollateralHash    Txid           `json:"collateralHash"`
	CollateralIndex   uint32         `json:"collateralIndex"`
	CollateralAddress string         `json:"collateralAddress"`
	OperatorReward    float64        `json:"operatorReward"`
	State             DMNState       `json:"state"`
}

// UpdatedMasternode pairs a masternode with its state diff.
type UpdatedMasternode struct {
	ProTxHash ProTxHash
	Diff      DMNStateDiff
}

// MasternodeListDiff models the result of "protx listdiff".
//
// The node encodes updatedMNs as a list of single-entry objects keyed by
// ProTx hash; UnmarshalJSON flattens them into UpdatedMasternode pairs.
type MasternodeListDiff struct {
	BaseHeight  uint32               `json:"baseHeight"`
	BlockHeight uint32               `json:"blockHeight"`
	AddedMNs    []MasternodeListItem `json:"addedMNs"`
	RemovedMNs  []ProTxHash          `json:"removedMNs"`
	UpdatedMNs  []UpdatedMasternode  `json:"updatedMNs"`
}

func (d *MasternodeListDiff) UnmarshalJSON(data []byte) error {
	var raw struct {
		BaseHeight  uint32                    `json:"baseHeight"`
		BlockHeight uint32                    `json:"blockHeight"`
		AddedMNs    []MasternodeListItem      `json:"addedMNs"`
		RemovedMNs  []ProTxHash               `json:"removedMNs"`
		UpdatedMNs  []map[string]DMNStateDiff `json:"updatedMNs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	updated := make([]UpdatedMasternode, 0, len(raw.UpdatedMNs))
	for _, entry := range raw.UpdatedMNs {
		for key, diff := range entry {
			hash, err := codec.NewHashFromHex(key)
			if err != nil {
				return err
			}
			updated = append(updated, UpdatedMasternode{ProTxHash: hash, Diff: diff})
		}
	}

	d.BaseHeight = raw.BaseHeight
	d.BlockHeight = raw.BlockHeight
	d.AddedMNs = raw.AddedMNs
	d.RemovedMNs = raw.RemovedMNs
	d.UpdatedMNs = updated
	return nil
}

// Payee is one payout script of a masternode payment.
type Payee struct {
	Address string `json:"address"`
	Script  string `json:"script"`
	Amount  int64  `json:"amount"`
}

// MasternodePayment is the payout of one masternode in a block.
type MasternodePayment struct {
	ProTxHash ProTxHash `json:"proTxHash"`
	Amount    int64     `json:"amount"`
	Payees    []Payee   `json:"payees"`
}

// GetMasternodePaymentsResult is one entry in the result of
// "masternode payments".
type GetMasternodePaymentsResult struct {
	Height      uint64              `json:"height"`
	BlockHash   BlockHash           `json:"blockhash"`
	Amount      int64               `json:"amount"`
	Masternodes []MasternodePayment `json:"masternodes"`
}

// MasternodeState is the lifecycle state reported by "masternode status".
type MasternodeState string

const (
	MNStateWaitingForProtx    MasternodeState = "WAITING_FOR_PROTX"
	MNStatePoseBanned         MasternodeState = "POSE_BANNED"
	MNStateRemoved            MasternodeState = "REMOVED"
	MNStateOperatorKeyChanged MasternodeState = "OPERATOR_KEY_CHANGED"
	MNStateProtxIPChanged     MasternodeState = "PROTX_IP_CHANGED"
	MNStateReady              MasternodeState = "READY"
	MNStateError              MasternodeState = "ERROR"
	MNStateUnknown            MasternodeState = "UNKNOWN"
)

// MasternodeStatus models the result of "masternode status".
type MasternodeStatus struct {
	Outpoint        OutPoint        `json:"outpoint"`
	Service         string          `json:"service"`
	ProTxHash       ProTxHash       `json:"proTxHash"`
	Type            string          `json:"type"`
	CollateralHash  codec.HexBytes  `json:"collateralHash"`
	CollateralIndex uint32          `json:"collateralIndex"`
	DMNState        DMNState        `json:"dmnState"`
	State           MasternodeState `json:"state"`
	Status          string          `json:"status"`
}

// MnSyncAsset identifies the stage of the masternode sync process.
type MnSyncAsset uint16

const (
	MnSyncInitial    MnSyncAsset = 0
	MnSyncBlockchain MnSyncAsset = 1
	MnSyncGovernance MnSyncAsset = 2
	MnSyncFinished   MnSyncAsset = 999
)

// mnSyncAssetCodec maps the node's asset name strings to sync stages.
var mnSyncAssetCodec = codec.NewEnumCodec(map[string]MnSyncAsset{
	"MASTERNODE_SYNC_INITIAL":    MnSyncInitial,
	"MASTERNODE_SYNC_BLOCKCHAIN": MnSyncBlockchain,
	"MASTERNODE_SYNC_GOVERNANCE": MnSyncGovernance,
	"MASTERNODE_SYNC_FINISHED":   MnSyncFinished,
})

func (a MnSyncAsset) String() string {
	name, err := mnSyncAssetCodec.Encode(a)
	if err != nil {
		return fmt.Sprintf("MASTERNODE_SYNC_%d", uint16(a))
	}
	return name
}

func (a MnSyncAsset) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *MnSyncAsset) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: sync asset name is not a string", codec.ErrShapeMismatch)
	}
	v, err := mnSyncAssetCodec.Decode(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MnSyncStatus models the result of "mnsync status".
type MnSyncStatus struct {
	AssetID            uint16      `json:"AssetID"`
	AssetName          MnSyncAsset `json:"AssetName"`
	AssetStartTime     uint32      `json:"AssetStartTime"`
	Attempt            uint16      `json:"Attempt"`
	IsBlockchainSynced bool        `json:"IsBlockchainSynced"`
	IsSynced           bool        `json:"IsSynced"`
}

// BLS models the result of "bls generate" and "bls fromsecret".
type BLS struct {
	Secret codec.HexBytes `json:"secret"`
	Public codec.HexBytes `json:"public"`
}

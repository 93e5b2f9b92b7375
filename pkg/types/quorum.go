package types

import (
	"encoding/json"
	"fmt"

	"github.com/erc7824/dashrpc/pkg/codec"
)

// QuorumType identifies an LLMQ configuration. On the wire it appears both
// as its numeric id and as its llmq_* name, depending on the call.
type QuorumType uint8

const (
	QuorumTypeUnknown         QuorumType = 0
	QuorumLlmq50_60           QuorumType = 1
	QuorumLlmq400_60          QuorumType = 2
	QuorumLlmq400_85          QuorumType = 3
	QuorumLlmq100_67          QuorumType = 4
	QuorumLlmq60_75           QuorumType = 5
	QuorumLlmq25_67           QuorumType = 6
	QuorumLlmqTest            QuorumType = 100
	QuorumLlmqDevnet          QuorumType = 101
	QuorumLlmqTestV17         QuorumType = 102
	QuorumLlmqTestDip0024     QuorumType = 103
	QuorumLlmqTestInstantsend QuorumType = 104
	QuorumLlmqDevnetDip0024   QuorumType = 105
	QuorumLlmqTestPlatform    QuorumType = 106
	QuorumLlmqDevnetPlatform  QuorumType = 107
	QuorumLlmqSingleNode      QuorumType = 111
)

// quorumTypeCodec maps llmq names to their numeric quorum types.
var quorumTypeCodec = codec.NewEnumCodec(map[string]QuorumType{
	"llmq_50_60":            QuorumLlmq50_60,
	"llmq_400_60":           QuorumLlmq400_60,
	"llmq_400_85":           QuorumLlmq400_85,
	"llmq_100_67":           QuorumLlmq100_67,
	"llmq_60_75":            QuorumLlmq60_75,
	"llmq_25_67":            QuorumLlmq25_67,
	"llmq_test":             QuorumLlmqTest,
	"llmq_devnet":           QuorumLlmqDevnet,
	"llmq_test_v17":         QuorumLlmqTestV17,
	"llmq_test_dip0024":     QuorumLlmqTestDip0024,
	"llmq_test_instantsend": QuorumLlmqTestInstantsend,
	"llmq_devnet_dip0024":   QuorumLlmqDevnetDip0024,
	"llmq_test_platform":    QuorumLlmqTestPlatform,
	"llmq_devnet_platform":  QuorumLlmqDevnetPlatform,
	"llmq_1_100":            QuorumLlmqSingleNode,
})

// QuorumTypeFromName resolves an llmq_* name. Unrecognised names map to
// QuorumTypeUnknown.
func QuorumTypeFromName(name string) QuorumType {
	t, err := quorumTypeCodec.Decode(name)
	if err != nil {
		return QuorumTypeUnknown
	}
	return t
}

func (t QuorumType) String() string {
	name, err := quorumTypeCodec.Encode(t)
	if err != nil {
		return "unknown"
	}
	return name
}

// MarshalJSON emits the numeric id, which is what the node expects in
// arguments.
func (t QuorumType) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint8(t))
}

// UnmarshalJSON accepts either the numeric id or the llmq_* name. Values
// outside the known table decode to QuorumTypeUnknown, mirroring how the
// node treats retired quorum types.
func (t *QuorumType) UnmarshalJSON(data []byte) error {
	switch kind := codec.JSONKind(data); {
	case kind == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = QuorumTypeFromName(s)
		return nil
	case kind == '-' || (kind >= '0' && kind <= '9'):
		var n uint64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		if _, err := quorumTypeCodec.Encode(QuorumType(n)); err != nil {
			*t = QuorumTypeUnknown
			return nil
		}
		*t = QuorumType(n)
		return nil
	default:
		return fmt.Errorf("%w: quorum type is neither number nor string", codec.ErrShapeMismatch)
	}
}

// MarshalText lets a QuorumType serve as a JSON object key, where the node
// uses the llmq_* name.
func (t QuorumType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses an llmq_* object key.
func (t *QuorumType) UnmarshalText(text []byte) error {
	*t = QuorumTypeFromName(string(text))
	return nil
}

// QuorumListResult models the result of "quorum list": active quorum hashes
// grouped by quorum type name.
type QuorumListResult struct {
	QuorumsByType map[QuorumType][]QuorumHash
}

func (r QuorumListResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.QuorumsByType)
}

func (r *QuorumListResult) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.QuorumsByType)
}

// ExtendedQuorumDetails is the per-quorum detail of "quorum listextended".
type ExtendedQuorumDetails struct {
	CreationHeight  uint32    `json:"creationHeight"`
	QuorumIndex     *uint32   `json:"quorumIndex,omitempty"`
	MinedBlockHash  BlockHash `json:"minedBlockHash"`
	NumValidMembers uint32    `json:"numValidMembers"`
	HealthRatio     Ratio     `json:"healthRatio"`
}

// Ratio is a fraction the node prints as a quoted decimal string.
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("%.2f", float64(r)))
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	switch codec.JSONKind(data) {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if _, err := fmt.Sscanf(s, "%f", (*float64)(r)); err != nil {
			return fmt.Errorf("%w: ratio %q is not numeric", codec.ErrShapeMismatch, s)
		}
		return nil
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("%w: ratio is neither number nor string", codec.ErrShapeMismatch)
		}
		*r = Ratio(f)
		return nil
	}
}

// ExtendedQuorumListResult models the result of "quorum listextended".
//
// Per type, the node sends a list of single-entry objects keyed by quorum
// hash; UnmarshalJSON flattens each list into one map.
type ExtendedQuorumListResult struct {
	QuorumsByType map[QuorumType]map[QuorumHash]ExtendedQuorumDetails
}

func (r *ExtendedQuorumListResult) UnmarshalJSON(data []byte) error {
	var raw map[QuorumType][]map[string]ExtendedQuorumDetails
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.QuorumsByType = make(map[QuorumType]map[QuorumHash]ExtendedQuorumDetails, len(raw))
	for qt, entries := range raw {
		flat := make(map[QuorumHash]ExtendedQuorumDetails)
		for _, entry := range entries {
			for key, details := range entry {
				hash, err := codec.NewHashFromHex(key)
				if err != nil {
					return err
				}
				flat[hash] = details
			}
		}
		r.QuorumsByType[qt] = flat
	}
	return nil
}

// QuorumMember is one member in the result of "quorum info".
type QuorumMember struct {
	ProTxHash      ProTxHash      `json:"proTxHash"`
	PubKeyOperator codec.HexBytes `json:"pubKeyOperator"`
	Valid          bool           `json:"valid"`
	PubKeyShare    codec.HexBytes `json:"pubKeyShare,omitempty"`
}

// QuorumInfoResult models the result of "quorum info".
type QuorumInfoResult struct {
	Height          uint32         `json:"height"`
	Type            QuorumType     `json:"type"`
	QuorumHash      QuorumHash     `json:"quorumHash"`
	QuorumIndex     uint32         `json:"quorumIndex"`
	MinedBlock      codec.HexBytes `json:"minedBlock"`
	Members         []QuorumMember `json:"members"`
	QuorumPublicKey codec.HexBytes `json:"quorumPublicKey"`
	SecretKeyShare  codec.HexBytes `json:"secretKeyShare,omitempty"`
}

// QuorumSessionMember identifies one member inside a DKG session report.
type QuorumSessionMember struct {
	MemberIndex uint32    `json:"memberIndex"`
	ProTxHash   ProTxHash `json:"proTxHash"`
}

// MemberDetail is a per-member DKG statistic. Depending on the detail level
// the node reports a count, a list of member indexes, or full member
// references.
type MemberDetail struct {
	Count   *int32
	Indexes []int32
	Members []QuorumSessionMember
}

func (d MemberDetail) MarshalJSON() ([]byte, error) {
	switch {
	case d.Count != nil:
		return json.Marshal(*d.Count)
	case d.Members != nil:
		return json.Marshal(d.Members)
	default:
		return json.Marshal(d.Indexes)
	}
}

func (d *MemberDetail) UnmarshalJSON(data []byte) error {
	*d = MemberDetail{}

	switch codec.JSONKind(data) {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		// An empty list is indistinguishable between the two list forms;
		// treat it as indexes.
		if len(items) == 0 || codec.JSONKind(items[0]) != '{' {
			var indexes []int32
			if err := json.Unmarshal(data, &indexes); err != nil {
				return fmt.Errorf("%w: member detail list is neither indexes nor members", codec.ErrShapeMismatch)
			}
			d.Indexes = indexes
			return nil
		}
		var members []QuorumSessionMember
		if err := json.Unmarshal(data, &members); err != nil {
			return err
		}
		d.Members = members
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var count int32
		if err := json.Unmarshal(data, &count); err != nil {
			return err
		}
		d.Count = &count
		return nil
	default:
		return fmt.Errorf("%w: member detail has no known form", codec.ErrShapeMismatch)
	}
}

// QuorumSessionStatus is the status block of one DKG session.
type QuorumSessionStatus struct {
	LlmqType                     QuorumType   `json:"llmqType"`
	QuorumHash                   QuorumHash   `json:"quorumHash"`
	QuorumHeight                 uint32       `json:"quorumHeight"`
	Phase                        uint8        `json:"phase"`
	SentContributions            bool         `json:"sentContributions"`
	SentComplaint                bool         `json:"sentComplaint"`
	SentJustification            bool         `json:"sentJustification"`
	SentPrematureCommitment      bool         `json:"sentPrematureCommitment"`
	Aborted                      bool         `json:"aborted"`
	BadMembers                   MemberDetail `json:"badMembers"`
	WeComplain                   MemberDetail `json:"weComplain"`
	ReceivedContributions        MemberDetail `json:"receivedContributions"`
	ReceivedComplaints           MemberDetail `json:"receivedComplaints"`
	ReceivedJustifications       MemberDetail `json:"receivedJustifications"`
	ReceivedPrematureCommitments MemberDetail `json:"receivedPrematureCommitments"`
	AllMembers                   []QuorumHash `json:"allMembers,omitempty"`
}

// QuorumSession is one active DKG session.
type QuorumSession struct {
	LlmqType    QuorumType          `json:"llmqType"`
	QuorumIndex uint32              `json:"quorumIndex"`
	Status      QuorumSessionStatus `json:"status"`
}

// QuorumConnectionInfo is the connectivity of one quorum member.
type QuorumConnectionInfo struct {
	ProTxHash ProTxHash `json:"proTxHash"`
	Connected bool      `json:"connected"`
	Address   *string   `json:"address,omitempty"`
	Outbound  bool      `json:"outbound"`
}

// QuorumConnection reports intra-quorum connectivity for one quorum.
type QuorumConnection struct {
	LlmqType              QuorumType             `json:"llmqType"`
	QuorumIndex           uint32                 `json:"quorumIndex"`
	PQuorumBaseBlockIndex *uint32                `json:"pQuorumBaseBlockIndex,omitempty"`
	QuorumHash            *QuorumHash            `json:"quorumHash,omitempty"`
	PindexTip             *uint32                `json:"pindexTip,omitempty"`
	QuorumConnections     []QuorumConnectionInfo `json:"quorumConnections,omitempty"`
}

// QuorumMinableCommitment is one final commitment ready for mining.
type QuorumMinableCommitment struct {
	Version           uint8          `json:"version"`
	LlmqType          QuorumType     `json:"llmqType"`
	QuorumHash        QuorumHash     `json:"quorumHash"`
	QuorumIndex       uint32         `json:"quorumIndex"`
	SignersCount      uint32         `json:"signersCount"`
	Signers           string         `json:"signers"`
	ValidMembersCount uint32         `json:"validMembersCount"`
	ValidMembers      string         `json:"validMembers"`
	QuorumPublicKey   codec.HexBytes `json:"quorumPublicKey"`
	QuorumVvecHash    codec.HexBytes `json:"quorumVvecHash"`
	QuorumSig         codec.HexBytes `json:"quorumSig"`
	MembersSig        codec.HexBytes `json:"membersSig"`
}

// QuorumDKGStatus models the result of "quorum dkgstatus".
type QuorumDKGStatus struct {
	Time               uint64                    `json:"time"`
	TimeStr            string                    `json:"timeStr"`
	Session            []QuorumSession           `json:"session"`
	QuorumConnections  []QuorumConnection        `json:"quorumConnections"`
	MinableCommitments []QuorumMinableCommitment `json:"minableCommitments"`
}

// QuorumSignature is the share or recovered signature detail of
// "quorum sign" and "quorum getrecsig".
type QuorumSignature struct {
	LlmqType     QuorumType     `json:"llmqType"`
	QuorumHash   QuorumHash     `json:"quorumHash"`
	QuorumMember *uint8         `json:"quorumMember,omitempty"`
	ID           codec.HexBytes `json:"id"`
	MsgHash      codec.HexBytes `json:"msgHash"`
	SignHash     codec.HexBytes `json:"signHash"`
	Signature    codec.HexBytes `json:"signature"`
}

// QuorumSignResult models the result of "quorum sign": a bare status bool,
// or the signature share when submit=false.
type QuorumSignResult struct {
	Status    *bool
	Signature *QuorumSignature
}

// Accepted reports whether the sign request was accepted, for the boolean
// form of the result.
func (r QuorumSignResult) Accepted() bool {
	return r.Status != nil && *r.Status
}

func (r QuorumSignResult) MarshalJSON() ([]byte, error) {
	if r.Signature != nil {
		return json.Marshal(r.Signature)
	}
	return json.Marshal(r.Accepted())
}

func (r *QuorumSignResult) UnmarshalJSON(data []byte) error {
	*r = QuorumSignResult{}

	switch codec.JSONKind(data) {
	case 't', 'f':
		var status bool
		if err := json.Unmarshal(data, &status); err != nil {
			return err
		}
		r.Status = &status
		return nil
	case '{':
		var sig QuorumSignature
		if err := json.Unmarshal(data, &sig); err != nil {
			return err
		}
		r.Signature = &sig
		return nil
	default:
		return fmt.Errorf("%w: sign result is neither bool nor signature", codec.ErrShapeMismatch)
	}
}

// QuorumMemberOf is one quorum membership in the result of
// "quorum memberof".
type QuorumMemberOf struct {
	Height          uint32         `json:"height"`
	Type            QuorumType     `json:"type"`
	QuorumHash      QuorumHash     `json:"quorumHash"`
	MinedBlock      codec.HexBytes `json:"minedBlock"`
	QuorumPublicKey codec.HexBytes `json:"quorumPublicKey"`
	IsValidMember   bool           `json:"isValidMember"`
	MemberIndex     uint32         `json:"memberIndex"`
}

// QuorumSnapshot is one rotation snapshot in "quorum rotationinfo".
type QuorumSnapshot struct {
	ActiveQuorumMembers []bool  `json:"activeQuorumMembers"`
	MnSkipListMode      uint8   `json:"mnSkipListMode"`
	MnSkipList          []uint8 `json:"mnSkipList"`
}

// QuorumItemDeleted names one quorum removed by a diff.
type QuorumItemDeleted struct {
	LlmqType   QuorumType `json:"llmqType"`
	QuorumHash QuorumHash `json:"quorumHash"`
}

// SimplifiedMasternodeEntry is the compact masternode form used inside the
// simplified list diffs of "protx diff" and "quorum rotationinfo".
type SimplifiedMasternodeEntry struct {
	ProRegTxHash   codec.HexBytes `json:"proRegTxHash"`
	ConfirmedHash  codec.HexBytes `json:"confirmedHash"`
	Service        string         `json:"service"`
	PubKeyOperator codec.HexBytes `json:"pubKeyOperator"`
	VotingAddress  string         `json:"votingAddress"`
	IsValid        bool           `json:"isValid"`
}

// SimplifiedMasternodeListDiff models the result of "protx diff" and the
// diff entries of "quorum rotationinfo".
type SimplifiedMasternodeListDiff struct {
	BaseBlockHash     BlockHash                   `json:"baseBlockHash"`
	BlockHash         BlockHash                   `json:"blockHash"`
	CbTxMerkleTree    string                      `json:"cbTxMerkleTree"`
	CbTx              string                      `json:"cbTx"`
	DeletedMNs        []SimplifiedMasternodeEntry `json:"deletedMNs"`
	MnList            []SimplifiedMasternodeEntry `json:"mnList"`
	DeletedQuorums    []QuorumItemDeleted         `json:"deletedQuorums"`
	NewQuorums        []QuorumMinableCommitment   `json:"newQuorums"`
	MerkleRootMNList  codec.HexBytes              `json:"merkleRootMNList"`
	MerkleRootQuorums codec.HexBytes              `json:"merkleRootQuorums"`
}

// QuorumRotationInfo models the result of "quorum rotationinfo".
type QuorumRotationInfo struct {
	ExtraShare               bool                           `json:"extraShare"`
	QuorumSnapshotAtHMinusC  QuorumSnapshot                 `json:"quorumSnapshotAtHMinusC"`
	QuorumSnapshotAtHMinus2C QuorumSnapshot                 `json:"quorumSnapshotAtHMinus2c"`
	QuorumSnapshotAtHMinus3C QuorumSnapshot                 `json:"quorumSnapshotAtHMinus3c"`
	MnListDiffTip            SimplifiedMasternodeListDiff   `json:"mnListDiffTip"`
	MnListDiffH              SimplifiedMasternodeListDiff   `json:"mnListDiffH"`
	MnListDiffAtHMinusC      SimplifiedMasternodeListDiff   `json:"mnListDiffAtHMinusC"`
	MnListDiffAtHMinus2C     SimplifiedMasternodeListDiff   `json:"mnListDiffAtHMinus2c"`
	MnListDiffAtHMinus3C     SimplifiedMasternodeListDiff   `json:"mnListDiffAtHMinus3c"`
	BlockHashList            []BlockHash                    `json:"blockHashList"`
	QuorumSnapshotList       []QuorumSnapshot               `json:"quorumSnapshotList"`
	MnListDiffList           []SimplifiedMasternodeListDiff `json:"mnListDiffList"`
}

// SelectQuorumResult models the result of "quorum selectquorum".
type SelectQuorumResult struct {
	QuorumHash      QuorumHash   `json:"quorumHash"`
	RecoveryMembers []QuorumHash `json:"recoveryMembers"`
}

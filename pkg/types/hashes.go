package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/erc7824/dashrpc/pkg/codec"
)

// The node identifies blocks, transactions, provider registrations and
// quorums by the same 32-byte double-SHA256 digest. The aliases keep method
// signatures readable without inventing distinct representations.
type (
	BlockHash  = codec.Hash
	Txid       = codec.Hash
	ProTxHash  = codec.Hash
	QuorumHash = codec.Hash
)

// OutPoint references a single transaction output. The node prints it as
// "<txid>-<vout>" in masternode status responses.
type OutPoint struct {
	Txid Txid
	Vout uint32
}

func (o OutPoint) String() string {
	return fmt.Sprintf("%s-%d", o.Txid, o.Vout)
}

func (o OutPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *OutPoint) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	idx := strings.LastIndexByte(s, '-')
	if idx < 0 {
		return fmt.Errorf("%w: outpoint %q has no output index", codec.ErrShapeMismatch, s)
	}

	txid, err := codec.NewHashFromHex(s[:idx])
	if err != nil {
		return err
	}
	vout, err := strconv.ParseUint(s[idx+1:], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: outpoint %q has invalid output index", codec.ErrShapeMismatch, s)
	}

	o.Txid = txid
	o.Vout = uint32(vout)
	return nil
}

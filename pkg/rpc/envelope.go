package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/erc7824/dashrpc/pkg/codec"
)

// Version is the protocol version the node speaks.
const Version = "1.0"

// Request is a JSON-RPC 1.0 request envelope.
//
// Parameters are positional: Params[i] is the i-th argument of the method,
// in the order the node documents. The JSON representation is:
//
//	{"jsonrpc":"1.0","id":"<id>","method":"getblockhash","params":[1000]}
type Request struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      string            `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// NewRequest builds a request for the given method and positional
// parameters. A nil parameter list is normalized to an empty one so the
// envelope always carries "params":[].
func NewRequest(id, method string, params []json.RawMessage) *Request {
	if params == nil {
		params = []json.RawMessage{}
	}
	return &Request{
		JSONRPC: Version,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

// Response is a JSON-RPC 1.0 response envelope.
//
// A well-formed response carries exactly one of Result or Error. A void
// method reports success as "result":null, which counts as Result being
// present; only a response with neither field, or with both populated, is
// malformed.
type Response struct {
	ID     json.RawMessage `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *NodeError      `json:"error"`
}

var nullLiteral = []byte("null")

// Validate checks the exactly-one-of invariant on Result and Error.
func (r *Response) Validate() error {
	hasResult := r.Result != nil && !bytes.Equal(r.Result, nullLiteral)
	if r.Error != nil && hasResult {
		return fmt.Errorf("%w: response carries both result and error", codec.ErrShapeMismatch)
	}
	if r.Error == nil && r.Result == nil {
		return fmt.Errorf("%w: response carries neither result nor error", codec.ErrShapeMismatch)
	}
	return nil
}

// MatchesID reports whether the response echoes the given request id.
// The node quotes the id back exactly as it was sent.
func (r *Response) MatchesID(id string) bool {
	var got string
	if err := json.Unmarshal(r.ID, &got); err != nil {
		return false
	}
	return got == id
}

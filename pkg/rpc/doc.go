// Package rpc implements the JSON-RPC 1.0 client machinery used to talk to
// a Dash Core node.
//
// The package has three layers:
//
//   - Envelope: Request and Response model the node's wire format. Requests
//     carry positional parameters; responses carry exactly one of a result
//     or an error object.
//   - Builder: helpers that assemble the positional parameter list.
//     TrimDefaults implements the node's trailing-default convention, so
//     omitted optional arguments are either dropped from the tail or
//     substituted with their documented defaults when a later argument is
//     present.
//   - Dispatcher: Client sends a request over a Transport, classifies the
//     outcome and decodes the result into a caller-supplied value.
//
// # Wire Format
//
// A request is encoded as:
//
//	{"jsonrpc":"1.0","id":"<uuid>","method":"getblockcount","params":[]}
//
// Every call gets a fresh correlation id, and the dispatcher verifies that
// the response echoes it back.
//
// # Error Classification
//
// Call failures fall into exactly one of three kinds:
//
//   - *TransportError: the exchange itself failed (connection refused,
//     timeout, context cancellation). The response body, if any, is not
//     interpreted.
//   - *NodeError: the node answered with its error object. Code and
//     message are preserved verbatim.
//   - *CodecError: the node answered success but the payload could not be
//     decoded into the expected shape.
//
// The kinds are disjoint and errors.As-friendly:
//
//	var nodeErr *rpc.NodeError
//	if errors.As(err, &nodeErr) && nodeErr.Code == -18 {
//	    // wallet not loaded
//	}
//
// The dispatcher performs no retries and keeps no state between calls
// beyond the transport connection itself.
//
// # Transports
//
// Two Transport implementations are provided. HTTPTransport speaks the
// node's plain HTTP POST interface with basic-auth credentials and
// optional per-wallet endpoint routing. WSTransport multiplexes calls over
// a single websocket connection for front-ends that expose one, routing
// responses back to callers by correlation id.
package rpc

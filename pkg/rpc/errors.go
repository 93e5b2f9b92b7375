package rpc

import (
	"errors"
	"fmt"
)

var (
	// ErrDialingWebsocket indicates a failure to establish a websocket connection.
	ErrDialingWebsocket = errors.New("error dialing websocket")
	// ErrAlreadyConnected indicates Dial was called on a live connection.
	ErrAlreadyConnected = errors.New("already connected")
	// ErrNotConnected indicates a call was attempted without a connection.
	ErrNotConnected = errors.New("not connected")
	// ErrReadingMessage indicates a failure to read from the websocket.
	ErrReadingMessage = errors.New("error reading message")
	// ErrSendingRequest indicates a failure to write a request.
	ErrSendingRequest = errors.New("error sending request")
	// ErrNoResponse indicates the connection closed or the context ended
	// before a response arrived.
	ErrNoResponse = errors.New("no response")
	// ErrBadStatus indicates the HTTP endpoint answered with an unexpected
	// status code and no parsable JSON-RPC body.
	ErrBadStatus = errors.New("unexpected http status")
)

// TransportError reports that a request could not be exchanged with the
// node. The response, if any arrived, was not interpreted, and the caller
// cannot tell whether the node executed the request.
type TransportError struct {
	// Op names the failed operation, e.g. "round trip" or "dial".
	Op string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NodeError is the error object returned by the node itself. The code and
// message are preserved verbatim so callers can react to specific node
// error codes.
type NodeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *NodeError) Error() string {
	return fmt.Sprintf("node error %d: %s", e.Code, e.Message)
}

// CodecError reports that the node answered, but the payload did not
// decode into the expected shape. It is distinct from both transport
// failures and node-reported errors.
type CodecError struct {
	// Method is the RPC method whose response failed to decode.
	Method string
	// Err is the underlying decode failure, typically wrapping one of the
	// codec package sentinels.
	Err error
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	return fmt.Sprintf("decoding %s response: %v", e.Method, e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *CodecError) Unwrap() error {
	return e.Err
}

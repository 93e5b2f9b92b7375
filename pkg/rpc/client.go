package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/erc7824/dashrpc/pkg/codec"
	"github.com/erc7824/dashrpc/pkg/log"
)

// Transport carries a single request to the node and returns its response.
// Implementations must be safe for concurrent use.
type Transport interface {
	// RoundTrip exchanges one request for one response. A returned error
	// means the exchange itself failed; node-reported errors travel inside
	// the Response.
	RoundTrip(ctx context.Context, req *Request) (*Response, error)
}

// CallObserver is invoked after every call with its outcome.
// kind is one of "ok", "transport", "node" or "codec".
type CallObserver func(method string, duration time.Duration, kind string)

// Client dispatches calls over a Transport and classifies the outcome.
// It holds no per-call state: each call gets a fresh correlation id and
// failures are returned to the caller untouched, without retries.
type Client struct {
	transport Transport
	lg        log.Logger
	observe   CallObserver
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used to trace calls. Defaults to a noop logger.
func WithLogger(lg log.Logger) ClientOption {
	return func(c *Client) {
		if lg != nil {
			c.lg = lg
		}
	}
}

// WithCallObserver registers a hook that receives every call's method,
// duration and outcome kind. Used to feed metrics without coupling the
// dispatcher to a metrics registry.
func WithCallObserver(observe CallObserver) ClientOption {
	return func(c *Client) {
		c.observe = observe
	}
}

// NewClient creates a dispatcher on top of the given transport.
func NewClient(transport Transport, opts ...ClientOption) *Client {
	c := &Client{
		transport: transport,
		lg:        log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.lg = c.lg.WithName("rpc-client")
	return c
}

// Call invokes method with the given positional parameters and decodes the
// node's result into result. Pass a nil result to discard the payload.
//
// The returned error is exactly one of *TransportError, *NodeError or
// *CodecError; see the package documentation for the classification rules.
func (c *Client) Call(ctx context.Context, method string, params []json.RawMessage, result any) error {
	id := uuid.NewString()
	req := NewRequest(id, method, params)

	start := time.Now()
	resp, err := c.transport.RoundTrip(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		c.finish(method, elapsed, "transport", err)
		return &TransportError{Op: "round trip", Err: err}
	}

	if err := resp.Validate(); err != nil {
		c.finish(method, elapsed, "codec", err)
		return &CodecError{Method: method, Err: err}
	}

	if resp.Error != nil {
		c.finish(method, elapsed, "node", resp.Error)
		return resp.Error
	}

	if !resp.MatchesID(id) {
		err := fmt.Errorf("%w: response id %s does not match request id %s", codec.ErrShapeMismatch, resp.ID, id)
		c.finish(method, elapsed, "codec", err)
		return &CodecError{Method: method, Err: err}
	}

	if result != nil {
		if err := json.Unmarshal(resp.Result, result); err != nil {
			c.finish(method, elapsed, "codec", err)
			return &CodecError{Method: method, Err: err}
		}
	}

	c.finish(method, elapsed, "ok", nil)
	return nil
}

func (c *Client) finish(method string, elapsed time.Duration, kind string, err error) {
	if err != nil {
		c.lg.Debug("call failed", "method", method, "duration", elapsed, "kind", kind, "error", err)
	} else {
		c.lg.Debug("call completed", "method", method, "duration", elapsed)
	}
	if c.observe != nil {
		c.observe(method, elapsed, kind)
	}
}

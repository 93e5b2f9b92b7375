package dashrpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/erc7824/dashrpc/pkg/log"
	"github.com/erc7824/dashrpc/pkg/rpc"
)

// Client is a typed interface to a Dash Core node. Every exported method
// maps one to one onto an RPC method; results come back as pkg/types
// structs and failures as the dispatcher's classified errors.
//
// A Client is safe for concurrent use.
type Client struct {
	rpc *rpc.Client
	lg  log.Logger
}

// Option customizes a Client.
type Option func(*clientOptions)

type clientOptions struct {
	transport rpc.Transport
	logger    log.Logger
	observer  rpc.CallObserver
}

// WithTransport overrides the transport built from the config. Mainly
// useful for tests.
func WithTransport(transport rpc.Transport) Option {
	return func(o *clientOptions) {
		o.transport = transport
	}
}

// WithLogger sets the logger. Defaults to a noop logger.
func WithLogger(lg log.Logger) Option {
	return func(o *clientOptions) {
		if lg != nil {
			o.logger = lg
		}
	}
}

// WithMetrics wires the client's call outcomes into the given metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *clientOptions) {
		o.observer = m.Observer()
	}
}

// New creates a client for the node described by cfg. For a websocket
// transport the connection is established before New returns; the given
// context bounds the dial and the lifetime of the connection.
func New(ctx context.Context, cfg *Config, opts ...Option) (*Client, error) {
	options := clientOptions{
		logger: log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	transport := options.transport
	if transport == nil {
		var err error
		transport, err = buildTransport(ctx, cfg, options.logger)
		if err != nil {
			return nil, err
		}
	}

	rpcOpts := []rpc.ClientOption{rpc.WithLogger(options.logger)}
	if options.observer != nil {
		rpcOpts = append(rpcOpts, rpc.WithCallObserver(options.observer))
	}

	return &Client{
		rpc: rpc.NewClient(transport, rpcOpts...),
		lg:  options.logger.WithName("dashrpc"),
	}, nil
}

func buildTransport(ctx context.Context, cfg *Config, lg log.Logger) (rpc.Transport, error) {
	user, pass, err := cfg.Auth.Credentials()
	if err != nil {
		return nil, fmt.Errorf("resolving credentials: %w", err)
	}

	switch cfg.Transport {
	case TransportWS:
		wsCfg := rpc.DefaultWSTransportConfig
		if cfg.Timeout > 0 {
			wsCfg.HandshakeTimeout = cfg.Timeout
		}
		transport := rpc.NewWSTransport(wsCfg)
		if err := transport.Dial(log.SetContextLogger(ctx, lg), cfg.URL, func(err error) {
			if err != nil {
				lg.Error("websocket connection closed", "error", err)
			}
		}); err != nil {
			return nil, err
		}
		return transport, nil
	case TransportHTTP, "":
		return rpc.NewHTTPTransport(rpc.HTTPTransportConfig{
			URL:        cfg.URL,
			Username:   user,
			Password:   pass,
			WalletName: cfg.WalletName,
			Timeout:    cfg.Timeout,
		})
	default:
		return nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}
}

// call marshals the positional arguments, resolves unset optionals
// against the method's defaults and dispatches. A nil value or nil
// pointer marks an unset optional. Builder failures surface as codec
// errors: nothing reached the wire and the node did not refuse anything.
func (c *Client) call(ctx context.Context, method string, defaults []json.RawMessage, out any, vals ...any) error {
	args, err := rpc.MarshalArgs(vals...)
	if err != nil {
		return &rpc.CodecError{Method: method, Err: err}
	}
	trimmed, err := rpc.TrimDefaults(args, defaults)
	if err != nil {
		return &rpc.CodecError{Method: method, Err: err}
	}
	return c.rpc.Call(ctx, method, trimmed, out)
}

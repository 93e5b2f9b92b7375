package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/erc7824/dashrpc/pkg/log"
)

// WSTransportConfig contains configuration options for the websocket transport.
type WSTransportConfig struct {
	// HandshakeTimeout is the duration to wait for the websocket handshake
	// to complete.
	HandshakeTimeout time.Duration

	// PingInterval is how often to send ping control frames to keep the
	// connection alive.
	PingInterval time.Duration
}

// DefaultWSTransportConfig provides sensible defaults for websocket connections.
var DefaultWSTransportConfig = WSTransportConfig{
	HandshakeTimeout: 5 * time.Second,
	PingInterval:     5 * time.Second,
}

// wsDialCtx holds the connection context and resources.
type wsDialCtx struct {
	ctx  context.Context
	conn *websocket.Conn
	lg   log.Logger
}

// WSTransport multiplexes JSON-RPC calls over a single websocket
// connection, for front-ends that expose the node's RPC interface over a
// socket instead of plain HTTP. Responses are routed back to the waiting
// caller by correlation id, so calls can run concurrently.
type WSTransport struct {
	cfg           WSTransportConfig
	dialCtx       *wsDialCtx
	responseSinks map[string]chan *Response
	mu            sync.RWMutex // protects dialCtx and responseSinks
	writeMu       sync.Mutex   // serializes websocket writes
}

var _ Transport = (*WSTransport)(nil)

// NewWSTransport creates a websocket transport with the given configuration.
func NewWSTransport(cfg WSTransportConfig) *WSTransport {
	return &WSTransport{
		cfg:           cfg,
		responseSinks: make(map[string]chan *Response),
	}
}

// Dial establishes the websocket connection.
// It returns once the connection is up; reading and keep-alive run in
// background goroutines until the context ends or the connection drops.
// The handleClosure callback is invoked when the connection is closed,
// with the first error encountered, if any.
func (t *WSTransport) Dial(parentCtx context.Context, url string, handleClosure func(err error)) error {
	if t.IsConnected() {
		return ErrAlreadyConnected
	}

	dialer := websocket.Dialer{
		HandshakeTimeout:  t.cfg.HandshakeTimeout,
		EnableCompression: true,
	}

	conn, _, err := dialer.DialContext(parentCtx, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDialingWebsocket, err)
	}

	childCtx, cancel := context.WithCancel(parentCtx)
	wg := sync.WaitGroup{}
	wg.Add(3)

	var closureErr error
	var closureErrMu sync.Mutex
	childHandleClosure := func(err error) {
		closureErrMu.Lock()
		defer closureErrMu.Unlock()

		// Capture the first error encountered
		if err != nil && closureErr == nil {
			closureErr = err
		}

		cancel()
		wg.Done()
	}

	t.mu.Lock()
	t.dialCtx = &wsDialCtx{
		ctx:  childCtx,
		conn: conn,
		lg:   log.FromContext(parentCtx).WithName("ws-transport"),
	}
	t.mu.Unlock()

	go t.closeOnContextDone(childCtx, childHandleClosure)
	go t.readMessages(childCtx, childHandleClosure)
	go t.pingPeriodically(childCtx, childHandleClosure)

	go func() {
		wg.Wait()

		closureErrMu.Lock()
		defer closureErrMu.Unlock()
		handleClosure(closureErr)
	}()

	return nil
}

// IsConnected returns true if the transport has an active connection.
func (t *WSTransport) IsConnected() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.dialCtx != nil && t.dialCtx.ctx.Err() == nil
}

// closeOnContextDone waits for the context to end and then closes the
// connection and every pending response sink.
func (t *WSTransport) closeOnContextDone(ctx context.Context, handleClosure func(err error)) {
	<-ctx.Done()

	t.mu.RLock()
	conn := t.dialCtx.conn
	t.mu.RUnlock()

	err := conn.Close()

	// Clean up response sinks to prevent goroutine leaks
	t.mu.Lock()
	for _, sink := range t.responseSinks {
		close(sink)
	}
	t.responseSinks = make(map[string]chan *Response)
	t.mu.Unlock()

	handleClosure(err)
}

// readMessages continuously reads responses from the connection and routes
// each one to the caller waiting on its correlation id.
func (t *WSTransport) readMessages(ctx context.Context, handleClosure func(err error)) {
	t.mu.RLock()
	conn := t.dialCtx.conn
	lg := t.dialCtx.lg
	t.mu.RUnlock()

	for {
		_, messageBytes, err := conn.ReadMessage()
		if ctx.Err() != nil {
			handleClosure(nil)
			lg.Debug("read loop exiting due to context done")
			return
		} else if _, ok := err.(net.Error); ok {
			handleClosure(fmt.Errorf("%w: %w", ErrReadingMessage, err))
			lg.Error("websocket connection timeout", "error", err)
			return
		} else if err != nil {
			handleClosure(fmt.Errorf("%w: %w", ErrReadingMessage, err))
			lg.Error("websocket read error", "error", err)
			return
		}

		var msg Response
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			lg.Warn("malformed message", "message", string(messageBytes), "error", err)
			continue
		}

		var id string
		if err := json.Unmarshal(msg.ID, &id); err != nil {
			lg.Warn("message without usable id", "message", string(messageBytes))
			continue
		}

		t.mu.Lock()
		sink, exists := t.responseSinks[id]
		t.mu.Unlock()

		if !exists {
			// No caller is waiting on this id; the node has nothing
			// unsolicited to say, so this is a stray message.
			lg.Warn("response with no pending request", "id", id)
			continue
		}

		select {
		case <-ctx.Done():
			handleClosure(nil)
			return
		case sink <- &msg:
		}
	}
}

// RoundTrip implements Transport. It registers a response sink under the
// request's correlation id, writes the request and waits for the routed
// response, the context ending or the connection closing.
func (t *WSTransport) RoundTrip(ctx context.Context, req *Request) (*Response, error) {
	t.mu.Lock()
	if t.dialCtx == nil || t.dialCtx.ctx.Err() != nil {
		t.mu.Unlock()
		return nil, ErrNotConnected
	}
	conn := t.dialCtx.conn
	connCtx := t.dialCtx.ctx
	sink := make(chan *Response, 1) // buffered so readMessages never blocks
	t.responseSinks[req.ID] = sink
	t.mu.Unlock()

	reqJSON, err := json.Marshal(req)
	if err != nil {
		t.removeSink(req.ID)
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	// Websocket writes must be serialized
	t.writeMu.Lock()
	err = conn.WriteMessage(websocket.TextMessage, reqJSON)
	t.writeMu.Unlock()

	if err != nil {
		t.removeSink(req.ID)
		return nil, fmt.Errorf("%w: %w", ErrSendingRequest, err)
	}

	var res *Response
	select {
	case <-ctx.Done():
		// Request context cancelled
	case <-connCtx.Done():
		// Connection closed
	case res = <-sink:
	}

	t.removeSink(req.ID)

	if res == nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoResponse, ctx.Err())
		}
		return nil, fmt.Errorf("%w for request %s", ErrNoResponse, req.ID)
	}
	return res, nil
}

func (t *WSTransport) removeSink(id string) {
	t.mu.Lock()
	delete(t.responseSinks, id)
	t.mu.Unlock()
}

// pingPeriodically sends ping control frames at regular intervals to keep
// the connection alive.
func (t *WSTransport) pingPeriodically(ctx context.Context, handleClosure func(err error)) {
	t.mu.RLock()
	conn := t.dialCtx.conn
	lg := t.dialCtx.lg
	t.mu.RUnlock()

	ticker := time.NewTicker(t.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			handleClosure(nil)
			lg.Debug("ping loop exiting due to context done")
			return
		case <-ticker.C:
			t.writeMu.Lock()
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(t.cfg.HandshakeTimeout))
			t.writeMu.Unlock()

			if err != nil {
				handleClosure(fmt.Errorf("%w: %w", ErrSendingRequest, err))
				lg.Error("error sending ping", "error", err)
				return
			}
		}
	}
}

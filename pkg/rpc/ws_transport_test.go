package rpc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/dashrpc/pkg/rpc"
)

// startWSEcho runs a websocket server that answers every request with the
// given handler. It returns the ws:// URL.
func startWSEcho(t *testing.T, handle func(req *rpc.Request) *rpc.Response) string {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var req rpc.Request
			require.NoError(t, json.Unmarshal(msg, &req))

			resp := handle(&req)
			out, err := json.Marshal(resp)
			require.NoError(t, err)
			require.NoError(t, conn.WriteMessage(websocket.TextMessage, out))
		}
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWSTransportRoundTrip(t *testing.T) {
	t.Parallel()

	url := startWSEcho(t, func(req *rpc.Request) *rpc.Response {
		id, _ := json.Marshal(req.ID)
		return &rpc.Response{ID: id, Result: json.RawMessage(`99`)}
	})

	transport := rpc.NewWSTransport(rpc.DefaultWSTransportConfig)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	closed := make(chan error, 1)
	require.NoError(t, transport.Dial(ctx, url, func(err error) { closed <- err }))
	require.True(t, transport.IsConnected())

	resp, err := transport.RoundTrip(ctx, rpc.NewRequest("id-1", "getblockcount", nil))
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`99`), resp.Result)

	// Second dial on a live connection is refused.
	err = transport.Dial(ctx, url, func(error) {})
	assert.ErrorIs(t, err, rpc.ErrAlreadyConnected)

	cancel()
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("closure handler not invoked")
	}
}

func TestWSTransportNotConnected(t *testing.T) {
	t.Parallel()

	transport := rpc.NewWSTransport(rpc.DefaultWSTransportConfig)
	_, err := transport.RoundTrip(context.Background(), rpc.NewRequest("id-1", "ping", nil))
	assert.ErrorIs(t, err, rpc.ErrNotConnected)
}

func TestWSTransportCallContextCancelled(t *testing.T) {
	t.Parallel()

	// The server never answers, so the call must end with the caller's
	// context instead of hanging.
	url := startWSEcho(t, func(req *rpc.Request) *rpc.Response {
		select {}
	})

	transport := rpc.NewWSTransport(rpc.DefaultWSTransportConfig)

	connCtx, cancelConn := context.WithCancel(context.Background())
	defer cancelConn()
	require.NoError(t, transport.Dial(connCtx, url, func(error) {}))

	callCtx, cancelCall := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancelCall()

	_, err := transport.RoundTrip(callCtx, rpc.NewRequest("id-1", "getblockcount", nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, rpc.ErrNoResponse)
}

package rpc_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/dashrpc/pkg/rpc"
)

func TestHTTPTransportRoundTrip(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "alice", user)
		assert.Equal(t, "hunter2", pass)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req rpc.Request
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, rpc.Version, req.JSONRPC)
		assert.Equal(t, "getblockcount", req.Method)

		id, _ := json.Marshal(req.ID)
		resp := rpc.Response{ID: id, Result: json.RawMessage(`1234`)}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	transport, err := rpc.NewHTTPTransport(rpc.HTTPTransportConfig{
		URL:      srv.URL,
		Username: "alice",
		Password: "hunter2",
	})
	require.NoError(t, err)

	req := rpc.NewRequest("id-1", "getblockcount", nil)
	resp, err := transport.RoundTrip(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`1234`), resp.Result)
	assert.True(t, resp.MatchesID("id-1"))
}

func TestHTTPTransportWalletRouting(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// EscapedPath keeps the percent-encoding the client sent; Path
		// would decode it back to a space.
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"id":"id-1","result":null,"error":null}`))
	}))
	defer srv.Close()

	transport, err := rpc.NewHTTPTransport(rpc.HTTPTransportConfig{
		URL:        srv.URL,
		WalletName: "hot wallet",
	})
	require.NoError(t, err)

	_, err = transport.RoundTrip(context.Background(), rpc.NewRequest("id-1", "getwalletinfo", nil))
	require.NoError(t, err)
	assert.Equal(t, "/wallet/hot%20wallet", gotPath)
}

func TestHTTPTransportParsesErrorBodyOnNon200(t *testing.T) {
	t.Parallel()

	// The node answers protocol errors with HTTP 500 but still carries the
	// JSON-RPC envelope in the body.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"id":"id-1","result":null,"error":{"code":-32601,"message":"Method not found"}}`))
	}))
	defer srv.Close()

	transport, err := rpc.NewHTTPTransport(rpc.HTTPTransportConfig{URL: srv.URL})
	require.NoError(t, err)

	resp, err := transport.RoundTrip(context.Background(), rpc.NewRequest("id-1", "nosuchmethod", nil))
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32601, resp.Error.Code)
}

func TestHTTPTransportBadStatusWithoutEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Unauthorized"))
	}))
	defer srv.Close()

	transport, err := rpc.NewHTTPTransport(rpc.HTTPTransportConfig{URL: srv.URL})
	require.NoError(t, err)

	_, err = transport.RoundTrip(context.Background(), rpc.NewRequest("id-1", "getblockcount", nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, rpc.ErrBadStatus))
}

func TestHTTPTransportRequiresURL(t *testing.T) {
	t.Parallel()

	_, err := rpc.NewHTTPTransport(rpc.HTTPTransportConfig{})
	require.Error(t, err)
}

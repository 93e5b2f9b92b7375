package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultHTTPTimeout bounds a single HTTP exchange when the caller does
// not supply a client of their own.
const DefaultHTTPTimeout = 30 * time.Second

// HTTPTransportConfig configures an HTTPTransport.
type HTTPTransportConfig struct {
	// URL is the node's RPC endpoint, e.g. "http://127.0.0.1:9998".
	URL string
	// Username and Password are the basic-auth credentials. Leave both
	// empty for an unauthenticated endpoint.
	Username string
	Password string
	// WalletName routes calls to a specific loaded wallet by appending
	// /wallet/<name> to the endpoint path. Required on multi-wallet nodes
	// for wallet-scoped methods.
	WalletName string
	// Timeout bounds each exchange when HTTPClient is nil.
	// Defaults to DefaultHTTPTimeout.
	Timeout time.Duration
	// HTTPClient overrides the underlying client entirely, e.g. to add a
	// proxy or custom TLS settings.
	HTTPClient *http.Client
}

// HTTPTransport exchanges requests with the node over HTTP POST.
//
// The node answers protocol errors with non-200 status codes but still
// puts a JSON-RPC body on the wire, so the transport always tries to
// parse the body first and falls back to the status code only when no
// envelope is there.
type HTTPTransport struct {
	endpoint string
	username string
	password string
	client   *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates an HTTP transport for the given endpoint.
func NewHTTPTransport(cfg HTTPTransportConfig) (*HTTPTransport, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("endpoint URL is required")
	}

	endpoint := strings.TrimRight(cfg.URL, "/")
	if cfg.WalletName != "" {
		endpoint += "/wallet/" + url.PathEscape(cfg.WalletName)
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &HTTPTransport{
		endpoint: endpoint,
		username: cfg.Username,
		password: cfg.Password,
		client:   client,
	}, nil
}

// RoundTrip implements Transport.
func (t *HTTPTransport) RoundTrip(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if t.username != "" || t.password != "" {
		httpReq.SetBasicAuth(t.username, t.password)
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSendingRequest, err)
	}
	defer cleanlyCloseBody(httpResp.Body)

	payload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingMessage, err)
	}

	var resp Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		if httpResp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: %s", ErrBadStatus, httpResp.Status)
		}
		return nil, fmt.Errorf("parse response body: %w", err)
	}
	return &resp, nil
}

// cleanlyCloseBody drains the body before closing so the underlying
// connection can be reused.
func cleanlyCloseBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

package dashrpc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dashrpc "github.com/erc7824/dashrpc"
	"github.com/erc7824/dashrpc/pkg/log"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DASHRPC_URL", "http://127.0.0.1:9998")
	t.Setenv("DASHRPC_USER", "alice")
	t.Setenv("DASHRPC_PASSWORD", "hunter2")
	t.Setenv("DASHRPC_WALLET", "main")

	cfg, err := dashrpc.LoadConfig(log.NewNoopLogger())
	require.NoError(t, err)

	assert.Equal(t, dashrpc.TransportHTTP, cfg.Transport)
	assert.Equal(t, "http://127.0.0.1:9998", cfg.URL)
	assert.Equal(t, "main", cfg.WalletName)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "alice", cfg.Auth.Username)
}

func TestLoadConfigRequiresURL(t *testing.T) {
	t.Setenv("DASHRPC_URL", "")

	_, err := dashrpc.LoadConfig(log.NewNoopLogger())
	require.Error(t, err)
}

func TestConfigValidateTransport(t *testing.T) {
	t.Parallel()

	cfg := dashrpc.Config{
		Transport: "carrier-pigeon",
		URL:       "http://127.0.0.1:9998",
		Timeout:   time.Second,
	}
	require.Error(t, cfg.Validate())

	cfg.Transport = dashrpc.TransportWS
	require.NoError(t, cfg.Validate())
}

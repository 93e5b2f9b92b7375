package log_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erc7824/dashrpc/pkg/log"
)

// captureWriter keeps the last entry written through the logger so tests
// can decode and inspect it.
type captureWriter struct {
	lastEntry []byte
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.lastEntry = p
	return len(p), nil
}

func (w *captureWriter) Sync() error {
	return nil
}

func (w *captureWriter) decode(t *testing.T) map[string]any {
	t.Helper()

	entry := make(map[string]any)
	require.NoError(t, json.Unmarshal(w.lastEntry, &entry), "log entry is not JSON: %s", w.lastEntry)
	return entry
}

func TestZapLoggerLevelsAndFields(t *testing.T) {
	cw := &captureWriter{}
	logger := log.NewZapLogger(log.Config{Format: "json", Level: log.LevelDebug}, cw)
	logger = logger.WithName("client")

	tcs := []struct {
		level log.Level
		emit  func(msg string, keysAndValues ...any)
	}{
		{log.LevelDebug, logger.Debug},
		{log.LevelInfo, logger.Info},
		{log.LevelWarn, logger.Warn},
		{log.LevelError, logger.Error},
	}

	for _, tc := range tcs {
		tc.emit("round trip", "method", "getblockcount", "attempt", float64(1))

		entry := cw.decode(t)
		assert.Equal(t, string(tc.level), entry["level"])
		assert.Equal(t, "client", entry["logger"])
		assert.Equal(t, "round trip", entry["msg"])
		assert.Equal(t, "getblockcount", entry["method"])
		assert.Equal(t, float64(1), entry["attempt"])
		assert.Contains(t, entry, "ts")

		// The caller must be this test, not a facade frame.
		caller, ok := entry["caller"].(string)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(caller, "log/zap_logger_test.go:"), "caller %q", caller)
	}
}

func TestZapLoggerLevelFiltersOutput(t *testing.T) {
	cw := &captureWriter{}
	logger := log.NewZapLogger(log.Config{Format: "json", Level: log.LevelWarn}, cw)

	logger.Debug("dropped")
	logger.Info("dropped")
	assert.Empty(t, cw.lastEntry)

	logger.Warn("kept")
	assert.NotEmpty(t, cw.lastEntry)
}

func TestZapLoggerWithKVAndNesting(t *testing.T) {
	cw := &captureWriter{}
	logger := log.NewZapLogger(log.Config{Format: "json", Level: log.LevelDebug}, cw)

	logger = logger.WithName("dashrpc").WithName("config").WithKV("wallet", "main")
	logger.Info("loaded")

	entry := cw.decode(t)
	assert.Equal(t, "dashrpc.config", entry["logger"])
	assert.Equal(t, "main", entry["wallet"])
}

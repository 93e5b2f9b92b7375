package dashrpc_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	dashrpc "github.com/erc7824/dashrpc"
)

func TestMetricsObserver(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	metrics := dashrpc.NewMetricsWithRegistry(registry)
	observe := metrics.Observer()

	observe("getblockcount", 5*time.Millisecond, "ok")
	observe("getblockcount", 5*time.Millisecond, "ok")
	observe("getbalance", 3*time.Millisecond, "node")

	assert.Equal(t, float64(2), testutil.ToFloat64(
		metrics.RequestsTotal.WithLabelValues("getblockcount")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.RequestsTotal.WithLabelValues("getbalance")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.ErrorsTotal.WithLabelValues("getbalance", "node")))
	assert.Equal(t, float64(0), testutil.ToFloat64(
		metrics.ErrorsTotal.WithLabelValues("getblockcount", "transport")))
}

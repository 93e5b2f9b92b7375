package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erc7824/dashrpc/pkg/log"
)

func TestContextLogger(t *testing.T) {
	t.Parallel()

	// A bare context yields a usable noop logger, never nil.
	logger := log.FromContext(context.Background())
	assert.NotNil(t, logger)
	logger.Info("discarded")

	// A stored logger comes back out.
	zl := log.NewZapLogger(log.Config{})
	ctx := log.SetContextLogger(context.Background(), zl)
	assert.Same(t, zl, log.FromContext(ctx))

	// Storing nil degrades to the noop logger.
	ctx = log.SetContextLogger(context.Background(), nil)
	logger = log.FromContext(ctx)
	assert.NotNil(t, logger)
	logger.Error("discarded")
}

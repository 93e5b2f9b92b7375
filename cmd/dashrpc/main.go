package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	dashrpc "github.com/erc7824/dashrpc"
	"github.com/erc7824/dashrpc/pkg/log"
)

// main connects to the node described by the environment and dumps a
// short status report. Useful as a connectivity smoke test.
func main() {
	logger := log.NewZapLogger(log.Config{Format: "console", Level: log.LevelInfo})

	config, err := dashrpc.LoadConfig(logger)
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}
	logger = log.NewZapLogger(config.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := dashrpc.New(ctx, config, dashrpc.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to connect", "url", config.URL, "error", err)
	}

	chain, err := client.GetBlockchainInfo(ctx)
	if err != nil {
		logger.Fatal("getblockchaininfo failed", "error", err)
	}
	logger.Info("chain state",
		"chain", chain.Chain,
		"blocks", chain.Blocks,
		"headers", chain.Headers,
		"bestblockhash", chain.BestBlockHash,
	)

	network, err := client.GetNetworkInfo(ctx)
	if err != nil {
		logger.Fatal("getnetworkinfo failed", "error", err)
	}
	logger.Info("network state",
		"version", network.Version,
		"subversion", network.Subversion,
		"connections", network.Connections,
	)

	mempool, err := client.GetRawMempool(ctx)
	if err != nil {
		logger.Fatal("getrawmempool failed", "error", err)
	}
	logger.Info("mempool", "transactions", len(mempool))

	sync, err := client.MnSyncStatus(ctx)
	if err != nil {
		logger.Fatal("mnsync status failed", "error", err)
	}
	logger.Info("masternode sync",
		"asset", sync.AssetName,
		"synced", sync.IsSynced,
		"blockchain_synced", sync.IsBlockchainSynced,
	)
}

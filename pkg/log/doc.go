// Package log is the structured logging facade of the dashrpc client.
//
// Everything logs through the Logger interface; the concrete backend is
// injected, never global. Two implementations exist: ZapLogger for real
// output and the noop logger returned by NewNoopLogger, which is the
// default everywhere a logger was not provided.
//
// A typical setup, as done by cmd/dashrpc:
//
//	logger := log.NewZapLogger(log.Config{
//	    Format: "logfmt",
//	    Level:  log.LevelInfo,
//	})
//	client, err := dashrpc.New(ctx, cfg, dashrpc.WithLogger(logger))
//
// Components scope their output with WithName ("dashrpc.rpc-client",
// "dashrpc.config") and attach persistent fields with WithKV.
//
// The websocket transport spawns goroutines from a context rather than a
// constructor argument, so the logger rides along in the context:
//
//	ctx = log.SetContextLogger(ctx, logger)
//	// ... later, inside the transport:
//	lg := log.FromContext(ctx)
//
// Config reads LOG_FORMAT, LOG_LEVEL and LOG_OUTPUT from the environment
// when loaded through the client configuration.
package log

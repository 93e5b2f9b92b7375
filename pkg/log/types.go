package log

// Logger is the logging facade the client and its transports write to.
// Messages carry structured context as alternating key-value pairs.
type Logger interface {
	// Debug records per-call detail: dispatched methods, read-loop events.
	Debug(msg string, keysAndValues ...any)
	// Info records normal lifecycle events such as configuration loading.
	Info(msg string, keysAndValues ...any)
	// Warn records recoverable oddities, like a malformed frame on the
	// websocket that the read loop skips over.
	Warn(msg string, keysAndValues ...any)
	// Error records failures the caller will also see as a returned error.
	Error(msg string, keysAndValues ...any)
	// Fatal records the failure and terminates the process. Only the CLI
	// entrypoints call it; library code returns errors instead.
	Fatal(msg string, keysAndValues ...any)
	// WithKV returns a logger that includes the pair on every message.
	WithKV(key string, value any) Logger
	// WithName returns a logger scoped under the given component name.
	// Names nest with dots, e.g. "dashrpc.rpc-client".
	WithName(name string) Logger
}

// Level filters log output by severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

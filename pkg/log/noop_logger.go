package log

var _ Logger = nopLogger{}

// NewNoopLogger returns a logger that discards everything. It is the
// default wherever no logger was injected, so library code never has to
// nil-check before logging.
func NewNoopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

func (nopLogger) Info(string, ...any) {}

func (nopLogger) Warn(string, ...any) {}

func (nopLogger) Error(string, ...any) {}

func (nopLogger) Fatal(string, ...any) {}

func (n nopLogger) WithKV(string, any) Logger { return n }

func (n nopLogger) WithName(string) Logger { return n }

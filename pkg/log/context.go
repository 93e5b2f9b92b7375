package log

import "context"

type ctxKey struct{}

// SetContextLogger returns a context carrying lg, so the logger can
// travel into code that only receives a context (the websocket dialer,
// for one). A nil lg stores a noop logger.
func SetContextLogger(ctx context.Context, lg Logger) context.Context {
	if lg == nil {
		lg = NewNoopLogger()
	}
	return context.WithValue(ctx, ctxKey{}, lg)
}

// FromContext returns the logger carried by ctx, or a noop logger when
// there is none. It never returns nil.
func FromContext(ctx context.Context) Logger {
	if lg, ok := ctx.Value(ctxKey{}).(Logger); ok {
		return lg
	}
	return NewNoopLogger()
}

package logger

import (
	"context"
	"fmt"
	"os"
	"sync"
)

type requestLoggerKey struct{}

// WithContext attaches l to ctx. The HTTP transport stores a logger tagged
// with the request id here so handlers deeper in the call chain share it.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, requestLoggerKey{}, l)
}

// FromContext returns the logger attached by WithContext. Code reached
// without one (tests, the stdio transport) gets stderrLogger: stdout may be
// carrying JSON-RPC frames, so nothing here is allowed to write there.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(requestLoggerKey{}).(Logger); ok {
		return l
	}
	return stderrLogger()
}

var stderrLogger = sync.OnceValue(func() Logger {
	l, err := New(Config{Level: "warn", OutputPaths: []string{"stderr"}})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: stderr fallback unavailable, discarding logs: %v\n", err)
		return NewNop()
	}
	return l
})

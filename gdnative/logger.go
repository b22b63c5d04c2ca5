package gdnative

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger    atomic.Pointer[zap.Logger]
	nopLogger = zap.NewNop()
)

// debug enables per-free debug records, which are too noisy for normal use.
var debug atomic.Bool

// Logger returns the gdnative package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger configures the gdnative package's logger, nil restores the
// no-op logger. Safe to call concurrently with allocations.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// SetDebug turns on debug records for every free.
func SetDebug(v bool) {
	debug.Store(v)
}

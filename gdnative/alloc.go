package gdnative

import (
	"unsafe"

	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
)

var liveAllocs = xsync.NewCounter()

// LiveAllocations returns the number of C allocations made by this package
// that have not been released with Free yet.
func LiveAllocations() int64 {
	return liveAllocs.Value()
}

func tracked(p unsafe.Pointer, size int) unsafe.Pointer {
	if p == nil {
		Logger().Warn("C allocation failed", zap.Int("size", size))
		return nil
	}
	liveAllocs.Inc()
	return p
}

func untrack(p unsafe.Pointer) {
	liveAllocs.Dec()
	if debug.Load() {
		Logger().Debug("free", zap.Uintptr("addr", uintptr(p)))
	}
}

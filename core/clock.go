package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock returns the current time. Loggers take a Clock so tests can pin
// timestamps.
type Clock func() time.Time

// SystemClock reads the wall clock on every call.
func SystemClock() time.Time {
	return time.Now()
}

// CoarseTick is how often the coarse clock refreshes its cached time.
const CoarseTick = 500 * time.Microsecond

var (
	coarseOnce sync.Once
	coarseTime atomic.Pointer[time.Time]
)

func storeCoarse() {
	now := time.Now()
	coarseTime.Store(&now)
}

// StartCoarseClock starts the process-wide goroutine that refreshes the
// cached time every CoarseTick. Only the first call starts it.
func StartCoarseClock() {
	coarseOnce.Do(func() {
		storeCoarse()
		go func() {
			for range time.Tick(CoarseTick) {
				storeCoarse()
			}
		}()
	})
}

// CoarseNow returns the cached time, starting the coarse clock if needed.
func CoarseNow() time.Time {
	if t := coarseTime.Load(); t != nil {
		return *t
	}
	StartCoarseClock()
	return *coarseTime.Load()
}

// CoarseClock returns a Clock that reads the cached time instead of the
// wall clock. It lags real time by at most CoarseTick, which suits
// loggers printing many lines with millisecond timestamps.
func CoarseClock() Clock {
	StartCoarseClock()
	return CoarseNow
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

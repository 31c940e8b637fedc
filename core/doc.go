// Package core holds the small shared pieces used by the other packages:
// caller lookup for diagnostics and the clocks used to timestamp log lines.
//
// GetCaller wraps runtime.Caller and returns a CallerInfo with the full
// and short file name, line and function. The check package uses it to
// locate failed assertions.
//
// A Clock is a plain func() time.Time. SystemClock reads the wall clock
// on every call. CoarseClock returns a clock backed by a background
// goroutine that refreshes a cached time.Time every 500µs, which is
// cheaper on hot logging paths and still precise to the millisecond.
// FixedClock pins the time for tests.
package core

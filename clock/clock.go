// Package clock provides the monotonic nanosecond timestamps used to time
// conversion calls.
//
// Timestamps are only meaningful relative to each other within one process
// run. They must never be interpreted as time of day.
package clock

// Clock returns monotonically non-decreasing nanosecond timestamps that are
// not affected by wall-clock adjustments.
type Clock interface {
	// Now returns the current timestamp in nanoseconds.
	Now() uint64
	// Source names the underlying timer, e.g. "CLOCK_MONOTONIC".
	Source() string
	// HighResolution is false when the implementation had to fall back to
	// a coarse timer. Results measured with such a clock have reduced
	// precision and should be reported as such.
	HighResolution() bool
}

// Default returns the clock selected for the current platform at build time.
func Default() Clock {
	return platformClock()
}

// Func adapts a plain function to the Clock interface.
type Func func() uint64

func (f Func) Now() uint64 {
	return f()
}

func (f Func) Source() string {
	return "func"
}

func (f Func) HighResolution() bool {
	return true
}

// Since returns the nanoseconds elapsed between start and the clock's
// current time. A timestamp earlier than start yields 0.
func Since(c Clock, start uint64) uint64 {
	now := c.Now()
	if now < start {
		return 0
	}
	return now - start
}

//go:build !(linux || darwin || freebsd || openbsd || windows)

package clock

import "time"

// runtimeClock is used where no high-resolution timer binding exists. It
// reads the Go runtime clock relative to process start; its resolution is
// whatever the runtime offers on this platform and is not guaranteed to be
// sub-microsecond, so measurements taken with it are reduced precision.
type runtimeClock struct {
	epoch time.Time
}

var processStart = time.Now()

func platformClock() Clock {
	return runtimeClock{epoch: processStart}
}

func (c runtimeClock) Now() uint64 {
	return uint64(time.Since(c.epoch))
}

func (c runtimeClock) Source() string {
	return "runtime (reduced precision)"
}

func (c runtimeClock) HighResolution() bool {
	return false
}

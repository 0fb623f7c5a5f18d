//go:build linux || darwin || freebsd || openbsd

package clock

import (
	"golang.org/x/sys/unix"
)

type monotonicClock struct{}

func platformClock() Clock {
	return monotonicClock{}
}

func (monotonicClock) Now() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		// CLOCK_MONOTONIC is mandatory on every platform this file builds for.
		panic("clock: clock_gettime(CLOCK_MONOTONIC) failed: " + err.Error())
	}
	return uint64(ts.Nano())
}

func (monotonicClock) Source() string {
	return "CLOCK_MONOTONIC"
}

func (monotonicClock) HighResolution() bool {
	return true
}

//go:build windows

package clock

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procQueryPerformanceCount = kernel32.NewProc("QueryPerformanceCounter")
	procQueryPerformanceFreq  = kernel32.NewProc("QueryPerformanceFrequency")
)

type performanceCounterClock struct {
	once sync.Once
	freq int64
}

var qpc performanceCounterClock

func platformClock() Clock {
	return &qpc
}

func (c *performanceCounterClock) frequency() int64 {
	c.once.Do(func() {
		var freq int64
		if r, _, err := procQueryPerformanceFreq.Call(uintptr(unsafe.Pointer(&freq))); r == 0 {
			panic("clock: QueryPerformanceFrequency failed: " + err.Error())
		}
		c.freq = freq
	})
	return c.freq
}

func (c *performanceCounterClock) Now() uint64 {
	freq := c.frequency()

	var counter int64
	if r, _, err := procQueryPerformanceCount.Call(uintptr(unsafe.Pointer(&counter))); r == 0 {
		panic("clock: QueryPerformanceCounter failed: " + err.Error())
	}

	// Split into whole seconds and remainder so counter*1e9 cannot overflow.
	sec := counter / freq
	rem := counter % freq
	return uint64(sec)*1e9 + uint64(rem)*1e9/uint64(freq)
}

func (c *performanceCounterClock) Source() string {
	return "QueryPerformanceCounter"
}

func (c *performanceCounterClock) HighResolution() bool {
	return true
}

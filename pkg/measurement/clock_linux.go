//go:build linux

package measurement

import (
	"time"

	"golang.org/x/sys/unix"
)

// KernelClockResolution reports the monotonic clock granularity as advertised
// by the kernel. Diagnostic only: the engine always calibrates against the
// measured Resolution, which includes the cost of reading the clock.
func KernelClockResolution() (time.Duration, error) {
	var ts unix.Timespec
	if err := unix.ClockGetres(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, err
	}

	return time.Duration(ts.Nano()), nil
}

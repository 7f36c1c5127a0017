//go:build !linux

package measurement

import "time"

// KernelClockResolution reports the monotonic clock granularity as advertised
// by the kernel. Only implemented on linux.
func KernelClockResolution() (time.Duration, error) {
	return 0, ErrKernelClockUnsupported
}

/*
 * MIT License
 *
 * Copyright (c) 2023 the ADS laboratory
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package measurement

import (
	"errors"
	"time"
)

// Number of clock samples averaged by Resolution to smooth OS jitter.
const resolutionSamples = 100

// ErrKernelClockUnsupported is returned by KernelClockResolution on platforms
// without a queryable monotonic clock granularity.
var ErrKernelClockUnsupported = errors.New("kernel clock resolution not supported on this platform")

// Resolution estimates the smallest observable quantum of the monotonic
// clock, averaged over 100 samples. It spins for roughly 100 clock ticks,
// typically a few microseconds of real time.
func Resolution() time.Duration {
	var sum time.Duration
	for i := 0; i < resolutionSamples; i++ {
		sum += oneTick()
	}

	return sum / resolutionSamples
}

// oneTick spins until the monotonic clock advances and returns the observed
// step, one sample of the clock granularity.
func oneTick() time.Duration {
	start := time.Now()
	for {
		if elapsed := time.Since(start); elapsed > 0 {
			return elapsed
		}
	}
}

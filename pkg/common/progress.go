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

package common

import (
	log "github.com/sirupsen/logrus"
)

// Progress reports completion of long-running work. Implementations must be
// cheap; the engine only invokes them between timed loops, never inside one.
type Progress func(completed, total int)

// NopProgress discards progress updates. It is the default reporter.
func NopProgress(completed, total int) {}

// LogProgress returns a reporter that logs at debug level in 5% increments.
func LogProgress(label string) Progress {
	lastBucket := -1

	return func(completed, total int) {
		if total <= 0 {
			return
		}

		percent := completed * 100 / total
		if bucket := percent / 5; bucket != lastBucket {
			lastBucket = bucket

			log.Debugf("%s: %d%% (%d/%d)", label, percent, completed, total)
		}
	}
}

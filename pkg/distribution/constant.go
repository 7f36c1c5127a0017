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

package distribution

import (
	"fmt"

	"github.com/ADS-laboratory/chrono-probe/pkg/common"
)

// Constant generates the same size for every draw. Useful to isolate
// measurement noise from size-driven variance.
type Constant struct {
	k int
}

// NewConstant creates a distribution where every size equals k.
func NewConstant(k int) (Constant, error) {
	if k < 1 {
		return Constant{}, fmt.Errorf("%w: constant size must be positive, got %d", common.ErrInvalidArgument, k)
	}

	return Constant{k: k}, nil
}

// InverseCDF ignores the fraction and returns the configured size.
func (c Constant) InverseCDF(u float64) float64 {
	return float64(c.k)
}

func (c Constant) Generate(n int) ([]int, error) {
	return sample(c.InverseCDF, FixedIntervals, nil, n)
}

func (c Constant) String() string {
	return fmt.Sprintf("constant(%d)", c.k)
}

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
	"math"
	"math/rand"

	"github.com/ADS-laboratory/chrono-probe/pkg/common"
)

// Largest argument exp can take before overflowing a float64.
const maxExpArg = 1024 * math.Ln2

// Exponential concentrates sizes towards the low end of [min, max], which
// suits algorithms whose cost grows fast with input size.
type Exponential struct {
	min, max int
	lambda   float64
	genType  GenerationType
	rng      *rand.Rand
}

// NewExponential creates an exponential distribution over [min, max] with
// fixed-interval generation. The rate is mean-matched to the range,
// lambda = ln(max/min) / (max - min), which requires max > min.
func NewExponential(min, max int) (Exponential, error) {
	if err := validateRange(min, max); err != nil {
		return Exponential{}, err
	}
	if max == min {
		return Exponential{}, fmt.Errorf("%w: exponential range must span more than one size, got [%d, %d]", common.ErrInvalidArgument, min, max)
	}

	lambda := math.Log(float64(max)/float64(min)) / float64(max-min)

	return Exponential{min: min, max: max, lambda: lambda, genType: FixedIntervals}, nil
}

// WithLambda returns a copy using the given rate instead of the mean-matched
// default.
func (e Exponential) WithLambda(lambda float64) (Exponential, error) {
	if lambda <= 0 {
		return Exponential{}, fmt.Errorf("%w: lambda must be positive, got %g", common.ErrInvalidArgument, lambda)
	}

	e.lambda = lambda
	return e, nil
}

// WithGenerationType returns a copy using the given generation type.
func (e Exponential) WithGenerationType(genType GenerationType) Exponential {
	e.genType = genType
	return e
}

// WithRand returns a copy drawing random fractions from rng.
func (e Exponential) WithRand(rng *rand.Rand) Exponential {
	e.rng = rng
	return e
}

// InverseCDF maps a fraction in [0, 1] onto the configured range.
//
// The fraction is first transformed linearly onto [F(min), F(max)], where F is
// the exponential cumulative distribution function, and then mapped through
// F^-1. Folding both steps together gives, with x = lambda*min and
// y = lambda*max:
//
//	F^-1(u) = (y - ln((1-u)*e^(y-x) + u)) / lambda
//
// For wide ranges e^(y-x) overflows a float64, so the formula switches to its
// asymptotic form: x - ln(1-u) while that term dominates, y - ln(u) otherwise.
func (e Exponential) InverseCDF(u float64) float64 {
	min := float64(e.min)
	max := float64(e.max)

	if u == 0 {
		return min
	}
	if u == 1 {
		return max
	}

	x := e.lambda * min
	y := e.lambda * max

	if y-x < maxExpArg {
		return (y - math.Log((1-u)*math.Exp(y-x)+u)) / e.lambda
	}

	if y-x > -math.Log(1-u) {
		return (x - math.Log(1-u)) / e.lambda
	}

	return (y - math.Log(u)) / e.lambda
}

func (e Exponential) Generate(n int) ([]int, error) {
	return sample(e.InverseCDF, e.genType, e.rng, n)
}

func (e Exponential) String() string {
	return fmt.Sprintf("exponential[%d, %d] lambda=%g, %s generation", e.min, e.max, e.lambda, e.genType)
}

// Package text provides random string inputs and the period-finding
// algorithms measured against them.
//
// The fractional period of a string s of length n is the smallest p > 0 such
// that s[i] == s[i+p] for every valid i; n itself when no smaller p exists.
package text

import (
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/ADS-laboratory/chrono-probe/pkg/common"
)

// Text is a byte-string input instance.
type Text struct {
	Bytes []byte
}

// Charset is the validated alphabet random strings are drawn from.
type Charset []byte

// NewCharset validates an alphabet: non-empty, ASCII only, no duplicate
// characters.
func NewCharset(chars string) (Charset, error) {
	if len(chars) == 0 {
		return nil, fmt.Errorf("%w: charset must not be empty", common.ErrInvalidArgument)
	}

	var seen [utf8.RuneSelf]bool
	charset := make(Charset, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c >= utf8.RuneSelf {
			return nil, fmt.Errorf("%w: charset must be ASCII", common.ErrInvalidArgument)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: duplicate character %q in charset", common.ErrInvalidArgument, c)
		}

		seen[c] = true
		charset = append(charset, c)
	}

	return charset, nil
}

// Method selects the string generation strategy.
type Method int

const (
	// MethodUniform draws every character independently from the charset.
	MethodUniform Method = iota
	// MethodPrefixPeriodic draws a random prefix and repeats it, which
	// plants a short period and stresses the algorithms' inner loops.
	MethodPrefixPeriodic
	// MethodCyclic cycles through the charset deterministically, with the
	// last character doubled so the string is not fully periodic.
	MethodCyclic
)

func (m Method) String() string {
	switch m {
	case MethodUniform:
		return "uniform"
	case MethodPrefixPeriodic:
		return "prefix-periodic"
	case MethodCyclic:
		return "cyclic"
	default:
		return "unknown"
	}
}

// Generator builds Text instances of requested sizes. It implements the
// input generator capability.
type Generator struct {
	charset Charset
	method  Method
	rng     *rand.Rand
}

// NewGenerator creates a seeded text generator.
func NewGenerator(charset Charset, method Method, seed int64) Generator {
	return Generator{
		charset: charset,
		method:  method,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Size reports the length of the string.
func (g Generator) Size(instance Text) int {
	return len(instance.Bytes)
}

// Generate constructs a fresh string of the given size.
func (g Generator) Generate(size int) Text {
	switch g.method {
	case MethodPrefixPeriodic:
		return Text{Bytes: g.prefixPeriodic(size)}
	case MethodCyclic:
		return Text{Bytes: g.cyclic(size)}
	default:
		return Text{Bytes: g.uniform(size)}
	}
}

func (g Generator) uniform(size int) []byte {
	s := make([]byte, size)
	for i := range s {
		s[i] = g.charset[g.rng.Intn(len(g.charset))]
	}

	return s
}

func (g Generator) prefixPeriodic(size int) []byte {
	s := make([]byte, size)

	q := 1
	if size > 1 {
		q += g.rng.Intn(size - 1)
	}

	for i := 0; i < q; i++ {
		s[i] = g.charset[g.rng.Intn(len(g.charset))]
	}
	for i := q; i < size; i++ {
		s[i] = s[(i-1)%(q+1)]
	}

	return s
}

func (g Generator) cyclic(size int) []byte {
	s := make([]byte, size)

	c := g.charset[0]
	for i := 0; i < size-1; i++ {
		c = g.charset[i%len(g.charset)]
		s[i] = c
	}
	s[size-1] = c

	return s
}

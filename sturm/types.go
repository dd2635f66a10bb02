// SPDX-License-Identifier: MIT

package sturm

import (
	"errors"

	"github.com/katalvlaran/polyroot/poly"
)

var (
	// ErrDegreeTooLow is returned when p is a constant.
	ErrDegreeTooLow = errors.New("sturm: polynomial degree must be >= 1")

	// ErrDegenerateSequence is returned when a division step meets a divisor
	// with a zero leading coefficient. It wraps poly.ErrDegenerateDivisor.
	ErrDegenerateSequence = errors.New("sturm: degenerate sequence")

	// ErrBadOptions is returned for a negative or non-finite Epsilon.
	ErrBadOptions = errors.New("sturm: invalid options")
)

// DefaultEpsilon is the relative threshold below which a remainder
// coefficient is treated as zero.
const DefaultEpsilon = 1e-12

// Options tunes the builder.
//
//   - Epsilon - remainder coefficients with |c| <= Epsilon·max|dividend|
//     count as zero when trimming leading terms. Zero disables the tolerance
//     (exact comparison).
type Options struct {
	Epsilon float64
}

// DefaultOptions returns Options{Epsilon: DefaultEpsilon}.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// Sequence is an ordered, read-only list of Sturm terms. Terms()[0] is the
// input polynomial and Terms()[1] its derivative.
type Sequence struct {
	terms []poly.Polynomial
}

// Len is the number of terms.
func (s Sequence) Len() int { return len(s.terms) }

// Term returns term i.
func (s Sequence) Term(i int) poly.Polynomial { return s.terms[i] }

// Terms returns a copy of the term list.
func (s Sequence) Terms() []poly.Polynomial {
	out := make([]poly.Polynomial, len(s.terms))
	copy(out, s.terms)

	return out
}

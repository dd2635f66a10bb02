// SPDX-License-Identifier: MIT

package sturm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polyroot/poly"
)

// Build constructs the Sturm sequence of p seeded with its derivative dp.
// dp is supplied by the caller (normally p.Derivative()).
//
// Algorithm Outline:
//  1. terms = [p, dp]
//  2. While the last term is not a constant:
//     r = rem(terms[-2], terms[-1])
//     if r ≈ 0: stop (terms[-1] is gcd(p, p'); p has a repeated root)
//     append −r with numerically-zero leading coefficients trimmed
//
// "Numerically zero" is relative to the dividend (Epsilon·max|dividend|),
// so scaling p by a nonzero constant never changes the sequence signs.
//
// Each appended term is strictly shorter than its predecessor, so the loop
// runs at most p.Len() times.
//
// Errors:
//   - ErrBadOptions         - negative or non-finite Epsilon.
//   - ErrDegreeTooLow       - p is a constant.
//   - ErrDegenerateSequence - zero leading coefficient in p or in a divisor
//     term (wraps poly.ErrDegenerateDivisor in the latter case).
func Build(p, dp poly.Polynomial, opts *Options) (Sequence, error) {
	// Stage 1: Options and input sanity.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Epsilon < 0 || math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return Sequence{}, ErrBadOptions
	}
	if p.Len() == 0 || dp.Len() == 0 {
		return Sequence{}, poly.ErrEmptyPolynomial
	}
	if p.Degree() < 1 {
		return Sequence{}, ErrDegreeTooLow
	}
	if p.Leading() == 0 {
		return Sequence{}, fmt.Errorf("%w: leading coefficient of p is zero", ErrDegenerateSequence)
	}

	// Stage 2: Euclidean descent with negated remainders.
	var (
		terms = make([]poly.Polynomial, 0, p.Len())
		prev  poly.Polynomial
		cur   poly.Polynomial
		rem   poly.Polynomial
		eps   float64
		err   error
	)
	terms = append(terms, p, dp)
	for step := 0; !terms[len(terms)-1].IsConstant(); step++ {
		if step > p.Len() {
			return Sequence{}, fmt.Errorf("%w: no descent after %d steps", ErrDegenerateSequence, step)
		}
		prev, cur = terms[len(terms)-2], terms[len(terms)-1]
		if _, rem, err = poly.Divide(prev, cur); err != nil {
			return Sequence{}, fmt.Errorf("%w: term %d: %w", ErrDegenerateSequence, len(terms)-1, err)
		}
		// prev has a nonzero leading coefficient, so eps scales with p.
		eps = o.Epsilon * prev.MaxAbs()
		if rem.IsZero(eps) {
			break
		}
		terms = append(terms, rem.Negate().TrimLeading(eps))
	}

	return Sequence{terms: terms}, nil
}

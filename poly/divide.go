// SPDX-License-Identifier: MIT

package poly

import "fmt"

// Divide performs synthetic division dividend ÷ divisor and returns
// (quotient, remainder) such that dividend = quotient·divisor + remainder
// within floating-point tolerance.
//
// Algorithm Outline:
//  1. Copy the dividend into a working array out.
//  2. For i = 0 .. len(dividend)-len(divisor):
//     out[i] /= divisor[0]                     (normalize for non-monic divisors)
//     out[i+j] -= divisor[j]*out[i], j = 1..len(divisor)-1
//  3. The last len(divisor)-1 cells hold the remainder; the rest is the quotient.
//
// A constant divisor leaves no remainder cells; the remainder is then
// returned as the zero constant [0] so that it is still a valid Polynomial.
//
// Errors:
//   - ErrDegenerateDivisor - divisor[0] == 0, or len(divisor) > len(dividend).
//
// Complexity: O(n·m) time, O(n) memory.
func Divide(dividend, divisor Polynomial) (quotient, remainder Polynomial, err error) {
	// Stage 1: Validate.
	if len(dividend.c) == 0 || len(divisor.c) == 0 {
		return Polynomial{}, Polynomial{}, ErrEmptyPolynomial
	}
	if divisor.c[0] == 0 {
		return Polynomial{}, Polynomial{}, fmt.Errorf("Divide: zero leading coefficient: %w", ErrDegenerateDivisor)
	}
	if len(divisor.c) > len(dividend.c) {
		return Polynomial{}, Polynomial{}, fmt.Errorf("Divide: divisor degree %d exceeds dividend degree %d: %w",
			divisor.Degree(), dividend.Degree(), ErrDegenerateDivisor)
	}

	// Stage 2: Synthetic division in place on a private copy.
	var (
		out        = dividend.Coefficients()
		normalizer = divisor.c[0]
		steps      = len(dividend.c) - (len(divisor.c) - 1)
		i, j       int
		coef       float64
	)
	for i = 0; i < steps; i++ {
		out[i] /= normalizer
		coef = out[i]
		if coef == 0 {
			continue
		}
		// divisor[0] only normalizes; the tail is subtracted.
		for j = 1; j < len(divisor.c); j++ {
			out[i+j] -= divisor.c[j] * coef
		}
	}

	// Stage 3: Split into independent slices.
	q := make([]float64, steps)
	copy(q, out[:steps])
	r := make([]float64, len(out)-steps)
	copy(r, out[steps:])
	if len(r) == 0 {
		r = []float64{0}
	}

	return own(q), own(r), nil
}

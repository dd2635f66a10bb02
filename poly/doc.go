// SPDX-License-Identifier: MIT

// Package poly provides dense single-variable polynomials over float64 and
// the two primitives every root-finding routine in polyroot is built from:
// Horner evaluation and synthetic division.
//
// 🚀 What is a Polynomial here?
//
//	An immutable, ordered list of coefficients, highest degree first:
//
//	  2x² + 3x − 1   ⇔   [2, 3, -1]
//
//	Degree = len − 1. A single coefficient is a constant. Every operation
//	returns a fresh value; no two polynomials ever share backing storage.
//
// ✨ Key features:
//   - Horner evaluation in O(n)
//   - synthetic division generalized to non-monic divisors
//   - derivative, negation, sum and product
//   - closed-form signs at ±∞ (no literal infinite arithmetic)
//
// ⚙️ Usage:
//
//	p := poly.MustNew(1, 0, -1, -10)      // x³ − x − 10
//	y := p.Evaluate(2)                    // -4
//	q, r, err := poly.Divide(p, p.Derivative())
//
// Errors:
//   - ErrEmptyPolynomial   - no coefficients given.
//   - ErrNaNInf            - a coefficient is NaN or ±Inf.
//   - ErrDegenerateDivisor - zero leading divisor coefficient, or divisor
//     longer than dividend.
//
// Concurrency:
//
//	Polynomial values are read-only after construction and safe to share
//	across goroutines.
package poly

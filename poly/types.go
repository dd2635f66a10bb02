// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"math"
)

// Sentinel errors. Callers match them with errors.Is; the divider and the
// constructors never panic on user input.
var (
	// ErrEmptyPolynomial is returned when a polynomial has no coefficients.
	ErrEmptyPolynomial = errors.New("poly: polynomial must have at least one coefficient")

	// ErrNaNInf is returned when a coefficient is NaN or ±Inf.
	ErrNaNInf = errors.New("poly: NaN or Inf coefficient")

	// ErrDegenerateDivisor is returned by Divide when the divisor's leading
	// coefficient is zero or the divisor is longer than the dividend.
	ErrDegenerateDivisor = errors.New("poly: degenerate divisor")
)

// Polynomial is an immutable coefficient list, highest degree first.
// The zero value is not valid; build one with New or MustNew.
type Polynomial struct {
	c []float64
}

// New copies coeffs into a fresh Polynomial.
//
// Errors: ErrEmptyPolynomial, ErrNaNInf.
func New(coeffs ...float64) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, ErrEmptyPolynomial
	}
	for _, v := range coeffs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Polynomial{}, ErrNaNInf
		}
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return Polynomial{c: c}, nil
}

// MustNew is like New but panics on invalid input. Intended for literals
// in tests and examples.
func MustNew(coeffs ...float64) Polynomial {
	p, err := New(coeffs...)
	if err != nil {
		panic(err)
	}

	return p
}

// own wraps a slice the package has just allocated, skipping the copy.
func own(c []float64) Polynomial { return Polynomial{c: c} }

// Coefficients returns a copy of the coefficients, highest degree first.
func (p Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.c))
	copy(out, p.c)

	return out
}

// Len is the number of coefficients.
func (p Polynomial) Len() int { return len(p.c) }

// Degree is Len()-1. Leading zeros are not stripped.
func (p Polynomial) Degree() int { return len(p.c) - 1 }

// Leading returns the highest-degree coefficient.
func (p Polynomial) Leading() float64 { return p.c[0] }

// At returns coefficient i (0 = highest degree).
func (p Polynomial) At(i int) float64 { return p.c[i] }

// IsConstant reports whether p has a single coefficient.
func (p Polynomial) IsConstant() bool { return len(p.c) == 1 }

// IsZero reports whether every coefficient satisfies |c| <= eps.
func (p Polynomial) IsZero(eps float64) bool {
	for _, v := range p.c {
		if math.Abs(v) > eps {
			return false
		}
	}

	return true
}

// MaxAbs returns the largest coefficient magnitude.
func (p Polynomial) MaxAbs() float64 {
	m := 0.0
	for _, v := range p.c {
		if a := math.Abs(v); a > m {
			m = a
		}
	}

	return m
}

// SPDX-License-Identifier: MIT

package poly

// Horner evaluates coeffs (highest degree first) at x.
//
//	result = c[0]
//	for i = 1..n-1: result = result*x + c[i]
//
// An empty slice evaluates to 0.
//
// Complexity: O(n) time, O(1) memory.
func Horner(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	result := coeffs[0]
	for i := 1; i < len(coeffs); i++ {
		result = result*x + coeffs[i]
	}

	return result
}

// Evaluate returns p(x) by Horner's rule. Only meaningful for finite x; use
// SignsAtInfinity for the behaviour at ±∞.
func (p Polynomial) Evaluate(x float64) float64 { return Horner(p.c, x) }

// Derivative returns p' as [c[i]*(deg-i) for i < deg].
// The derivative of a constant (or of the zero value) is the zero constant [0].
func (p Polynomial) Derivative() Polynomial {
	deg := p.Degree()
	if deg <= 0 {
		return own([]float64{0})
	}
	d := make([]float64, deg)
	for i := 0; i < deg; i++ {
		d[i] = p.c[i] * float64(deg-i)
	}

	return own(d)
}

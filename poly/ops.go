// SPDX-License-Identifier: MIT

package poly

import "math"

// Negate returns −p.
func (p Polynomial) Negate() Polynomial {
	out := make([]float64, len(p.c))
	for i, v := range p.c {
		out[i] = -v
	}

	return own(out)
}

// TrimLeading drops leading coefficients with |c| <= eps, always keeping
// the constant term. The result shares no storage with p.
func (p Polynomial) TrimLeading(eps float64) Polynomial {
	k := 0
	for k < len(p.c)-1 && math.Abs(p.c[k]) <= eps {
		k++
	}
	out := make([]float64, len(p.c)-k)
	copy(out, p.c[k:])

	return own(out)
}

// Add returns p + q. The shorter operand is aligned on the constant term.
func Add(p, q Polynomial) Polynomial {
	if len(p.c) < len(q.c) {
		p, q = q, p
	}
	out := p.Coefficients()
	off := len(p.c) - len(q.c)
	for i, v := range q.c {
		out[off+i] += v
	}

	return own(out)
}

// Mul returns p·q.
//
// Complexity: O(n·m).
func Mul(p, q Polynomial) Polynomial {
	out := make([]float64, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		if a == 0 {
			continue
		}
		for j, b := range q.c {
			out[i+j] += a * b
		}
	}

	return own(out)
}

// Equal reports whether p and q have the same length and every pair of
// coefficients differs by at most eps.
func Equal(p, q Polynomial, eps float64) bool {
	if len(p.c) != len(q.c) {
		return false
	}
	for i := range p.c {
		if math.Abs(p.c[i]-q.c[i]) > eps {
			return false
		}
	}

	return true
}

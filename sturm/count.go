// SPDX-License-Identifier: MIT

package sturm

import (
	"errors"
	"math"

	"github.com/katalvlaran/polyroot/poly"
)

// ErrBadInterval is returned by CountBetween when a >= b or an endpoint is
// not finite.
var ErrBadInterval = errors.New("sturm: interval must satisfy a < b with finite endpoints")

// SignChangesAtInfinity returns (c1, c2): the sign changes across the
// sequence at +∞ and at −∞. Each term is compared with its immediate
// predecessor.
func (s Sequence) SignChangesAtInfinity() (c1, c2 int) {
	if len(s.terms) == 0 {
		return 0, 0
	}
	prev := s.terms[0].SignsAtInfinity()
	for i := 1; i < len(s.terms); i++ {
		cur := s.terms[i].SignsAtInfinity()
		if cur.PosInf != prev.PosInf {
			c1++
		}
		if cur.NegInf != prev.NegInf {
			c2++
		}
		prev = cur
	}

	return c1, c2
}

// RealRootCount is c2 − c1, the number of distinct real roots of Term(0).
func (s Sequence) RealRootCount() int {
	c1, c2 := s.SignChangesAtInfinity()

	return c2 - c1
}

// SignChanges evaluates every term at a finite x and counts sign changes,
// skipping exact zeros.
func (s Sequence) SignChanges(x float64) int {
	var (
		changes int
		last    float64
	)
	for _, t := range s.terms {
		v := t.Evaluate(x)
		if v == 0 {
			continue
		}
		if last != 0 && (v > 0) != (last > 0) {
			changes++
		}
		last = v
	}

	return changes
}

// CountBetween returns the number of distinct real roots in (a, b].
//
// Errors: ErrBadInterval.
func (s Sequence) CountBetween(a, b float64) (int, error) {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a >= b {
		return 0, ErrBadInterval
	}

	return s.SignChanges(a) - s.SignChanges(b), nil
}

// CountRealRoots builds the Sturm sequence of p (seeded with dp) and returns
// the number of distinct real roots. The result is advisory: it is exact in
// exact arithmetic and subject to rounding for ill-conditioned inputs.
//
// Errors: see Build.
func CountRealRoots(p, dp poly.Polynomial, opts *Options) (int, error) {
	seq, err := Build(p, dp, opts)
	if err != nil {
		return 0, err
	}

	return seq.RealRootCount(), nil
}

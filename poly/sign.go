// SPDX-License-Identifier: MIT

package poly

// Sign of a value at a directional limit. Zero counts as Negative, matching
// the "> 0 is positive, anything else negative" rule the sign-change counter
// was designed around.
type Sign int8

const (
	// Negative means the value is ≤ 0.
	Negative Sign = -1
	// Positive means the value is > 0.
	Positive Sign = 1
)

// String renders "+" or "-".
func (s Sign) String() string {
	if s == Positive {
		return "+"
	}

	return "-"
}

// SignOf classifies v.
func SignOf(v float64) Sign {
	if v > 0 {
		return Positive
	}

	return Negative
}

// SignPair holds the signs of p(x) as x → +∞ and x → −∞.
type SignPair struct {
	PosInf Sign
	NegInf Sign
}

// SignsAtInfinity derives the limits from the leading coefficient alone:
//   - x → +∞: sign(c[0])
//   - x → −∞: sign(c[0]) for even degree, flipped for odd degree
//
// No infinite or huge magnitudes are ever evaluated.
func (p Polynomial) SignsAtInfinity() SignPair {
	lead := SignOf(p.c[0])
	if p.c[0] == 0 {
		return SignPair{PosInf: Negative, NegInf: Negative}
	}
	neg := lead
	if p.Degree()%2 == 1 {
		neg = -lead
	}

	return SignPair{PosInf: lead, NegInf: neg}
}

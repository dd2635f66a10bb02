// SPDX-License-Identifier: MIT

package newton

import (
	"math"
	"strconv"
	"strings"
)

// Step is one completed Newton update.
type Step struct {
	Iteration int     // zero-based update index
	X         float64 // xₙ
	FX        float64 // f(xₙ)
	DFX       float64 // f'(xₙ)
	Error     float64 // |xₙ − xₙ₊₁|
}

// Trace is the append-only list of steps of one Solve call.
type Trace []Step

// traceRule separates steps in Trace.String.
const traceRule = "----------------------------------------"

// round5 rounds to 5 decimals for display.
func round5(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	return math.Round(v*1e5) / 1e5
}

func fmtFloat(v float64) string { return strconv.FormatFloat(round5(v), 'f', -1, 64) }

// String renders every step as a small block, values rounded to 5 decimals:
//
//	Iteration: 0
//	Value of Xn: 2
//	Value of Function(Xn): -4
//	Value of Derivative-Function(Xn): 11
//	The residual error: 0.36364
//	----------------------------------------
func (t Trace) String() string {
	var sb strings.Builder
	for _, s := range t {
		sb.WriteString("Iteration: ")
		sb.WriteString(strconv.Itoa(s.Iteration))
		sb.WriteString("\nValue of Xn: ")
		sb.WriteString(fmtFloat(s.X))
		sb.WriteString("\nValue of Function(Xn): ")
		sb.WriteString(fmtFloat(s.FX))
		sb.WriteString("\nValue of Derivative-Function(Xn): ")
		sb.WriteString(fmtFloat(s.DFX))
		sb.WriteString("\nThe residual error: ")
		sb.WriteString(fmtFloat(s.Error))
		sb.WriteString("\n")
		sb.WriteString(traceRule)
		sb.WriteString("\n")
	}

	return sb.String()
}

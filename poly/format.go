// SPDX-License-Identifier: MIT

package poly

import (
	"math"
	"strconv"
	"strings"
)

// String renders p in conventional notation, e.g. "x^3 - x - 10".
// Zero terms are skipped; an all-zero polynomial renders as "0".
func (p Polynomial) String() string {
	var (
		sb    strings.Builder
		deg   = p.Degree()
		first = true
	)
	for i, v := range p.c {
		if v == 0 {
			continue
		}
		pow := deg - i
		mag := math.Abs(v)

		switch {
		case first && v < 0:
			sb.WriteString("-")
		case !first && v < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false

		if mag != 1 || pow == 0 {
			sb.WriteString(strconv.FormatFloat(mag, 'g', -1, 64))
		}
		switch pow {
		case 0:
		case 1:
			sb.WriteString("x")
		default:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(pow))
		}
	}
	if first {
		return "0"
	}

	return sb.String()
}

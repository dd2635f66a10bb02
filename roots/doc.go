// SPDX-License-Identifier: MIT

// Package roots is the entry point of the polyroot engine. It exposes the
// engine's operations over plain coefficient slices (highest degree first)
// and wires the pieces together:
//
//	coefficients ─┬─► sturm (even degree only) ──► 0 roots? ErrNoRealRoot
//	              └─► newton ──► Converged | ZeroDerivative | MaxIterationsExceeded | Diverged
//
// Odd-degree polynomials always have a real root, so the Sturm check is
// skipped for them. Every call borrows its inputs and never retains them.
//
// ⚙️ Usage:
//
//	c := []float64{1, 0, -1, -10}
//	res, err := roots.Solve(c, roots.Derivative(c), roots.DefaultOptions())
//	switch {
//	case errors.Is(err, roots.ErrNoRealRoot):     // even degree, no real root
//	case errors.Is(err, newton.ErrMaxIterations): // retry with another guess
//	}
package roots

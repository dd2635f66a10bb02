// SPDX-License-Identifier: MIT

// Package newton approximates a root of f(x) = 0 with the Newton–Raphson
// iteration
//
//	xₙ₊₁ = xₙ − f(xₙ) / f'(xₙ)
//
// stopping when |xₙ − xₙ₊₁| < Tolerance.
//
// Outcomes (Result.Status):
//   - Converged             - the step fell under Tolerance; Root is xₙ₊₁.
//   - ZeroDerivative        - f'(xₙ) == 0 exactly; horizontal tangent.
//   - Diverged              - xₙ₊₁ is NaN or ±Inf.
//   - MaxIterationsExceeded - MaxIterations updates without converging.
//
// Every non-converged outcome is also returned as a sentinel error so
// callers can use errors.Is. The solver never retries on its own.
//
// ⚙️ Usage:
//
//	p := poly.MustNew(1, 0, -1, -10)
//	f := newton.NewPolynomialFunction(p, p.Derivative())
//	opts := newton.DefaultOptions()   // x0=2, tol=1e-5, 100 iterations
//	opts.Trace = true
//	res, err := newton.Solve(f, opts)
//	// res.Root ≈ 2.30891, res.Trace holds one Step per update
//
// Solve is a pure function of (f, opts): no goroutines, no shared state.
package newton

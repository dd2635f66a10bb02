// SPDX-License-Identifier: MIT

package newton

import (
	"errors"

	"github.com/katalvlaran/polyroot/poly"
)

var (
	// ErrZeroDerivative signals f'(xₙ) == 0.
	ErrZeroDerivative = errors.New("newton: zero derivative")

	// ErrMaxIterations signals no convergence within MaxIterations.
	ErrMaxIterations = errors.New("newton: exceeded maximum iterations")

	// ErrDiverged signals a non-finite next estimate.
	ErrDiverged = errors.New("newton: iteration diverged")

	// ErrBadOptions signals a non-positive tolerance or iteration budget,
	// or a non-finite initial guess.
	ErrBadOptions = errors.New("newton: invalid options")

	// ErrNilFunction signals a nil Function.
	ErrNilFunction = errors.New("newton: function is nil")
)

// Defaults used by DefaultOptions.
const (
	// DefaultInitialGuess is a fixed seed, not derived from the function.
	DefaultInitialGuess = 2.0
	// DefaultTolerance bounds |xₙ − xₙ₊₁| for convergence.
	DefaultTolerance = 1e-5
	// DefaultMaxIterations caps the number of updates.
	DefaultMaxIterations = 100
)

// Function is anything Newton can iterate on.
type Function interface {
	Evaluate(x float64) float64
	DerivativeEvaluate(x float64) float64
}

// PolynomialFunction binds a polynomial and its derivative to Function.
type PolynomialFunction struct {
	p, dp poly.Polynomial
}

// NewPolynomialFunction pairs p with dp. dp is not checked against p; pass
// p.Derivative() unless a different slope is intended.
func NewPolynomialFunction(p, dp poly.Polynomial) *PolynomialFunction {
	return &PolynomialFunction{p: p, dp: dp}
}

// Evaluate returns p(x).
func (f *PolynomialFunction) Evaluate(x float64) float64 { return f.p.Evaluate(x) }

// DerivativeEvaluate returns dp(x).
func (f *PolynomialFunction) DerivativeEvaluate(x float64) float64 { return f.dp.Evaluate(x) }

// Polynomial returns the bound polynomial.
func (f *PolynomialFunction) Polynomial() poly.Polynomial { return f.p }

// Options configures Solve.
//
// Fields:
//   - InitialGuess  - x₀.
//   - Tolerance     - convergence threshold on |xₙ − xₙ₊₁|, must be > 0.
//   - MaxIterations - update budget, must be ≥ 1.
//   - Trace         - if true, Result.Trace records every completed update.
//   - OnStep        - optional hook called once per completed update,
//     independent of Trace.
type Options struct {
	InitialGuess  float64
	Tolerance     float64
	MaxIterations int
	Trace         bool
	OnStep        func(Step)
}

// DefaultOptions returns x₀=2, Tolerance=1e-5, MaxIterations=100, no trace.
func DefaultOptions() Options {
	return Options{
		InitialGuess:  DefaultInitialGuess,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Status is the terminal state of a Solve call.
type Status int

const (
	// Converged means Root is valid.
	Converged Status = iota
	// ZeroDerivative means the tangent was horizontal.
	ZeroDerivative
	// MaxIterationsExceeded means the budget ran out.
	MaxIterationsExceeded
	// Diverged means the next estimate was NaN or ±Inf.
	Diverged
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case ZeroDerivative:
		return "zero derivative"
	case MaxIterationsExceeded:
		return "max iterations exceeded"
	case Diverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Err maps a status to its sentinel (nil for Converged).
func (s Status) Err() error {
	switch s {
	case ZeroDerivative:
		return ErrZeroDerivative
	case MaxIterationsExceeded:
		return ErrMaxIterations
	case Diverged:
		return ErrDiverged
	default:
		return nil
	}
}

// Result is the outcome of Solve.
//
//   - Root       - the converged estimate; only meaningful when Status == Converged.
//   - Last       - the last estimate the solver held (xₙ at termination).
//   - Iterations - completed updates.
//   - Trace      - per-update diagnostics when Options.Trace was set, else nil.
type Result struct {
	Status     Status
	Root       float64
	Last       float64
	Iterations int
	Trace      Trace
}

// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polyroot/newton"
	"github.com/katalvlaran/polyroot/poly"
	"github.com/katalvlaran/polyroot/sturm"
)

// ErrNoRealRoot is returned by Solve when an even-degree polynomial has no
// real root according to its Sturm sequence. Newton is not invoked.
var ErrNoRealRoot = errors.New("roots: polynomial has no real roots")

// Options configures Solve. The Newton fields mirror newton.Options.
//
//   - ProceedOnIndeterminate - when the Sturm count cannot be computed
//     (sturm.ErrDegenerateSequence), run Newton anyway instead of returning
//     the error.
//   - Sturm - builder options; nil means sturm.DefaultOptions().
type Options struct {
	InitialGuess           float64
	Tolerance              float64
	MaxIterations          int
	Trace                  bool
	OnStep                 func(newton.Step)
	ProceedOnIndeterminate bool
	Sturm                  *sturm.Options
}

// DefaultOptions mirrors newton.DefaultOptions; the Sturm guard aborts on
// degeneracy.
func DefaultOptions() Options {
	n := newton.DefaultOptions()

	return Options{
		InitialGuess:  n.InitialGuess,
		Tolerance:     n.Tolerance,
		MaxIterations: n.MaxIterations,
	}
}

func (o Options) newtonOptions() newton.Options {
	return newton.Options{
		InitialGuess:  o.InitialGuess,
		Tolerance:     o.Tolerance,
		MaxIterations: o.MaxIterations,
		Trace:         o.Trace,
		OnStep:        o.OnStep,
	}
}

// Evaluate returns the polynomial value at x (Horner).
//
// Errors: poly.ErrEmptyPolynomial, poly.ErrNaNInf.
func Evaluate(coefficients []float64, x float64) (float64, error) {
	p, err := poly.New(coefficients...)
	if err != nil {
		return 0, err
	}

	return p.Evaluate(x), nil
}

// Derivative returns [c[i]*(deg-i) for i < deg]. A constant, empty or
// non-finite input yields [0]; Solve rejects the latter two on its own.
func Derivative(coefficients []float64) []float64 {
	p, err := poly.New(coefficients...)
	if err != nil || p.IsConstant() {
		return []float64{0}
	}

	return p.Derivative().Coefficients()
}

// Divide returns (quotient, remainder) of dividend ÷ divisor.
//
// Errors: poly.ErrDegenerateDivisor, poly.ErrEmptyPolynomial, poly.ErrNaNInf.
func Divide(dividend, divisor []float64) (quotient, remainder []float64, err error) {
	a, err := poly.New(dividend...)
	if err != nil {
		return nil, nil, fmt.Errorf("dividend: %w", err)
	}
	b, err := poly.New(divisor...)
	if err != nil {
		return nil, nil, fmt.Errorf("divisor: %w", err)
	}
	q, r, err := poly.Divide(a, b)
	if err != nil {
		return nil, nil, err
	}

	return q.Coefficients(), r.Coefficients(), nil
}

// CountRealRoots returns the number of distinct real roots by Sturm's
// theorem. derivative is caller-supplied, normally Derivative(coefficients).
//
// Errors: sturm.ErrDegreeTooLow, sturm.ErrDegenerateSequence, poly errors.
func CountRealRoots(coefficients, derivative []float64) (int, error) {
	p, dp, err := pair(coefficients, derivative)
	if err != nil {
		return 0, err
	}

	return sturm.CountRealRoots(p, dp, nil)
}

// Solve refines a real root of the polynomial with Newton–Raphson.
//
// Stages:
//  1. Even degree: count real roots with Sturm. Zero ⇒ ErrNoRealRoot.
//     A degenerate sequence aborts unless ProceedOnIndeterminate is set.
//     Odd degree is not checked; such a polynomial has at least one root.
//  2. Newton iteration from InitialGuess.
//
// The returned Result carries the status and (if requested) the trace even
// when err != nil; err is nil only on convergence.
func Solve(coefficients, derivative []float64, opts Options) (newton.Result, error) {
	// Stage 1: Inputs.
	p, dp, err := pair(coefficients, derivative)
	if err != nil {
		return newton.Result{}, err
	}

	// Stage 2: Sturm guard for even degree.
	if p.Degree()%2 == 0 {
		n, err := sturm.CountRealRoots(p, dp, opts.Sturm)
		switch {
		case errors.Is(err, sturm.ErrDegenerateSequence) && opts.ProceedOnIndeterminate:
		case err != nil:
			return newton.Result{}, err
		case n == 0:
			return newton.Result{}, ErrNoRealRoot
		}
	}

	// Stage 3: Newton.
	return newton.Solve(newton.NewPolynomialFunction(p, dp), opts.newtonOptions())
}

func pair(coefficients, derivative []float64) (p, dp poly.Polynomial, err error) {
	if p, err = poly.New(coefficients...); err != nil {
		return p, dp, fmt.Errorf("coefficients: %w", err)
	}
	if dp, err = poly.New(derivative...); err != nil {
		return p, dp, fmt.Errorf("derivative: %w", err)
	}

	return p, dp, nil
}

// CountBetween returns the number of distinct real roots in (a, b], using
// the exact derivative of the polynomial.
//
// Errors: sturm.ErrBadInterval plus those of CountRealRoots.
func CountBetween(coefficients []float64, a, b float64) (int, error) {
	p, err := poly.New(coefficients...)
	if err != nil {
		return 0, fmt.Errorf("coefficients: %w", err)
	}
	seq, err := sturm.Build(p, p.Derivative(), nil)
	if err != nil {
		return 0, err
	}

	return seq.CountBetween(a, b)
}

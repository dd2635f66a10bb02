// SPDX-License-Identifier: MIT

package newton

import "math"

// Solve runs the Newton–Raphson iteration on f.
//
// State machine (x = estimate, i = completed updates):
//
//	Iterating(x₀, 0)
//	  fx, dfx = f(x), f'(x)
//	  dfx == 0                → ZeroDerivative
//	  next = x − fx/dfx, err = |x − next|
//	  next is NaN/±Inf        → Diverged
//	  err < Tolerance         → Converged(next)
//	  i+1 == MaxIterations    → MaxIterationsExceeded
//	  otherwise               → Iterating(next, i+1)
//
// The returned error is nil only for Converged; otherwise it is the
// sentinel for Result.Status (or ErrBadOptions / ErrNilFunction). The
// Result is populated in every non-validation case, including the trace.
// A nil Function, or a nil *PolynomialFunction, yields ErrNilFunction;
// other typed nils are the caller's to avoid.
//
// Complexity: O(MaxIterations) evaluations of f and f'.
func Solve(f Function, opts Options) (Result, error) {
	// Stage 1: Validate.
	if f == nil {
		return Result{}, ErrNilFunction
	}
	if pf, ok := f.(*PolynomialFunction); ok && pf == nil {
		return Result{}, ErrNilFunction
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	// Stage 2: Iterate.
	var (
		x     = opts.InitialGuess
		trace Trace
		step  Step
		fx    float64
		dfx   float64
		next  float64
		i     int
	)
	if opts.Trace {
		trace = make(Trace, 0, min(opts.MaxIterations, 64))
	}
	for i = 0; i < opts.MaxIterations; i++ {
		fx = f.Evaluate(x)
		dfx = f.DerivativeEvaluate(x)
		if dfx == 0 {
			return Result{Status: ZeroDerivative, Last: x, Iterations: i, Trace: trace}, ErrZeroDerivative
		}
		next = x - fx/dfx
		step = Step{Iteration: i, X: x, FX: fx, DFX: dfx, Error: math.Abs(x - next)}
		if opts.Trace {
			trace = append(trace, step)
		}
		if opts.OnStep != nil {
			opts.OnStep(step)
		}
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return Result{Status: Diverged, Last: x, Iterations: i + 1, Trace: trace}, ErrDiverged
		}
		if step.Error < opts.Tolerance {
			return Result{Status: Converged, Root: next, Last: next, Iterations: i + 1, Trace: trace}, nil
		}
		x = next
	}

	// Stage 3: Budget exhausted.
	return Result{Status: MaxIterationsExceeded, Last: x, Iterations: i, Trace: trace}, ErrMaxIterations
}

// validateOptions rejects settings that make the state machine meaningless.
func validateOptions(opts Options) error {
	switch {
	case math.IsNaN(opts.InitialGuess) || math.IsInf(opts.InitialGuess, 0):
		return ErrBadOptions
	case !(opts.Tolerance > 0) || math.IsInf(opts.Tolerance, 0):
		return ErrBadOptions
	case opts.MaxIterations < 1:
		return ErrBadOptions
	}

	return nil
}

package roots_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/polyroot/newton"
	"github.com/katalvlaran/polyroot/poly"
	"github.com/katalvlaran/polyroot/roots"
	"github.com/katalvlaran/polyroot/sturm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluate checks the Horner entry point and its validation.
func TestEvaluate(t *testing.T) {
	v, err := roots.Evaluate([]float64{1, 0, 0, -1, -10}, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = roots.Evaluate(nil, 1)
	assert.ErrorIs(t, err, poly.ErrEmptyPolynomial)
}

// TestDerivative covers the coefficient rule and degenerate inputs.
func TestDerivative(t *testing.T) {
	assert.Equal(t, []float64{3, 0, -1}, roots.Derivative([]float64{1, 0, -1, -10}))
	assert.Equal(t, []float64{0}, roots.Derivative([]float64{9}))
	assert.Equal(t, []float64{0}, roots.Derivative(nil))
	assert.Equal(t, []float64{0}, roots.Derivative([]float64{1, math.NaN()}))
	assert.Equal(t, []float64{2, 0}, roots.Derivative([]float64{1, 0, -1}))
}

// TestDivide checks both outputs and the degenerate divisor error.
func TestDivide(t *testing.T) {
	q, r, err := roots.Divide([]float64{1, 0, -1}, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, q)
	assert.Equal(t, []float64{0}, r)

	_, _, err = roots.Divide([]float64{1, 0, -1}, []float64{0, 1})
	assert.ErrorIs(t, err, poly.ErrDegenerateDivisor)

	_, _, err = roots.Divide([]float64{1}, []float64{1, 1})
	assert.ErrorIs(t, err, poly.ErrDegenerateDivisor)

	_, _, err = roots.Divide(nil, []float64{1})
	assert.ErrorIs(t, err, poly.ErrEmptyPolynomial)
}

// TestCountRealRoots mirrors the Sturm sanity properties.
func TestCountRealRoots(t *testing.T) {
	n, err := roots.CountRealRoots([]float64{1, 0, -1}, []float64{2, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = roots.CountRealRoots([]float64{1, 0, 1}, []float64{2, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = roots.CountRealRoots([]float64{3}, []float64{0})
	assert.ErrorIs(t, err, sturm.ErrDegreeTooLow)
}

// TestSolve_NoRealRoot short-circuits before any Newton step.
func TestSolve_NoRealRoot(t *testing.T) {
	steps := 0
	opts := roots.DefaultOptions()
	opts.OnStep = func(newton.Step) { steps++ }

	c := []float64{1, 0, 1}
	_, err := roots.Solve(c, roots.Derivative(c), opts)
	assert.ErrorIs(t, err, roots.ErrNoRealRoot)
	assert.Zero(t, steps, "Newton must not run")
}

// TestSolve_NoRealRoot_TinyCoefficients keeps the guard for 1e-13·(x²+1).
func TestSolve_NoRealRoot_TinyCoefficients(t *testing.T) {
	c := []float64{1e-13, 0, 1e-13}
	n, err := roots.CountRealRoots(c, roots.Derivative(c))
	require.NoError(t, err)
	assert.Zero(t, n)

	res, err := roots.Solve(c, roots.Derivative(c), roots.DefaultOptions())
	assert.ErrorIs(t, err, roots.ErrNoRealRoot)
	assert.Zero(t, res.Iterations)
}

// TestSolve_Converges covers the odd-degree path (no Sturm check).
func TestSolve_Converges(t *testing.T) {
	c := []float64{1, 0, -1, -10}
	res, err := roots.Solve(c, roots.Derivative(c), roots.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, newton.Converged, res.Status)
	assert.InDelta(t, 2.30891, res.Root, 1e-5)
}

// TestSolve_EvenDegreeWithRoots passes the guard and converges.
func TestSolve_EvenDegreeWithRoots(t *testing.T) {
	c := []float64{1, 0, -1}
	res, err := roots.Solve(c, roots.Derivative(c), roots.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Root, 1e-5)
}

// TestSolve_ZeroDerivative: x² from 0 passes the guard (one distinct root)
// and stops on the horizontal tangent.
func TestSolve_ZeroDerivative(t *testing.T) {
	c := []float64{1, 0, 0}
	opts := roots.DefaultOptions()
	opts.InitialGuess = 0
	res, err := roots.Solve(c, roots.Derivative(c), opts)
	assert.ErrorIs(t, err, newton.ErrZeroDerivative)
	assert.Equal(t, newton.ZeroDerivative, res.Status)
}

// TestSolve_MaxIterations reports the cap without retrying.
func TestSolve_MaxIterations(t *testing.T) {
	c := []float64{1, 0, -1, -10}
	opts := roots.DefaultOptions()
	opts.MaxIterations = 1
	opts.Trace = true
	res, err := roots.Solve(c, roots.Derivative(c), opts)
	assert.ErrorIs(t, err, newton.ErrMaxIterations)
	assert.Len(t, res.Trace, 1)
}

// TestSolve_Indeterminate shows both choices on a degenerate Sturm input.
func TestSolve_Indeterminate(t *testing.T) {
	c := []float64{1, 0, -1}
	bogus := []float64{0, 2} // zero leading coefficient

	_, err := roots.Solve(c, bogus, roots.DefaultOptions())
	assert.ErrorIs(t, err, sturm.ErrDegenerateSequence)

	opts := roots.DefaultOptions()
	opts.ProceedOnIndeterminate = true
	res, err := roots.Solve(c, bogus, opts)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Root, 1e-4)
}

// TestSolve_InvalidInput rejects empty or non-finite coefficients.
func TestSolve_InvalidInput(t *testing.T) {
	_, err := roots.Solve(nil, []float64{0}, roots.DefaultOptions())
	assert.ErrorIs(t, err, poly.ErrEmptyPolynomial)

	_, err = roots.Solve([]float64{1, 2}, nil, roots.DefaultOptions())
	assert.ErrorIs(t, err, poly.ErrEmptyPolynomial)

	opts := roots.DefaultOptions()
	opts.Tolerance = 0
	_, err = roots.Solve([]float64{1, 2}, []float64{1}, opts)
	assert.ErrorIs(t, err, newton.ErrBadOptions)
}

// TestReport renders the user-facing text for each outcome.
func TestReport(t *testing.T) {
	c := []float64{1, 0, -1, -10}
	opts := roots.DefaultOptions()
	opts.Trace = true
	res, err := roots.Solve(c, roots.Derivative(c), opts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, roots.Report(&buf, res, err))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "The root of the equation is : 2.30891\n"), out)
	assert.Contains(t, out, "Iteration: 3\n")

	assert.Equal(t, "The polynomial has no real roots", roots.Message(newton.Result{}, roots.ErrNoRealRoot))
	assert.Equal(t, "Zero derivative. No solution found.", roots.Message(newton.Result{}, newton.ErrZeroDerivative))
	assert.Equal(t, "Exceeded maximum iterations", roots.Message(newton.Result{}, newton.ErrMaxIterations))
	assert.Equal(t, "Iteration diverged. No solution found.", roots.Message(newton.Result{}, newton.ErrDiverged))
	assert.Equal(t, "Error: sturm: polynomial degree must be >= 1", roots.Message(newton.Result{}, sturm.ErrDegreeTooLow))

	buf.Reset()
	require.NoError(t, roots.Report(&buf, newton.Result{}, roots.ErrNoRealRoot))
	assert.Equal(t, "The polynomial has no real roots\n", buf.String())
}

// TestCountBetween restricts the count to a half-open interval.
func TestCountBetween(t *testing.T) {
	c := []float64{1, 0, -5, 0, 4} // roots ±1, ±2
	n, err := roots.CountBetween(c, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = roots.CountBetween(c, -1.5, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = roots.CountBetween(c, 3, 0)
	assert.ErrorIs(t, err, sturm.ErrBadInterval)

	_, err = roots.CountBetween([]float64{4}, 0, 1)
	assert.ErrorIs(t, err, sturm.ErrDegreeTooLow)

	_, err = roots.CountBetween(nil, 0, 1)
	assert.ErrorIs(t, err, poly.ErrEmptyPolynomial)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/polyroot/newton"
	"github.com/katalvlaran/polyroot/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestSolve_Coefficients(t *testing.T) {
	out, _, err := run(t, "solve", "--coef", "1,0,-1,-10")
	require.NoError(t, err)
	assert.Equal(t, "The root of the equation is : 2.30891\n", out)
}

func TestSolve_NoRealRoot(t *testing.T) {
	out, _, err := run(t, "solve", "--coef", "1,0,1")
	assert.ErrorIs(t, err, roots.ErrNoRealRoot)
	assert.Equal(t, "The polynomial has no real roots\n", out)
}

func TestSolve_MaxIterations(t *testing.T) {
	out, _, err := run(t, "solve", "--coef", "1,0,-1,-10", "--max-iter", "1")
	assert.ErrorIs(t, err, newton.ErrMaxIterations)
	assert.Equal(t, "Exceeded maximum iterations\n", out)
}

func TestSolve_ConfigWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"max_iter": 100, "stop_value": 1e-5, "coef": [1, 0, -2]}`), 0o600))

	out, errOut, err := run(t, "-v", "solve", "-c", path, "--x0", "1", "--trace")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "The root of the equation is : 1.41421\n"), out)
	assert.Contains(t, out, "Iteration: 0\nValue of Xn: 1\n")
	assert.Contains(t, errOut, "newton step", "verbose mode logs each step")
}

func TestSolve_MissingInput(t *testing.T) {
	_, _, err := run(t, "solve")
	assert.ErrorContains(t, err, "--coef is required")

	_, _, err = run(t, "solve", "--coef", "1,zz")
	assert.Error(t, err)

	_, _, err = run(t, "solve", "--coef", "1,0,-1", "--tol", "0")
	assert.Error(t, err)
}

func TestCount(t *testing.T) {
	out, _, err := run(t, "count", "--coef", "1,0,-5,0,4")
	require.NoError(t, err)
	assert.Equal(t, "real roots: 4\n", out)

	out, _, err = run(t, "count", "--coef", "1,0,-5,0,4", "--between", "0,3")
	require.NoError(t, err)
	assert.Equal(t, "real roots in (0, 3]: 2\n", out)

	_, _, err = run(t, "count", "--coef", "1,0,-5,0,4", "--between", "1")
	assert.Error(t, err)
}

func TestEval(t *testing.T) {
	out, _, err := run(t, "eval", "--coef", "1,0,0,-1,-10", "--x", "2")
	require.NoError(t, err)
	assert.Equal(t, "The function evaluates to : 4 for given x value: 2\n", out)
}

func TestDivide(t *testing.T) {
	out, _, err := run(t, "divide", "--dividend", "1,0,-1", "--divisor", "1,-1")
	require.NoError(t, err)
	assert.Equal(t, "quotient:  [1, 1]\nremainder: [0]\n", out)

	_, _, err = run(t, "divide", "--dividend", "1,0,-1", "--divisor", "0,1")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversion.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"celsius": {"kelvin": [1, 273.15]}}`), 0o600))

	out, _, err := run(t, "convert", "--table", path, "--value", "25", "--from", "celsius", "--to", "kelvin")
	require.NoError(t, err)
	assert.Equal(t, "298.15-kelvin\n", out)

	_, _, err = run(t, "convert", "--table", path, "--value", "1", "--from", "kelvin", "--to", "celsius")
	assert.Error(t, err)

	_, _, err = run(t, "convert", "--value", "1")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "polyroot "), out)
}

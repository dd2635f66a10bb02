package roots_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/polyroot/roots"
)

// ExampleSolve runs the full pipeline and prints the user-facing line.
func ExampleSolve() {
	for _, c := range [][]float64{{1, 0, -1, -10}, {1, 0, 1}} {
		res, err := roots.Solve(c, roots.Derivative(c), roots.DefaultOptions())
		_ = roots.Report(os.Stdout, res, err)
	}
	// Output:
	// The root of the equation is : 2.30891
	// The polynomial has no real roots
}

// ExampleCountRealRoots counts the roots of x⁴ − 5x² + 4.
func ExampleCountRealRoots() {
	c := []float64{1, 0, -5, 0, 4}
	n, err := roots.CountRealRoots(c, roots.Derivative(c))
	fmt.Println(n, err)
	// Output:
	// 4 <nil>
}

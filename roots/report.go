// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/polyroot/newton"
)

// Message turns a Solve outcome into the one-line text shown to users.
func Message(res newton.Result, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("The root of the equation is : %g", math.Round(res.Root*1e5)/1e5)
	case errors.Is(err, ErrNoRealRoot):
		return "The polynomial has no real roots"
	case errors.Is(err, newton.ErrZeroDerivative):
		return "Zero derivative. No solution found."
	case errors.Is(err, newton.ErrMaxIterations):
		return "Exceeded maximum iterations"
	case errors.Is(err, newton.ErrDiverged):
		return "Iteration diverged. No solution found."
	default:
		return "Error: " + err.Error()
	}
}

// Report writes Message followed by the trace, if one was recorded.
func Report(w io.Writer, res newton.Result, err error) error {
	if _, werr := fmt.Fprintln(w, Message(res, err)); werr != nil {
		return werr
	}
	if len(res.Trace) == 0 {
		return nil
	}
	_, werr := io.WriteString(w, "\n"+res.Trace.String())

	return werr
}

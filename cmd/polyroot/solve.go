// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/polyroot/config"
	"github.com/katalvlaran/polyroot/newton"
	"github.com/katalvlaran/polyroot/poly"
	"github.com/katalvlaran/polyroot/roots"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [flags]",
		Short: "refine a real root with Newton–Raphson.",
		Long: `Refine a real root of a polynomial with Newton–Raphson. Even-degree
	 polynomials are first checked with Sturm's theorem; if they have no real
	 root the search is skipped. Coefficients come from --coef or a problem
	 file (--config, .json/.yaml/.toml); explicit flags override the file.`,
		RunE: runSolve,
	}
	cmd.Flags().String("coef", "", "comma-separated coefficients, highest degree first")
	cmd.Flags().StringP("config", "c", "", "problem file (.json, .yaml, .yml, .toml)")
	cmd.Flags().Int("max-iter", newton.DefaultMaxIterations, "maximum number of Newton iterations")
	cmd.Flags().Float64("tol", newton.DefaultTolerance, "stopping criterion on |x(n+1) - x(n)|")
	cmd.Flags().Float64("x0", newton.DefaultInitialGuess, "initial guess")
	cmd.Flags().Bool("trace", false, "print per-iteration diagnostics")
	cmd.Flags().Bool("force", false, "run Newton even when the root count cannot be determined")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	problem, err := loadProblem(cmd)
	if err != nil {
		return err
	}
	opts := problem.SolveOptions()
	opts.ProceedOnIndeterminate = getBool(cmd, "force")
	opts.OnStep = func(s newton.Step) {
		log.WithFields(log.Fields{
			"iteration": s.Iteration,
			"x":         s.X,
			"fx":        s.FX,
			"dfx":       s.DFX,
			"error":     s.Error,
		}).Debug("newton step")
	}

	p, err := poly.New(problem.Coefficients...)
	if err != nil {
		return err
	}
	log.Debugf("solving %s (degree %d) from x0=%g", p, p.Degree(), opts.InitialGuess)

	res, err := roots.Solve(problem.Coefficients, roots.Derivative(problem.Coefficients), opts)
	if werr := roots.Report(cmd.OutOrStdout(), res, err); werr != nil {
		return werr
	}
	if err != nil {
		return err
	}
	log.Infof("solved in %d iterations", res.Iterations)

	return nil
}

// loadProblem merges the optional problem file with explicitly set flags.
func loadProblem(cmd *cobra.Command) (*config.Problem, error) {
	var (
		problem = &config.Problem{}
		flags   = cmd.Flags()
		err     error
	)
	if path, _ := flags.GetString("config"); path != "" {
		if problem, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if flags.Changed("coef") || len(problem.Coefficients) == 0 {
		if problem.Coefficients, err = coefficientsFlag(cmd, "coef"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-iter") || problem.MaxIterations == 0 {
		problem.MaxIterations, _ = flags.GetInt("max-iter")
	}
	if flags.Changed("tol") || problem.Tolerance == 0 {
		problem.Tolerance, _ = flags.GetFloat64("tol")
	}
	if flags.Changed("x0") || problem.InitialGuess == nil {
		x0, _ := flags.GetFloat64("x0")
		problem.InitialGuess = &x0
	}
	if flags.Changed("trace") {
		problem.Trace = getBool(cmd, "trace")
	}
	if err = problem.Validate(); err != nil {
		return nil, err
	}

	return problem, nil
}

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [flags]",
		Short: "count distinct real roots with Sturm's theorem.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := coefficientsFlag(cmd, "coef")
			if err != nil {
				return err
			}
			between, _ := cmd.Flags().GetFloat64Slice("between")
			if len(between) == 0 {
				n, err := roots.CountRealRoots(c, roots.Derivative(c))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "real roots: %d\n", n)

				return nil
			}
			if len(between) != 2 {
				return fmt.Errorf("--between takes exactly two values, got %d", len(between))
			}
			n, err := roots.CountBetween(c, between[0], between[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "real roots in (%g, %g]: %d\n", between[0], between[1], n)

			return nil
		},
	}
	cmd.Flags().String("coef", "", "comma-separated coefficients, highest degree first")
	cmd.Flags().Float64Slice("between", nil, "count only roots in (a, b], given as a,b")

	return cmd
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/polyroot/roots"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags]",
		Short: "evaluate a polynomial at x with Horner's rule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := coefficientsFlag(cmd, "coef")
			if err != nil {
				return err
			}
			x, _ := cmd.Flags().GetFloat64("x")
			v, err := roots.Evaluate(c, x)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "The function evaluates to : %s for given x value: %s\n",
				strconv.FormatFloat(v, 'g', -1, 64), strconv.FormatFloat(x, 'g', -1, 64))

			return nil
		},
	}
	cmd.Flags().String("coef", "", "comma-separated coefficients, highest degree first")
	cmd.Flags().Float64("x", 0, "point to evaluate at")

	return cmd
}

func newDivideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "divide [flags]",
		Short: "divide two polynomials by synthetic division.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dividend, err := coefficientsFlag(cmd, "dividend")
			if err != nil {
				return err
			}
			divisor, err := coefficientsFlag(cmd, "divisor")
			if err != nil {
				return err
			}
			q, r, err := roots.Divide(dividend, divisor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "quotient:  %s\nremainder: %s\n", formatCoefficients(q), formatCoefficients(r))

			return nil
		},
	}
	cmd.Flags().String("dividend", "", "dividend coefficients, highest degree first")
	cmd.Flags().String("divisor", "", "divisor coefficients, highest degree first")

	return cmd
}

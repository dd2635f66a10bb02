// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyroot/config"
	"github.com/spf13/cobra"
)

// getBool reads a registered bool flag; an unknown name is a programming error.
func getBool(cmd *cobra.Command, flag string) bool {
	v, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}

	return v
}

// coefficientsFlag parses a required comma-separated coefficient flag.
func coefficientsFlag(cmd *cobra.Command, flag string) ([]float64, error) {
	s, err := cmd.Flags().GetString(flag)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, fmt.Errorf("--%s is required", flag)
	}
	c, err := config.ParseCoefficients(s)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}

	return c, nil
}

// formatCoefficients renders [a, b, c] with shortest round-trip floats.
func formatCoefficients(c []float64) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polyroot/units"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags]",
		Short: "convert a quantity using a polynomial conversion table.",
		Long: `Convert a quantity between units. The table is a JSON object mapping
	 a source unit to target units, each with conversion coefficients that are
	 evaluated at the source value by Horner's rule.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				flags    = cmd.Flags()
				path, _  = flags.GetString("table")
				value, _ = flags.GetFloat64("value")
				from, _  = flags.GetString("from")
				to, _    = flags.GetString("to")
			)
			if path == "" || from == "" || to == "" {
				return errors.New("--table, --from and --to are required")
			}
			table, err := units.LoadTable(path)
			if err != nil {
				return err
			}
			q, err := units.NewQuantity(value, from)
			if err != nil {
				return err
			}
			out, err := table.Convert(q, to)
			if err != nil {
				return err
			}
			log.Debugf("converted %s to %s", q, out)
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	cmd.Flags().String("table", "", "conversion table (JSON)")
	cmd.Flags().Float64("value", 0, "value to convert")
	cmd.Flags().String("from", "", "source unit")
	cmd.Flags().String("to", "", "target unit")

	return cmd
}

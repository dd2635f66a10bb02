// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled at link time (-ldflags "-X main.Version=...").
var Version string

// newRootCmd assembles the command tree. A fresh tree per call keeps flag
// state out of package globals.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "polyroot",
		Short:         "Count and refine real roots of polynomials.",
		Long:          "Counts distinct real roots with Sturm's theorem and refines one with Newton–Raphson.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd.ErrOrStderr(), getBool(cmd, "verbose"))
		},
		Run: func(cmd *cobra.Command, args []string) {
			if getBool(cmd, "version") {
				fmt.Fprintln(cmd.OutOrStdout(), "polyroot "+version())

				return
			}
			_ = cmd.Help()
		},
	}
	root.Flags().Bool("version", false, "report version of this executable")
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	root.AddCommand(newSolveCmd(), newCountCmd(), newEvalCmd(), newDivideCmd(), newConvertCmd())

	return root
}

// configureLogging points logrus at w, with colours only on a terminal.
func configureLogging(w io.Writer, verbose bool) {
	colors := false
	if f, ok := w.(*os.File); ok {
		colors = term.IsTerminal(int(f.Fd()))
	}
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    !colors,
		ForceColors:      colors,
		DisableTimestamp: true,
	})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}

	return "(unknown version)"
}

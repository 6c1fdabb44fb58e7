// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the gatesim command line interface.
//
package cli

import (
	"fmt"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Version is filled when building with -ldflags, but *not* when installing
// via "go install".
var Version string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gatesim",
		Short: "Compute the signals of a 16 bits logic circuit.",
		Long: `Compute the signals of a 16 bits logic circuit.
	Circuits are text files with one instruction per line, e.g. "x AND y -> d".`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			if !getFlag(cmd, "version") {
				_ = cmd.Usage()
				return
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, "gatesim ")
			if Version != "" {
				fmt.Fprint(out, Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprint(out, info.Main.Version)
			} else {
				fmt.Fprint(out, "(unknown version)")
			}
			fmt.Fprintln(out)
		},
	}
	root.Flags().Bool("version", false, "report version of this executable")
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	root.AddCommand(newResolveCmd(), newDumpCmd(), newCheckCmd())
	return root
}

// Execute runs the root command with the process arguments, runs the exit
// handlers and exits. It is called by main.main().
//
func Execute() {
	stats := newPerfStats()
	atexit.Register(func() { stats.report("gatesim") })

	if err := newRootCmd().Execute(); err != nil {
		if log.IsLevelEnabled(log.DebugLevel) {
			log.Errorf("%+v", err)
		} else {
			log.Error(err)
		}
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

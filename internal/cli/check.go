// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"

	gs "github.com/db47h/gatesim"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check circuit_file",
		Short: "Check a circuit for undefined wires and dependency cycles.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDefs(cmd, args[0])
			if err != nil {
				return err
			}
			if err = gs.Check(d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d wires ok\n", args[0], len(d))
			return nil
		},
	}
}

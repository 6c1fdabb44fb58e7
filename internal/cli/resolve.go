// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"

	gs "github.com/db47h/gatesim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// resolveConfig holds the options of the resolve command.
type resolveConfig struct {
	// Wires to resolve.
	wires []string
	// If set, after a first pass, the value of the first wire is fed back
	// into this wire and the first wire is resolved again.
	feed string
}

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [flags] circuit_file",
		Short: "Print the signal on one or more wires.",
		Long: `Print the signal on one or more wires.
	Use "-" as the file name to read the circuit from standard input.
	With --feed, the signal of the first wire is assigned to the feed wire,
	then the first wire is resolved again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolveConfig{
				wires: getStringSlice(cmd, "wire"),
				feed:  getString(cmd, "feed"),
			}
			d, err := loadDefs(cmd, args[0])
			if err != nil {
				return err
			}
			return resolve(cmd, d, cfg)
		},
	}
	cmd.Flags().StringSliceP("wire", "w", []string{"a"}, "wire(s) to resolve")
	cmd.Flags().String("feed", "", "wire to override with the signal of the first wire for a second pass")
	return cmd
}

func resolve(cmd *cobra.Command, d gs.Defs, cfg resolveConfig) error {
	out := cmd.OutOrStdout()
	r := gs.NewResolver(d)

	if cfg.feed == "" {
		for _, w := range cfg.wires {
			v, err := r.Resolve(w)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %d\n", w, v)
		}
		return nil
	}

	if len(cfg.wires) != 1 {
		return errors.New("--feed requires exactly one --wire")
	}
	if _, ok := d.Lookup(cfg.feed); !ok {
		return errors.Errorf("feed wire %q not defined", cfg.feed)
	}
	w := cfg.wires[0]
	v, err := r.Resolve(w)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "part 1: %d\n", v)

	r.Replace(gs.Instruction{Kind: gs.Assign, Right: gs.Lit(v), Out: cfg.feed})
	if v, err = r.Resolve(w); err != nil {
		return err
	}
	fmt.Fprintf(out, "part 2: %d\n", v)
	return nil
}

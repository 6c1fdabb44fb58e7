// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	gs "github.com/db47h/gatesim"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultWidth = 80

type dumpConfig struct {
	// Output width in columns. 0 means terminal width.
	width int
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [flags] circuit_file",
		Short: "Print the signal on every wire.",
		Long: `Print the signal on every wire, sorted by wire name.
	The circuit is validated first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := dumpConfig{width: getInt(cmd, "width")}
			d, err := loadDefs(cmd, args[0])
			if err != nil {
				return err
			}
			if err = gs.Check(d); err != nil {
				return err
			}
			vals, err := gs.EvalAll(d)
			if err != nil {
				return err
			}
			width := cfg.width
			if width <= 0 {
				width = termWidth(cmd.OutOrStdout())
			}
			printColumns(cmd.OutOrStdout(), d.Wires(), vals, width)
			return nil
		},
	}
	cmd.Flags().Int("width", 0, "output width (default: terminal width)")
	return cmd
}

// termWidth returns the width of the terminal w is connected to, or
// defaultWidth.
func termWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// printColumns prints wire=value cells, row by row.
func printColumns(w io.Writer, wires []string, vals map[string]uint16, width int) {
	cells := make([]string, len(wires))
	cw := 0
	for i, n := range wires {
		cells[i] = n + "=" + strconv.Itoa(int(vals[n]))
		if len(cells[i]) > cw {
			cw = len(cells[i])
		}
	}
	cw += 2
	cols := width / cw
	if cols < 1 {
		cols = 1
	}
	var b strings.Builder
	for i, c := range cells {
		b.WriteString(c)
		if (i+1)%cols == 0 || i == len(cells)-1 {
			fmt.Fprintln(w, b.String())
			b.Reset()
			continue
		}
		b.WriteString(strings.Repeat(" ", cw-len(c)))
	}
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"bufio"
	"io"
	"os"
	"runtime"
	"time"

	gs "github.com/db47h/gatesim"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}
	return r
}

func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		panic(err)
	}
	return r
}

func getStringSlice(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringSlice(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// readLines reads all lines from the named file, or from the command's input
// if name is "-".
func readLines(cmd *cobra.Command, name string) ([]string, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		defer f.Close()
		r = f
	}
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, name)
	}
	return lines, nil
}

// loadDefs reads and parses a circuit file.
func loadDefs(cmd *cobra.Command, name string) (gs.Defs, error) {
	lines, err := readLines(cmd, name)
	if err != nil {
		return nil, err
	}
	d, err := gs.ParseAll(lines)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	log.Debugf("%s: %d instructions", name, len(d))
	return d, nil
}

// perfStats provides a snapshot of memory allocation at a given point in time.
type perfStats struct {
	startTime time.Time
	startMem  uint64
	startGc   uint32
}

func newPerfStats() *perfStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return &perfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// report logs the difference between the state now and as it was when the
// perfStats object was created.
func (p *perfStats) report(prefix string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	alloc := (m.TotalAlloc - p.startMem) / 1024
	gcs := m.NumGC - p.startGc
	log.Debugf("%s took %0.3fs using %v Kb (%v GC events)", prefix, time.Since(p.startTime).Seconds(), alloc, gcs)
}

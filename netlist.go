// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import "sort"

// A Netlist is a set of instructions indexed by output wire name.
//
type Netlist interface {
	// Lookup returns the instruction driving the given wire.
	Lookup(wire string) (Instruction, bool)
	// Define adds ins to the netlist, replacing any instruction with the
	// same output wire.
	Define(ins Instruction)
}

// Defs is a map based Netlist.
//
type Defs map[string]Instruction

// NewDefs returns a new Defs holding the given instructions.
//
func NewDefs(ins ...Instruction) Defs {
	d := make(Defs, len(ins))
	for _, i := range ins {
		d.Define(i)
	}
	return d
}

// Lookup implements Netlist.
//
func (d Defs) Lookup(wire string) (Instruction, bool) {
	i, ok := d[wire]
	return i, ok
}

// Define implements Netlist.
//
func (d Defs) Define(ins Instruction) {
	d[ins.Out] = ins
}

// Wires returns the sorted list of defined wires.
//
func (d Defs) Wires() []string {
	ws := make([]string, 0, len(d))
	for w := range d {
		ws = append(ws, w)
	}
	sort.Strings(ws)
	return ws
}

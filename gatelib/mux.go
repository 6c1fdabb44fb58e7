// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	gs "github.com/db47h/gatesim"
)

// Mux returns a 16 bits multiplexer. Only the lowest bit of sel is used.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel&1 == 0 { out = a } else { out = b }
//
func Mux(a, b, sel gs.Operand, out string) []gs.Instruction {
	// spread bit 0 of sel to all 16 bits
	m := out + "ma"
	ins := []gs.Instruction{binary(gs.And, sel, gs.Lit(1), m)}
	for i, sh := range []uint16{1, 2, 4, 8} {
		t, next := out+"t"+suffix(i), out+"m"+suffix(i+1)
		ins = append(ins,
			binary(gs.LShift, gs.Ref(m), gs.Lit(sh), t),
			binary(gs.Or, gs.Ref(m), gs.Ref(t), next),
		)
		m = next
	}
	nm, ab, bb := out+"nm", out+"ab", out+"bb"
	return append(ins,
		not(gs.Ref(m), nm),
		binary(gs.And, a, gs.Ref(nm), ab),
		binary(gs.And, b, gs.Ref(m), bb),
		binary(gs.Or, gs.Ref(ab), gs.Ref(bb), out),
	)
}

// DMux returns a 16 bits demultiplexer. Only the lowest bit of sel is used.
//
//	Inputs: in, sel
//	Outputs: outa, outb
//	Function: if sel&1 == 0 { outa, outb = in, 0 } else { outa, outb = 0, in }
//
func DMux(in, sel gs.Operand, outa, outb string) []gs.Instruction {
	z := outa + "zero"
	return append(append(Const(0, z),
		Mux(in, gs.Ref(z), sel, outa)...),
		Mux(gs.Ref(z), in, sel, outb)...)
}

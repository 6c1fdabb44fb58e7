// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatelib

import (
	gs "github.com/db47h/gatesim"
)

// suffix returns a letters only suffix for stage i < 26.
func suffix(i int) string {
	return string(rune('a' + i))
}

// Add returns a 16 bits adder. Overflow wraps around.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a + b
//
// The adder propagates carries over 16 stages:
//
//	s[i+1] = s[i] ^ c[i]
//	c[i+1] = (s[i] & c[i]) << 1
//
// with s[0] = a and c[0] = b. c[16] is always 0.
//
func Add(a, b gs.Operand, out string) []gs.Instruction {
	var ins []gs.Instruction
	s, c := a, b
	for i := 0; i < 16; i++ {
		sn, cn, and := out+"s"+suffix(i), out+"c"+suffix(i), out+"a"+suffix(i)
		ins = append(ins, Xor(s, c, sn)...)
		ins = append(ins,
			binary(gs.And, s, c, and),
			binary(gs.LShift, gs.Ref(and), gs.Lit(1), cn),
		)
		s, c = gs.Ref(sn), gs.Ref(cn)
	}
	return append(ins, assign(s, out))
}

// Inc returns a 16 bits incrementer.
//
//	Inputs: in
//	Outputs: out
//	Function: out = in + 1
//
func Inc(in gs.Operand, out string) []gs.Instruction {
	return Add(in, gs.Lit(1), out)
}

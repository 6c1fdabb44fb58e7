// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatelib provides composite 16 bits gates built from the primitive
// gatesim instructions.
//
// Every function returns the instructions implementing the gate. Internal
// wires are named after the output wire followed by a lowercase suffix, so
// distinct output names never collide as long as no other wire uses the
// output name as a prefix.
//
package gatelib

import (
	gs "github.com/db47h/gatesim"
)

// Chip combines parts into a single set of definitions.
//
func Chip(parts ...[]gs.Instruction) gs.Defs {
	d := make(gs.Defs)
	for _, p := range parts {
		for _, i := range p {
			d.Define(i)
		}
	}
	return d
}

func assign(in gs.Operand, out string) gs.Instruction {
	return gs.Instruction{Kind: gs.Assign, Right: in, Out: out}
}

func not(in gs.Operand, out string) gs.Instruction {
	return gs.Instruction{Kind: gs.Not, Right: in, Out: out}
}

func binary(k gs.Kind, a, b gs.Operand, out string) gs.Instruction {
	return gs.Instruction{Kind: k, Left: a, Right: b, Out: out}
}

// Const returns a constant.
//
//	Outputs: out
//	Function: out = v
//
func Const(v uint16, out string) []gs.Instruction {
	return []gs.Instruction{assign(gs.Lit(v), out)}
}

// Nand returns a NAND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = ^(a & b)
//
func Nand(a, b gs.Operand, out string) []gs.Instruction {
	t := out + "and"
	return []gs.Instruction{
		binary(gs.And, a, b, t),
		not(gs.Ref(t), out),
	}
}

// Nor returns a NOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = ^(a | b)
//
func Nor(a, b gs.Operand, out string) []gs.Instruction {
	t := out + "or"
	return []gs.Instruction{
		binary(gs.Or, a, b, t),
		not(gs.Ref(t), out),
	}
}

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a ^ b
//
func Xor(a, b gs.Operand, out string) []gs.Instruction {
	or, nand := out+"or", out+"nand"
	return append(Nand(a, b, nand),
		binary(gs.Or, a, b, or),
		binary(gs.And, gs.Ref(or), gs.Ref(nand), out),
	)
}

// Xnor returns a XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = ^(a ^ b)
//
func Xnor(a, b gs.Operand, out string) []gs.Instruction {
	x := out + "xor"
	return append(Xor(a, b, x), not(gs.Ref(x), out))
}

// Mask returns a gate clearing the bits of in not set in m.
//
//	Inputs: in
//	Outputs: out
//	Function: out = in & m
//
func Mask(in gs.Operand, m uint16, out string) []gs.Instruction {
	return []gs.Instruction{binary(gs.And, in, gs.Lit(m), out)}
}

// Rotl returns a left rotation by k bits.
//
//	Inputs: in
//	Outputs: out
//	Function: out = in<<k | in>>(16-k)
//
func Rotl(in gs.Operand, k uint, out string) []gs.Instruction {
	k %= 16
	if k == 0 {
		return []gs.Instruction{assign(in, out)}
	}
	hi, lo := out+"hi", out+"lo"
	return []gs.Instruction{
		binary(gs.LShift, in, gs.Lit(uint16(k)), hi),
		binary(gs.RShift, in, gs.Lit(uint16(16-k)), lo),
		binary(gs.Or, gs.Ref(hi), gs.Ref(lo), out),
	}
}

// Rotr returns a right rotation by k bits.
//
//	Inputs: in
//	Outputs: out
//	Function: out = in>>k | in<<(16-k)
//
func Rotr(in gs.Operand, k uint, out string) []gs.Instruction {
	return Rotl(in, 16-k%16, out)
}

// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"strconv"
	"strings"
)

// Mask is the value mask applied to every gate output. Wires are 16 bits
// wide.
//
const Mask = 0xFFFF

// Kind is the operator kind of an instruction.
//
type Kind int

// Instruction kinds.
//
const (
	Assign Kind = iota
	Not
	And
	Or
	LShift
	RShift
)

var kindNames = [...]string{
	Assign: "ASSIGN",
	Not:    "NOT",
	And:    "AND",
	Or:     "OR",
	LShift: "LSHIFT",
	RShift: "RSHIFT",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Binary returns true for kinds that take a left operand.
//
func (k Kind) Binary() bool {
	return k >= And && k <= RShift
}

// Eval applies the gate function to its inputs. l is ignored for unary
// kinds. The result is always masked to 16 bits.
//
func (k Kind) Eval(l, r uint16) uint16 {
	a, b := uint32(l), uint32(r)
	var v uint32
	switch k {
	case Assign:
		v = b
	case Not:
		v = Mask ^ b
	case And:
		v = a & b
	case Or:
		v = a | b
	case LShift:
		v = a << b
	case RShift:
		v = a >> b
	default:
		panic("invalid gate kind " + k.String())
	}
	return uint16(v & Mask)
}

// Operand is an instruction operand: either a literal value or a reference
// to a wire.
//
type Operand struct {
	Wire  string // empty for literals
	Value uint16
}

// Lit returns a literal operand.
//
func Lit(v uint16) Operand { return Operand{Value: v} }

// Ref returns an operand referencing the named wire.
//
func Ref(wire string) Operand { return Operand{Wire: wire} }

// IsLiteral returns true if o is a literal value.
//
func (o Operand) IsLiteral() bool { return o.Wire == "" }

func (o Operand) String() string {
	if o.IsLiteral() {
		return strconv.FormatUint(uint64(o.Value), 10)
	}
	return o.Wire
}

// An Instruction defines the value of its output wire.
//
// Left is only used by binary kinds (AND, OR, LSHIFT, RSHIFT). Right is the
// sole operand of ASSIGN and NOT.
//
type Instruction struct {
	Kind  Kind
	Left  Operand
	Right Operand
	Out   string
}

// Operands returns the instruction operands in evaluation order.
//
func (i Instruction) Operands() []Operand {
	if i.Kind.Binary() {
		return []Operand{i.Left, i.Right}
	}
	return []Operand{i.Right}
}

// String returns the instruction in its textual form. Parse accepts it back.
//
func (i Instruction) String() string {
	var b strings.Builder
	switch {
	case i.Kind == Assign:
	case i.Kind == Not:
		b.WriteString("NOT ")
	default:
		b.WriteString(i.Left.String())
		b.WriteByte(' ')
		b.WriteString(i.Kind.String())
		b.WriteByte(' ')
	}
	b.WriteString(i.Right.String())
	b.WriteString(" -> ")
	b.WriteString(i.Out)
	return b.String()
}

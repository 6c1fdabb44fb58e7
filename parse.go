// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/db47h/gatesim/internal/lex"
	"github.com/pkg/errors"
)

// Tokens
const (
	tokEOF lex.Type = lex.EOF
	tokRaw lex.Type = iota
	tokIdent
	tokInt
	tokArrow
)

func lexer(input string) lex.Interface {
	return lex.New(strings.NewReader(input), lexInit)
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == rune(lex.EOF):
		return lexEOF
	case unicode.IsSpace(r):
		l.AcceptWhile(unicode.IsSpace)
	case isLetter(r):
		return lexIdent
	case isDigit(r):
		return lexNumber
	case r == '-':
		if l.Next() == '>' {
			l.Emit(tokArrow, "->")
			break
		}
		l.Backup()
		fallthrough
	default:
		l.Emit(tokRaw, r)
		return lexEOF
	}
	return nil
}

func isLetter(r rune) bool { return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' }
func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// lexNumber emits the digits as a string. Range checks are left to the
// parser so that it can report them.
//
func lexNumber(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.WriteRune(l.Current())
	for r := l.Next(); isDigit(r); r = l.Next() {
		buf.WriteRune(r)
	}
	l.Backup()
	l.Emit(tokInt, buf.String())
	return nil
}

func lexIdent(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	buf.Grow(8)
	buf.WriteRune(l.Current())
	for r := l.Next(); isLetter(r); r = l.Next() {
		buf.WriteRune(r)
	}
	l.Backup()
	l.Emit(tokIdent, buf.String())
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}

var keywords = map[string]Kind{
	"NOT":    Not,
	"AND":    And,
	"OR":     Or,
	"LSHIFT": LShift,
	"RSHIFT": RShift,
}

// Parse parses a single instruction. The recognized forms are:
//
//	X -> out
//	NOT X -> out
//	X AND Y -> out
//	X OR Y -> out
//	X LSHIFT Y -> out
//	X RSHIFT Y -> out
//
// where X and Y are either 16 bits decimal literals or wire names. Wire names
// are made of ASCII letters. Gate keywords are reserved.
//
// The returned error, if any, has a *MalformedInstructionError cause.
//
func Parse(line string) (Instruction, error) {
	var ins Instruction
	var lhs []lex.Item

	l := lexer(line)
	i := l.Lex()
	for i.Type != tokArrow {
		switch i.Type {
		case tokEOF:
			return ins, malformed(line, int(i.Pos)+1, "expected '->'")
		case tokRaw:
			return ins, malformed(line, int(i.Pos)+1, "unexpected "+i.String())
		}
		lhs = append(lhs, i)
		i = l.Lex()
	}
	arrow := i

	var err error
	switch len(lhs) {
	case 1:
		ins.Kind = Assign
		ins.Right, err = operand(line, lhs[0])
	case 2:
		if k, ok := keywords[identValue(lhs[0])]; !ok || k != Not {
			return ins, malformed(line, int(lhs[0].Pos)+1, "expected NOT, got "+lhs[0].String())
		}
		ins.Kind = Not
		ins.Right, err = operand(line, lhs[1])
	case 3:
		k, ok := keywords[identValue(lhs[1])]
		if !ok || k == Not {
			return ins, malformed(line, int(lhs[1].Pos)+1, "expected binary gate, got "+lhs[1].String())
		}
		ins.Kind = k
		if ins.Left, err = operand(line, lhs[0]); err != nil {
			return ins, err
		}
		ins.Right, err = operand(line, lhs[2])
	case 0:
		return ins, malformed(line, int(arrow.Pos)+1, "missing input")
	default:
		return ins, malformed(line, int(lhs[3].Pos)+1, "too many inputs")
	}
	if err != nil {
		return ins, err
	}

	// output wire
	i = l.Lex()
	out := identValue(i)
	if out == "" {
		return ins, malformed(line, int(i.Pos)+1, "expected output wire name")
	}
	if _, ok := keywords[out]; ok {
		return ins, malformed(line, int(i.Pos)+1, "reserved output wire name "+i.String())
	}
	ins.Out = out
	if i = l.Lex(); i.Type != tokEOF {
		return ins, malformed(line, int(i.Pos)+1, "unexpected "+i.String()+" after output wire")
	}
	return ins, nil
}

func identValue(i lex.Item) string {
	if i.Type != tokIdent {
		return ""
	}
	return i.Value.(string)
}

func operand(line string, i lex.Item) (Operand, error) {
	switch i.Type {
	case tokInt:
		v, err := strconv.ParseUint(i.Value.(string), 10, 16)
		if err != nil {
			return Operand{}, malformed(line, int(i.Pos)+1, "literal "+i.String()+" out of range")
		}
		return Lit(uint16(v)), nil
	case tokIdent:
		name := i.Value.(string)
		if _, ok := keywords[name]; ok {
			return Operand{}, malformed(line, int(i.Pos)+1, "unexpected keyword "+name)
		}
		return Ref(name), nil
	}
	return Operand{}, malformed(line, int(i.Pos)+1, "expected wire name or literal, got "+i.String())
}

// isLiteral returns true if s is all digits.
//
func isLiteral(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// parseLiteral parses a literal wire name. It must fit in 16 bits.
//
func parseLiteral(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, malformed(s, 1, "literal out of range")
	}
	return uint16(v), nil
}

// ParseAll parses a list of instructions into a new set of definitions.
// Blank lines are ignored. The first malformed line aborts parsing; the
// returned error is annotated with the 1-based line number.
//
// If several instructions share the same output wire, the last one wins.
//
func ParseAll(lines []string) (Defs, error) {
	d := make(Defs, len(lines))
	for n, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ins, err := Parse(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n+1)
		}
		d.Define(ins)
	}
	return d, nil
}

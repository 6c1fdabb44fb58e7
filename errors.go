// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MalformedInstructionError is returned by the parser when an input line
// does not match any instruction shape.
//
type MalformedInstructionError struct {
	Line string
	Col  int // 1-based
	Msg  string
}

func (e *MalformedInstructionError) Error() string {
	return "in " + strconv.Quote(e.Line) + " at pos " + strconv.Itoa(e.Col) + ": " + e.Msg
}

// UnknownWireError is returned when a wire has no defining instruction.
//
type UnknownWireError struct {
	Wire string
}

func (e *UnknownWireError) Error() string {
	return "unknown wire " + strconv.Quote(e.Wire)
}

// CycleError is returned by Sort when a wire transitively depends on itself.
// Path starts and ends with the same wire.
//
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "dependency cycle: " + strings.Join(e.Path, " -> ")
}

func malformed(line string, col int, msg string) error {
	return errors.WithStack(&MalformedInstructionError{Line: line, Col: col, Msg: msg})
}

func unknownWire(wire string) error {
	return errors.WithStack(&UnknownWireError{Wire: wire})
}

// IsMalformed returns true if the cause of err is a MalformedInstructionError.
//
func IsMalformed(err error) bool {
	_, ok := errors.Cause(err).(*MalformedInstructionError)
	return ok
}

// IsUnknownWire returns true if the cause of err is an UnknownWireError.
//
func IsUnknownWire(err error) bool {
	_, ok := errors.Cause(err).(*UnknownWireError)
	return ok
}

// IsCycle returns true if the cause of err is a CycleError.
//
func IsCycle(err error) bool {
	_, ok := errors.Cause(err).(*CycleError)
	return ok
}

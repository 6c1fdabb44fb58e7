// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	unvisited = iota
	visiting
	visited
)

type frame struct {
	wire string
	ops  []Operand
	next int
}

// Sort returns the wires reachable from targets in dependency order: every
// wire comes after the wires it depends on. If no target is given, all wires
// in d are sorted.
//
// Unlike Resolver.Resolve, Sort does not recurse and reports dependency
// cycles with a *CycleError cause.
//
func Sort(d Defs, targets ...string) ([]string, error) {
	if len(targets) == 0 {
		targets = d.Wires()
	}
	state := make(map[string]int, len(d))
	order := make([]string, 0, len(d))
	var stack []frame

	push := func(w string) error {
		ins, ok := d[w]
		if !ok {
			return unknownWire(w)
		}
		state[w] = visiting
		stack = append(stack, frame{wire: w, ops: ins.Operands()})
		return nil
	}

	for _, t := range targets {
		if isLiteral(t) || state[t] == visited {
			continue
		}
		if err := push(t); err != nil {
			return nil, err
		}
		for len(stack) > 0 {
			top := len(stack) - 1
			f := &stack[top]
			if f.next == len(f.ops) {
				state[f.wire] = visited
				order = append(order, f.wire)
				stack = stack[:top]
				continue
			}
			o := f.ops[f.next]
			f.next++
			if o.IsLiteral() {
				continue
			}
			switch state[o.Wire] {
			case visited:
			case visiting:
				return nil, errors.WithStack(&CycleError{Path: cyclePath(stack, o.Wire)})
			default:
				parent := f.wire
				if err := push(o.Wire); err != nil {
					return nil, errors.Wrapf(err, "wire %s", parent)
				}
			}
		}
	}
	return order, nil
}

func cyclePath(stack []frame, wire string) []string {
	i := len(stack) - 1
	for i > 0 && stack[i].wire != wire {
		i--
	}
	p := make([]string, 0, len(stack)-i+1)
	for ; i < len(stack); i++ {
		p = append(p, stack[i].wire)
	}
	return append(p, wire)
}

// EvalAll evaluates the wires reachable from targets (all wires if none
// given) in dependency order and returns their values.
//
func EvalAll(d Defs, targets ...string) (map[string]uint16, error) {
	order, err := Sort(d, targets...)
	if err != nil {
		return nil, err
	}
	vals := make(map[string]uint16, len(order))
	value := func(o Operand) uint16 {
		if o.IsLiteral() {
			return o.Value
		}
		return vals[o.Wire]
	}
	for _, w := range order {
		ins := d[w]
		var l uint16
		if ins.Kind.Binary() {
			l = value(ins.Left)
		}
		vals[w] = ins.Kind.Eval(l, value(ins.Right))
	}
	log.Debugf("evaluated %d wires", len(vals))
	return vals, nil
}

// Errors is a list of errors.
//
type Errors []error

func (e Errors) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Check validates a netlist. It reports every reference to an undefined
// wire, then the first dependency cycle, if any. The returned error is nil
// or of type Errors.
//
func Check(d Defs) error {
	var errs Errors
	for _, w := range d.Wires() {
		for _, o := range d[w].Operands() {
			if o.IsLiteral() {
				continue
			}
			if _, ok := d[o.Wire]; !ok {
				errs = append(errs, errors.Wrapf(unknownWire(o.Wire), "wire %s", w))
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	if _, err := Sort(d); err != nil {
		return Errors{err}
	}
	return nil
}

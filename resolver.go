// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Resolver computes wire values on demand and memoizes them.
//
// A Resolver is not safe for concurrent use.
//
type Resolver struct {
	n     Netlist
	cache map[string]uint16
}

// NewResolver returns a new Resolver for the given netlist. The resolver
// takes ownership of n: changes to n must go through Replace.
//
func NewResolver(n Netlist) *Resolver {
	return &Resolver{n: n, cache: make(map[string]uint16)}
}

// New returns a new Resolver over a Defs built from the given instructions.
//
func New(ins ...Instruction) *Resolver {
	return NewResolver(NewDefs(ins...))
}

// Resolve returns the value of the target wire. If target is a decimal
// literal, its value is returned as is.
//
// Wire values are computed recursively and cached. Dependency cycles are
// not detected; use Sort or Check to validate a netlist beforehand.
//
func (r *Resolver) Resolve(target string) (uint16, error) {
	if isLiteral(target) {
		return parseLiteral(target)
	}
	if v, ok := r.cache[target]; ok {
		return v, nil
	}
	ins, ok := r.n.Lookup(target)
	if !ok {
		return 0, unknownWire(target)
	}

	var lv, rv uint16
	var err error
	if ins.Kind.Binary() {
		if lv, err = r.operand(ins.Left); err != nil {
			return 0, errors.Wrapf(err, "wire %s", target)
		}
	}
	if rv, err = r.operand(ins.Right); err != nil {
		return 0, errors.Wrapf(err, "wire %s", target)
	}

	v := ins.Kind.Eval(lv, rv)
	r.cache[target] = v
	return v, nil
}

func (r *Resolver) operand(o Operand) (uint16, error) {
	if o.IsLiteral() {
		return o.Value, nil
	}
	return r.Resolve(o.Wire)
}

// Replace replaces the instruction driving ins.Out and clears the value
// cache, since any cached value may depend on the replaced wire.
//
func (r *Resolver) Replace(ins Instruction) {
	log.Debugf("replace %s: %v", ins.Out, ins)
	r.n.Define(ins)
	r.Reset()
}

// Reset clears the value cache.
//
func (r *Resolver) Reset() {
	log.Debugf("reset: %d cached wire values dropped", len(r.cache))
	r.cache = make(map[string]uint16)
}

// Cached returns the cached value of a wire, if any.
//
func (r *Resolver) Cached(wire string) (uint16, bool) {
	v, ok := r.cache[wire]
	return v, ok
}

// Len returns the number of cached wire values.
//
func (r *Resolver) Len() int { return len(r.cache) }

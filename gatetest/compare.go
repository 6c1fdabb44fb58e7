// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatetest provides utility functions for testing circuits.
//
package gatetest

import (
	"math/rand"
	"testing"
	"time"

	gs "github.com/db47h/gatesim"
)

// WireName returns a unique lowercase wire name for n >= 0.
//
func WireName(n int) string {
	b := make([]byte, 0, 4)
	for {
		b = append(b, byte('a'+n%26))
		n /= 26
		if n == 0 {
			break
		}
	}
	return string(b)
}

func randOperand(rnd *rand.Rand, i int) gs.Operand {
	if i == 0 || rnd.Intn(4) == 0 {
		return gs.Lit(uint16(rnd.Intn(1 << 16)))
	}
	return gs.Ref(WireName(rnd.Intn(i)))
}

// RandomDefs returns a random netlist of n wires. The netlist has no cycles:
// the wire WireName(i) only depends on literals and wires WireName(j) with
// j < i. Shift amounts are literals in [0, 15].
//
func RandomDefs(rnd *rand.Rand, n int) gs.Defs {
	d := make(gs.Defs, n)
	for i := 0; i < n; i++ {
		ins := gs.Instruction{
			Kind: gs.Kind(rnd.Intn(int(gs.RShift) + 1)),
			Out:  WireName(i),
		}
		switch ins.Kind {
		case gs.LShift, gs.RShift:
			ins.Left = randOperand(rnd, i)
			ins.Right = gs.Lit(uint16(rnd.Intn(16)))
		case gs.And, gs.Or:
			ins.Left = randOperand(rnd, i)
			fallthrough
		default:
			ins.Right = randOperand(rnd, i)
		}
		d.Define(ins)
	}
	return d
}

// CompareEvaluators checks that the recursive Resolver and EvalAll agree on
// the values of the given wires (all wires in d if none given).
//
func CompareEvaluators(t testing.TB, d gs.Defs, wires ...string) {
	t.Helper()

	if len(wires) == 0 {
		wires = d.Wires()
	}

	start := time.Now()

	vals, err := gs.EvalAll(d, wires...)
	if err != nil {
		t.Fatal(err)
	}
	r := gs.NewResolver(d)
	// last wires first so that the resolver walks deep dependency chains
	// with a cold cache.
	for i := len(wires) - 1; i >= 0; i-- {
		w := wires[i]
		v, err := r.Resolve(w)
		if err != nil {
			t.Fatal(err)
		}
		ex, ok := vals[w]
		if !ok {
			// literal
			continue
		}
		if v != ex {
			ins, _ := d.Lookup(w)
			t.Fatalf("\n%v\nExpected %s = %d\nGot %d", ins, w, ex, v)
		}
	}

	t.Logf("%d wires compared in %v", len(wires), time.Since(start))
}

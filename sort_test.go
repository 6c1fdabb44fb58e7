// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim_test

import (
	"math/rand"
	"reflect"
	"testing"

	gs "github.com/db47h/gatesim"
	"github.com/db47h/gatesim/gatetest"
	"github.com/pkg/errors"
)

func TestSort(t *testing.T) {
	d := mustParse(t, sample...)
	order, err := gs.Sort(d)
	if err != nil {
		t.Fatal(err)
	}
	if len(order) != len(d) {
		t.Fatalf("expected %d wires, got %d", len(d), len(order))
	}
	pos := make(map[string]int, len(order))
	for i, w := range order {
		pos[w] = i
	}
	for w, ins := range d {
		for _, o := range ins.Operands() {
			if !o.IsLiteral() && pos[o.Wire] >= pos[w] {
				t.Errorf("%s sorted before its dependency %s", w, o.Wire)
			}
		}
	}

	// targets limit the walk
	order, err = gs.Sort(d, "f", "42")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(order, []string{"x", "f"}) {
		t.Fatalf("expected [x f], got %v", order)
	}
}

func TestSort_cycle(t *testing.T) {
	d := mustParse(t,
		"1 -> x",
		"x AND c -> a",
		"a -> b",
		"b -> c",
	)
	_, err := gs.Sort(d, "a")
	if !gs.IsCycle(err) {
		t.Fatalf("expected cycle error, got %v", err)
	}
	p := errors.Cause(err).(*gs.CycleError).Path
	if !reflect.DeepEqual(p, []string{"a", "c", "b", "a"}) {
		t.Fatalf("unexpected cycle path %v", p)
	}

	d = mustParse(t, "a AND a -> a")
	_, err = gs.EvalAll(d)
	if !gs.IsCycle(err) {
		t.Fatalf("expected cycle error, got %v", err)
	}
}

func TestSort_unknownWire(t *testing.T) {
	d := mustParse(t, "x OR q -> y", "1 -> x")
	_, err := gs.Sort(d)
	if !gs.IsUnknownWire(err) {
		t.Fatalf("expected unknown wire error, got %v", err)
	}
	if err.Error() != `wire y: unknown wire "q"` {
		t.Fatalf("unexpected error message %q", err)
	}
	if _, err = gs.Sort(d, "nope"); !gs.IsUnknownWire(err) {
		t.Fatalf("expected unknown wire error, got %v", err)
	}
}

func TestEvalAll(t *testing.T) {
	vals, err := gs.EvalAll(mustParse(t, sample...))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, sampleValues) {
		t.Fatalf("expected %v, got %v", sampleValues, vals)
	}
}

func TestEvalAll_random(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		d := gatetest.RandomDefs(rnd, 200)
		gatetest.CompareEvaluators(t, d)
	}
}

func TestCheck(t *testing.T) {
	if err := gs.Check(mustParse(t, sample...)); err != nil {
		t.Fatal(err)
	}

	err := gs.Check(mustParse(t, "q -> a", "r AND a -> b"))
	errs, ok := err.(gs.Errors)
	if !ok {
		t.Fatalf("expected Errors, got %T", err)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	for _, e := range errs {
		if !gs.IsUnknownWire(e) {
			t.Errorf("expected unknown wire error, got %v", e)
		}
	}
	if err.Error() != `wire a: unknown wire "q"; wire b: unknown wire "r"` {
		t.Fatalf("unexpected error message %q", err)
	}

	err = gs.Check(mustParse(t, "b -> a", "a -> b"))
	if errs, ok := err.(gs.Errors); !ok || len(errs) != 1 || !gs.IsCycle(errs[0]) {
		t.Fatalf("expected a single cycle error, got %v", err)
	}
}

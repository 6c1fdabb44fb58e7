// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Bind resolves wires into the fields of the struct pointed to by v.
// Fields are identified by field tags:
//
//	type probe struct {
//		A   uint16 `wire:""`       // wire "a"
//		Out uint16 `wire:"result"` // wire "result"
//		n   int                    // ignored
//	}
//
// An empty tag value uses the field name in lowercase. Tagged fields must be
// of type uint16.
//
// Bind stops at the first resolution error.
//
func Bind(r *Resolver, v interface{}) error {
	pv := reflect.ValueOf(v)
	if pv.Kind() != reflect.Ptr || pv.Elem().Kind() != reflect.Struct {
		panic(errors.Errorf("unsupported type %T, need a pointer to a struct", v))
	}
	e := pv.Elem()
	typ := e.Type()
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("wire")
		if !ok {
			continue
		}
		if f.Type.Kind() != reflect.Uint16 {
			panic(errors.Errorf("unsupported type %q for field %q in %q", f.Type, f.Name, typ.Name()))
		}
		wire := strings.TrimSpace(tag)
		if wire == "" {
			wire = strings.ToLower(f.Name)
		}
		val, err := r.Resolve(wire)
		if err != nil {
			return errors.Wrapf(err, "field %s", f.Name)
		}
		e.Field(i).SetUint(uint64(val))
	}
	return nil
}

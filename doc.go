/*
Package gatesim computes the signals carried by the wires of a circuit made of
16 bits bitwise gates.

A circuit is described by a list of instructions, one per wire, in any order:

	123 -> x
	456 -> y
	x AND y -> d
	x OR y -> e
	x LSHIFT 2 -> f
	y RSHIFT 2 -> g
	NOT x -> h
	NOT y -> i

Parse or ParseAll turn text into Instructions. A Resolver then evaluates
wires on demand:

	defs, err := gatesim.ParseAll(lines)
	if err != nil {
		// handle error
	}
	r := gatesim.NewResolver(defs)
	d, err := r.Resolve("d") // 72

Values are cached between calls. Replacing the instruction driving a wire
with Resolver.Replace clears the cache.

Sort and EvalAll provide a non-recursive alternative that also detects
dependency cycles, and Check validates a whole netlist.

*/
package gatesim

package gatelib_test

import (
	"testing/quick"

	gs "github.com/db47h/gatesim"
	gl "github.com/db47h/gatesim/gatelib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// eval resolves out in a circuit made of parts.
func eval(out string, parts ...[]gs.Instruction) uint16 {
	d := gl.Chip(parts...)
	Expect(gs.Check(d)).To(Succeed())
	v, err := gs.NewResolver(d).Resolve(out)
	Expect(err).NotTo(HaveOccurred())
	return v
}

// check runs f against random inputs.
func check(f interface{}) {
	Expect(quick.Check(f, nil)).To(Succeed())
}

var _ = Describe("Gates", func() {
	Describe("Const", func() {
		It("should drive its value", func() {
			Expect(eval("out", gl.Const(0xBEEF, "out"))).To(Equal(uint16(0xBEEF)))
		})
	})

	Describe("two input gates", func() {
		ctrl := []struct {
			name string
			gate func(a, b gs.Operand, out string) []gs.Instruction
			fn   func(a, b uint16) uint16
		}{
			{"NAND", gl.Nand, func(a, b uint16) uint16 { return ^(a & b) }},
			{"NOR", gl.Nor, func(a, b uint16) uint16 { return ^(a | b) }},
			{"XOR", gl.Xor, func(a, b uint16) uint16 { return a ^ b }},
			{"XNOR", gl.Xnor, func(a, b uint16) uint16 { return ^(a ^ b) }},
		}
		for _, g := range ctrl {
			g := g
			It(g.name+" should match the native operator on literals", func() {
				check(func(a, b uint16) bool {
					return eval("out", g.gate(gs.Lit(a), gs.Lit(b), "out")) == g.fn(a, b)
				})
			})
			It(g.name+" should match the native operator on wires", func() {
				check(func(a, b uint16) bool {
					return eval("out",
						gl.Const(a, "a"),
						gl.Const(b, "b"),
						g.gate(gs.Ref("a"), gs.Ref("b"), "out")) == g.fn(a, b)
				})
			})
		}
	})

	Describe("Mask", func() {
		It("should clear bits", func() {
			check(func(a, m uint16) bool {
				return eval("out", gl.Mask(gs.Lit(a), m, "out")) == a&m
			})
		})
	})

	Describe("Rotations", func() {
		It("should rotate left", func() {
			check(func(a uint16, k uint8) bool {
				r := uint(k) % 16
				return eval("out", gl.Rotl(gs.Lit(a), uint(k), "out")) == a<<r|a>>(16-r)
			})
		})

		It("should rotate right", func() {
			check(func(a uint16, k uint8) bool {
				r := uint(k) % 16
				return eval("out", gl.Rotr(gs.Lit(a), uint(k), "out")) == a>>r|a<<(16-r)
			})
		})

		It("should undo each other", func() {
			check(func(a uint16, k uint8) bool {
				return eval("out",
					gl.Const(a, "in"),
					gl.Rotl(gs.Ref("in"), uint(k), "l"),
					gl.Rotr(gs.Ref("l"), uint(k), "out")) == a
			})
		})

		It("should not shift by 16", func() {
			ins := gl.Rotl(gs.Lit(1), 16, "out")
			Expect(ins).To(HaveLen(1))
			Expect(ins[0].Kind).To(Equal(gs.Assign))
		})
	})
})

var _ = Describe("Arithmetic", func() {
	It("should add with wraparound", func() {
		check(func(a, b uint16) bool {
			return eval("sum", gl.Add(gs.Lit(a), gs.Lit(b), "sum")) == a+b
		})
		Expect(eval("sum", gl.Add(gs.Lit(0xFFFF), gs.Lit(1), "sum"))).To(Equal(uint16(0)))
	})

	It("should increment", func() {
		Expect(eval("inc",
			gl.Const(41, "x"),
			gl.Inc(gs.Ref("x"), "inc"))).To(Equal(uint16(42)))
	})

	It("should only use letters in wire names", func() {
		for _, i := range gl.Add(gs.Ref("a"), gs.Ref("b"), "sum") {
			back, err := gs.Parse(i.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(back).To(Equal(i))
		}
	})
})

var _ = Describe("Multiplexers", func() {
	It("should select a or b", func() {
		check(func(a, b, sel uint16) bool {
			exp := a
			if sel&1 != 0 {
				exp = b
			}
			return eval("out", gl.Mux(gs.Lit(a), gs.Lit(b), gs.Lit(sel), "out")) == exp
		})
	})

	It("should route its input", func() {
		d := gl.Chip(
			gl.Const(0x1234, "in"),
			gl.Const(1, "sel"),
			gl.DMux(gs.Ref("in"), gs.Ref("sel"), "x", "y"),
		)
		vals, err := gs.EvalAll(d, "x", "y")
		Expect(err).NotTo(HaveOccurred())
		Expect(vals["x"]).To(Equal(uint16(0)))
		Expect(vals["y"]).To(Equal(uint16(0x1234)))
	})
})

// Package transformers rewrites a circuit so that it can be handled by a proving backend with a
// bounded expression width.
package transformers

import (
	"github.com/PolyhedraZK/acvm-compiler/acir"
)

// Transform returns an equivalent circuit where every AssertZero fits width, and its position map
// (new opcode index -> index in c). An expression too wide is split into several opcodes, all of
// them pointing to the opcode they were split from.
//
// Assert messages are copied untouched, they still refer to the opcodes of c.
func Transform(c *acir.Circuit, width acir.ExpressionWidth) (*acir.Circuit, acir.PositionMap) {
	if !width.Bounded {
		opcodes := make([]acir.Opcode, len(c.Opcodes))
		for i := range c.Opcodes {
			opcodes[i] = c.Opcodes[i].Clone()
		}
		res := c.WithOpcodes(opcodes)
		res.ExpressionWidth = width
		return res, acir.IdentityPositions(len(opcodes))
	}
	if err := width.Validate(); err != nil {
		panic(err)
	}

	res := c.WithOpcodes(nil)
	res.ExpressionWidth = width
	t := newCSatTransformer(res, width.Width)

	opcodes := make([]acir.Opcode, 0, len(c.Opcodes))
	positions := make(acir.PositionMap, 0, len(c.Opcodes))
	for i := range c.Opcodes {
		op := c.Opcodes[i].Clone()
		if op.Type != acir.OAssertZero {
			opcodes = append(opcodes, op)
			positions = append(positions, i)
			t.markSolvable(op.OutputWitnesses())
			continue
		}
		for _, e := range t.split(op.Expr) {
			opcodes = append(opcodes, acir.NewAssertZero(e))
			positions = append(positions, i)
		}
		t.markSolvable(op.Expr.Witnesses())
	}
	res.Opcodes = opcodes
	return res, positions
}

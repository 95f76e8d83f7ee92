package optimizers

import (
	"github.com/PolyhedraZK/acvm-compiler/acir"
)

// optimizeGeneral merges the terms of every expression and removes the assertions left empty,
// which hold for any witness
func optimizeGeneral(c *acir.Circuit, opcodes []acir.Opcode) ([]acir.Opcode, acir.PositionMap) {
	return retain(opcodes, func(_ int, op *acir.Opcode) bool {
		switch op.Type {
		case acir.OAssertZero:
			op.Expr = op.Expr.Simplify(c.Field)
			return len(op.Expr) != 0
		case acir.OBrilligCall:
			for i, e := range op.BrilligInputs {
				op.BrilligInputs[i] = e.Simplify(c.Field)
			}
		}
		return true
	})
}

package optimizers

import (
	"github.com/PolyhedraZK/acvm-compiler/acir"
	"github.com/PolyhedraZK/acvm-compiler/expr"
)

// optimizeDuplicateExpressions removes an AssertZero equal to an earlier one. Expressions must
// be simplified, so that equal constraints are equal term by term.
func optimizeDuplicateExpressions(_ *acir.Circuit, opcodes []acir.Opcode) ([]acir.Opcode, acir.PositionMap) {
	seen := make(expr.Map)
	return retain(opcodes, func(i int, op *acir.Opcode) bool {
		if op.Type != acir.OAssertZero {
			return true
		}
		return seen.Add(op.Expr, i) == i
	})
}

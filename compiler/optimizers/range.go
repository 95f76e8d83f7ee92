package optimizers

import (
	"github.com/PolyhedraZK/acvm-compiler/acir"
)

func isRange(op *acir.Opcode) bool {
	return op.Type == acir.OBlackBoxFuncCall && op.Func == acir.BRange
}

func isLogicOp(op *acir.Opcode) bool {
	return op.Type == acir.OBlackBoxFuncCall && (op.Func == acir.BAnd || op.Func == acir.BXor)
}

// optimizeRedundantRange keeps a single range constraint per witness, the first one with the
// smallest bit size. A range implied by a logic operation on the witness is removed as well,
// since AND/XOR constrain their inputs to their bit size.
func optimizeRedundantRange(_ *acir.Circuit, opcodes []acir.Opcode) ([]acir.Opcode, acir.PositionMap) {
	implied := make(map[int]int)
	minBits := make(map[int]int)
	for i := range opcodes {
		op := &opcodes[i]
		if isLogicOp(op) {
			for _, w := range op.Inputs {
				if cur, ok := implied[w]; !ok || op.NumBits < cur {
					implied[w] = op.NumBits
				}
			}
		} else if isRange(op) {
			w := op.Inputs[0]
			if cur, ok := minBits[w]; !ok || op.NumBits < cur {
				minBits[w] = op.NumBits
			}
		}
	}

	kept := make(map[int]bool)
	return retain(opcodes, func(_ int, op *acir.Opcode) bool {
		if !isRange(op) {
			return true
		}
		w := op.Inputs[0]
		if bits, ok := implied[w]; ok && op.NumBits >= bits {
			return false
		}
		if op.NumBits != minBits[w] || kept[w] {
			return false
		}
		kept[w] = true
		return true
	})
}

package optimizers

import (
	"github.com/PolyhedraZK/acvm-compiler/acir"
)

// optimizeUnusedMemory removes the initialization of memory blocks that are never accessed
func optimizeUnusedMemory(_ *acir.Circuit, opcodes []acir.Opcode) ([]acir.Opcode, acir.PositionMap) {
	used := make(map[uint32]bool)
	for i := range opcodes {
		if opcodes[i].Type == acir.OMemoryOp {
			used[opcodes[i].BlockId] = true
		}
	}
	return retain(opcodes, func(_ int, op *acir.Opcode) bool {
		return op.Type != acir.OMemoryInit || used[op.BlockId]
	})
}

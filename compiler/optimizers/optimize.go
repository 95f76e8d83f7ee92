// Package optimizers removes redundant opcodes from a circuit.
//
// Every sub-pass returns the opcodes it kept along with a position map pointing back to its
// input, and Optimize composes them into a single map.
package optimizers

import (
	"github.com/PolyhedraZK/acvm-compiler/acir"
)

type pass func(c *acir.Circuit, opcodes []acir.Opcode) ([]acir.Opcode, acir.PositionMap)

var passes = []pass{
	optimizeGeneral,
	optimizeDuplicateExpressions,
	optimizeRedundantRange,
	optimizeUnusedMemory,
}

// Optimize returns an equivalent circuit and its position map (new opcode index -> index in c).
// Assert messages are copied untouched, they still refer to the opcodes of c.
func Optimize(c *acir.Circuit) (*acir.Circuit, acir.PositionMap) {
	opcodes := make([]acir.Opcode, len(c.Opcodes))
	for i := range c.Opcodes {
		opcodes[i] = c.Opcodes[i].Clone()
	}
	positions := acir.IdentityPositions(len(opcodes))
	for _, p := range passes {
		var newPositions acir.PositionMap
		opcodes, newPositions = p(c, opcodes)
		positions = positions.Compose(newPositions)
	}
	return c.WithOpcodes(opcodes), positions
}

// retain keeps the opcodes for which keep returns true
func retain(opcodes []acir.Opcode, keep func(i int, op *acir.Opcode) bool) ([]acir.Opcode, acir.PositionMap) {
	res := make([]acir.Opcode, 0, len(opcodes))
	positions := make(acir.PositionMap, 0, len(opcodes))
	for i := range opcodes {
		if keep(i, &opcodes[i]) {
			res = append(res, opcodes[i])
			positions = append(positions, i)
		}
	}
	return res, positions
}

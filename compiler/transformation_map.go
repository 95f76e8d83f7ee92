package compiler

import (
	"iter"

	"github.com/PolyhedraZK/acvm-compiler/acir"
)

// TransformationMap lets consumers of the compiler relocate metadata they hold about the opcodes
// of a circuit to the opcodes generated by the compilation.
type TransformationMap struct {
	// index is the new opcode index, value is the old opcode index it comes from
	acirOpcodePositions acir.PositionMap
}

// NewTransformationMap takes a copy of positions, the map is immutable afterwards
func NewTransformationMap(positions acir.PositionMap) *TransformationMap {
	p := make(acir.PositionMap, len(positions))
	copy(p, positions)
	return &TransformationMap{acirOpcodePositions: p}
}

// NewLocations yields the locations derived from old, by ascending new opcode index.
// Brillig locations keep their brillig index. The sequence is empty when the opcode was removed.
func (m *TransformationMap) NewLocations(old acir.OpcodeLocation) iter.Seq[acir.OpcodeLocation] {
	return func(yield func(acir.OpcodeLocation) bool) {
		for newIndex, oldIndex := range m.acirOpcodePositions {
			if oldIndex != old.AcirIndex {
				continue
			}
			if !yield(old.WithAcirIndex(newIndex)) {
				return
			}
		}
	}
}

// Len returns the number of opcodes of the transformed circuit
func (m *TransformationMap) Len() int {
	return len(m.acirOpcodePositions)
}

// OldIndex returns the index, in the input circuit, of the opcode newIndex comes from
func (m *TransformationMap) OldIndex(newIndex int) int {
	return m.acirOpcodePositions[newIndex]
}

func transformAssertMessages(messages []acir.AssertMessage, m *TransformationMap) []acir.AssertMessage {
	res := make([]acir.AssertMessage, 0, len(messages))
	for _, msg := range messages {
		for loc := range m.NewLocations(msg.Location) {
			res = append(res, acir.AssertMessage{Location: loc, Message: msg.Message})
		}
	}
	return res
}

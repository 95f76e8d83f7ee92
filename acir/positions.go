package acir

import "fmt"

// PositionMap is produced by a pass rewriting the opcodes of a circuit.
// Entry i is the index, in the circuit before the pass, of the opcode new opcode i comes from.
// Several new opcodes may come from the same old one, and an old opcode may have no descendant.
type PositionMap []int

func IdentityPositions(n int) PositionMap {
	res := make(PositionMap, n)
	for i := range res {
		res[i] = i
	}
	return res
}

// Compose chains p (mid -> old) with next (new -> mid) into a map new -> old
func (p PositionMap) Compose(next PositionMap) PositionMap {
	res := make(PositionMap, len(next))
	for i, mid := range next {
		if mid < 0 || mid >= len(p) {
			panic(fmt.Sprintf("position map entry %d points to opcode %d, but the previous stage has %d opcodes", i, mid, len(p)))
		}
		res[i] = p[mid]
	}
	return res
}

// Check panics if p references an opcode outside of a circuit with nbOld opcodes
func (p PositionMap) Check(nbOld int) {
	for i, old := range p {
		if old < 0 || old >= nbOld {
			panic(fmt.Sprintf("position map entry %d points to opcode %d, but the previous stage has %d opcodes", i, old, nbOld))
		}
	}
}

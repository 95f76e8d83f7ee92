// Package acvm wraps the most commonly used compiler APIs and provides an entry point for
// compilation and solving of ACIR circuits.
package acvm

import (
	"errors"

	"github.com/PolyhedraZK/acvm-compiler/acir"
	"github.com/PolyhedraZK/acvm-compiler/compiler"
	"github.com/PolyhedraZK/acvm-compiler/debug"
	"github.com/PolyhedraZK/acvm-compiler/solver"
)

// GetCircuit returns the compiled circuit
func (r *CompileResult) GetCircuit() *acir.Circuit {
	return r.circuit
}

// GetDebugInfo returns the debug info relocated to the compiled circuit, nil if the program had none
func (r *CompileResult) GetDebugInfo() *debug.Info {
	return r.debug
}

// GetTransformationMap returns the map from the opcodes of the input circuit to the compiled ones
func (r *CompileResult) GetTransformationMap() *compiler.TransformationMap {
	return r.tm
}

// Solve computes the witness of the compiled circuit
func (r *CompileResult) Solve(initial solver.Witness) (solver.Witness, error) {
	return solver.Solve(r.circuit, initial)
}

// SourceLocations returns the source call stack of the opcode that made err happen, if any
func (r *CompileResult) SourceLocations(err error) []debug.Location {
	if r.debug == nil {
		return nil
	}
	var unsat *solver.UnsatisfiedConstraintError
	if errors.As(err, &unsat) {
		if src := r.debug.OpcodeLocation(unsat.Location); src != nil {
			return src
		}
		// brillig instructions without their own entry fall back to the call
		return r.debug.OpcodeLocation(acir.NewAcirLocation(unsat.Location.AcirIndex))
	}
	var notSolvable *solver.OpcodeNotSolvableError
	if errors.As(err, &notSolvable) {
		return r.debug.OpcodeLocation(notSolvable.Location)
	}
	return nil
}

// Serialize encodes the compiled circuit
func (r *CompileResult) Serialize() []byte {
	return acir.Serialize(r.circuit)
}

// Package solver computes the witnesses of a circuit by solving its opcodes in order.
//
// It is a reference implementation used to check compiled circuits, it does not prove anything.
package solver

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/PolyhedraZK/acvm-compiler/acir"
	"github.com/PolyhedraZK/acvm-compiler/brillig"
	"github.com/PolyhedraZK/acvm-compiler/expr"
	"github.com/PolyhedraZK/acvm-compiler/field"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/logger"
)

// Witness maps witness indices to their values
type Witness map[int]constraint.Element

type Solver struct {
	circuit *acir.Circuit
	field   field.Field
	witness Witness
	memory  map[uint32][]constraint.Element
}

// NewSolver copies initial, which must hold a value for every parameter of c
func NewSolver(c *acir.Circuit, initial Witness) *Solver {
	s := &Solver{
		circuit: c,
		field:   c.Field,
		witness: make(Witness, c.CurrentWitnessIndex),
		memory:  make(map[uint32][]constraint.Element),
	}
	for w, v := range initial {
		s.witness[w] = v
	}
	return s
}

// Solve returns the full witness of c, or the first opcode that failed
func Solve(c *acir.Circuit, initial Witness) (Witness, error) {
	s := NewSolver(c, initial)
	if err := s.Run(); err != nil {
		return nil, err
	}
	return s.Witness(), nil
}

func (s *Solver) Witness() Witness {
	return s.witness
}

func (s *Solver) Run() error {
	for _, w := range s.circuit.InputWitnesses() {
		if _, ok := s.witness[w]; !ok {
			return fmt.Errorf("witness %d: %w", w, ErrMissingWitness)
		}
	}
	for i := range s.circuit.Opcodes {
		if err := s.solveOpcode(i, &s.circuit.Opcodes[i]); err != nil {
			return err
		}
	}
	log := logger.Logger()
	log.Debug().
		Int("nbOpcodes", len(s.circuit.Opcodes)).
		Int("nbWitnesses", len(s.witness)).
		Msg("solved circuit")
	return nil
}

func (s *Solver) value(w int) (constraint.Element, bool) {
	if w == 0 {
		return s.field.One(), true
	}
	v, ok := s.witness[w]
	return v, ok
}

func (s *Solver) unsatisfied(loc acir.OpcodeLocation, reason string) error {
	msg, _ := s.circuit.GetAssertMessage(loc)
	return &UnsatisfiedConstraintError{Location: loc, Message: msg, Reason: reason}
}

func (s *Solver) notSolvable(loc acir.OpcodeLocation, reason string) error {
	return &OpcodeNotSolvableError{Location: loc, Reason: reason}
}

// assign sets w, an already known value must agree
func (s *Solver) assign(loc acir.OpcodeLocation, w int, v constraint.Element) error {
	if old, ok := s.witness[w]; ok {
		if !field.Equal(old, v) {
			return s.unsatisfied(loc, fmt.Sprintf("witness %d is assigned two different values", w))
		}
		return nil
	}
	s.witness[w] = v
	return nil
}

func (s *Solver) evaluate(e expr.Expression) (constraint.Element, bool) {
	f := s.field
	res := constraint.Element{}
	for _, term := range e {
		v0, ok0 := s.value(term.VID0)
		v1, ok1 := s.value(term.VID1)
		if !ok0 || !ok1 {
			return res, false
		}
		res = f.Add(res, f.Mul(f.Mul(v0, v1), term.Coeff))
	}
	return res, true
}

func (s *Solver) solveOpcode(i int, op *acir.Opcode) error {
	loc := acir.NewAcirLocation(i)
	switch op.Type {
	case acir.OAssertZero:
		return s.solveAssertZero(loc, op.Expr)
	case acir.OBlackBoxFuncCall:
		return s.solveBlackBox(loc, op)
	case acir.OMemoryInit:
		return s.solveMemoryInit(loc, op)
	case acir.OMemoryOp:
		return s.solveMemoryOp(loc, op)
	case acir.OBrilligCall:
		return s.solveBrillig(loc, op)
	}
	return s.notSolvable(loc, fmt.Sprintf("unknown opcode type %d", op.Type))
}

// solveAssertZero checks e when every witness is known, or solves its single unknown when the
// unknown only appears in degree one
func (s *Solver) solveAssertZero(loc acir.OpcodeLocation, e expr.Expression) error {
	f := s.field
	sum := constraint.Element{}
	coeff := constraint.Element{}
	unknown := 0
	addUnknown := func(w int, c constraint.Element) error {
		if unknown != 0 && unknown != w {
			return s.notSolvable(loc, fmt.Sprintf("witnesses %d and %d are unknown", unknown, w))
		}
		unknown = w
		coeff = f.Add(coeff, c)
		return nil
	}
	for _, term := range e {
		v0, ok0 := s.value(term.VID0)
		v1, ok1 := s.value(term.VID1)
		var err error
		switch {
		case ok0 && ok1:
			sum = f.Add(sum, f.Mul(f.Mul(v0, v1), term.Coeff))
		case !ok0 && ok1:
			err = addUnknown(term.VID0, f.Mul(term.Coeff, v1))
		case ok0 && !ok1:
			err = addUnknown(term.VID1, f.Mul(term.Coeff, v0))
		default:
			err = s.notSolvable(loc, fmt.Sprintf("term v%d*v%d has no known factor", term.VID0, term.VID1))
		}
		if err != nil {
			return err
		}
	}
	if unknown == 0 {
		if !field.IsZero(sum) {
			return s.unsatisfied(loc, "expression is not zero")
		}
		return nil
	}
	inv, ok := f.Inverse(coeff)
	if !ok {
		return s.notSolvable(loc, fmt.Sprintf("coefficient of witness %d is zero", unknown))
	}
	s.witness[unknown] = f.Neg(f.Mul(sum, inv))
	return nil
}

func (s *Solver) knownInputs(loc acir.OpcodeLocation, ws []int) ([]constraint.Element, error) {
	res := make([]constraint.Element, len(ws))
	for i, w := range ws {
		v, ok := s.value(w)
		if !ok {
			return nil, s.notSolvable(loc, fmt.Sprintf("input witness %d is unknown", w))
		}
		res[i] = v
	}
	return res, nil
}

func (s *Solver) solveBlackBox(loc acir.OpcodeLocation, op *acir.Opcode) error {
	in, err := s.knownInputs(loc, op.Inputs)
	if err != nil {
		return err
	}
	values := make([]*big.Int, len(in))
	for i, v := range in {
		values[i] = s.field.ToBigInt(v)
		if values[i].BitLen() > op.NumBits {
			return s.unsatisfied(loc, fmt.Sprintf("witness %d does not fit in %d bits", op.Inputs[i], op.NumBits))
		}
	}
	var out *big.Int
	switch op.Func {
	case acir.BRange:
		return nil
	case acir.BAnd:
		out = new(big.Int).And(values[0], values[1])
	case acir.BXor:
		out = new(big.Int).Xor(values[0], values[1])
	default:
		return s.notSolvable(loc, fmt.Sprintf("unknown black box function %d", op.Func))
	}
	return s.assign(loc, op.Outputs[0], s.field.FromInterface(out))
}

func (s *Solver) solveMemoryInit(loc acir.OpcodeLocation, op *acir.Opcode) error {
	in, err := s.knownInputs(loc, op.Inputs)
	if err != nil {
		return err
	}
	s.memory[op.BlockId] = in
	return nil
}

func (s *Solver) solveMemoryOp(loc acir.OpcodeLocation, op *acir.Opcode) error {
	block, ok := s.memory[op.BlockId]
	if !ok {
		return s.notSolvable(loc, fmt.Sprintf("memory block %d is not initialized", op.BlockId))
	}
	index, ok := s.value(op.Index)
	if !ok {
		return s.notSolvable(loc, fmt.Sprintf("index witness %d is unknown", op.Index))
	}
	idx, ok := s.field.Uint64(index)
	if !ok || idx >= uint64(len(block)) {
		return s.unsatisfied(loc, fmt.Sprintf("index %s is out of bounds for block %d of size %d", s.field.String(index), op.BlockId, len(block)))
	}
	if op.IsWrite {
		v, ok := s.value(op.Value)
		if !ok {
			return s.notSolvable(loc, fmt.Sprintf("value witness %d is unknown", op.Value))
		}
		block[idx] = v
		return nil
	}
	return s.assign(loc, op.Value, block[idx])
}

func (s *Solver) solveBrillig(loc acir.OpcodeLocation, op *acir.Opcode) error {
	in := make([]constraint.Element, len(op.BrilligInputs))
	for i, e := range op.BrilligInputs {
		v, ok := s.evaluate(e)
		if !ok {
			return s.notSolvable(loc, fmt.Sprintf("brillig input %d is unknown", i))
		}
		in[i] = v
	}
	out, err := brillig.Execute(s.field, op.Bytecode, in, len(op.Outputs))
	if err != nil {
		var trap *brillig.TrapError
		if errors.As(err, &trap) {
			return s.unsatisfied(acir.NewBrilligLocation(loc.AcirIndex, trap.Index), trap.Reason)
		}
		return err
	}
	for i, w := range op.Outputs {
		if err := s.assign(loc, w, out[i]); err != nil {
			return err
		}
	}
	return nil
}

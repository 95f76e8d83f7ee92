// Package brillig implements the register machine executing unconstrained blocks.
//
// A block is hosted by a single ACIR BrilligCall opcode. Its instructions are addressed by their
// index in the block, which the compiler passes never renumber.
package brillig

import (
	"fmt"

	"github.com/consensys/gnark/constraint"
)

// MaxRegisters bounds the register file of a block
const MaxRegisters = 1 << 16

type OpcodeType int

const (
	_ OpcodeType = iota
	// r[Dst] = Value
	BConst
	// r[Dst] = r[Lhs]
	BMov
	// r[Dst] = r[Lhs] op r[Rhs]
	BAdd
	BSub
	BMul
	BDiv
	// trap unless r[Lhs] == r[Rhs]
	BAssertEq
	BStop
)

type Opcode struct {
	Type  OpcodeType
	Dst   int
	Lhs   int
	Rhs   int
	Value constraint.Element
}

func NewConst(dst int, v constraint.Element) Opcode {
	return Opcode{Type: BConst, Dst: dst, Value: v}
}

func NewMov(dst, src int) Opcode {
	return Opcode{Type: BMov, Dst: dst, Lhs: src}
}

func NewBinary(t OpcodeType, dst, lhs, rhs int) Opcode {
	switch t {
	case BAdd, BSub, BMul, BDiv:
	default:
		panic(fmt.Sprintf("opcode type %d is not a binary operation", t))
	}
	return Opcode{Type: t, Dst: dst, Lhs: lhs, Rhs: rhs}
}

func NewAssertEq(lhs, rhs int) Opcode {
	return Opcode{Type: BAssertEq, Lhs: lhs, Rhs: rhs}
}

func NewStop() Opcode {
	return Opcode{Type: BStop}
}

// Registers returns the registers the opcode reads or writes
func (o *Opcode) Registers() []int {
	switch o.Type {
	case BConst:
		return []int{o.Dst}
	case BMov:
		return []int{o.Dst, o.Lhs}
	case BAdd, BSub, BMul, BDiv:
		return []int{o.Dst, o.Lhs, o.Rhs}
	case BAssertEq:
		return []int{o.Lhs, o.Rhs}
	}
	return nil
}

func (o *Opcode) String() string {
	switch o.Type {
	case BConst:
		return fmt.Sprintf("r%d = const", o.Dst)
	case BMov:
		return fmt.Sprintf("r%d = r%d", o.Dst, o.Lhs)
	case BAdd:
		return fmt.Sprintf("r%d = r%d + r%d", o.Dst, o.Lhs, o.Rhs)
	case BSub:
		return fmt.Sprintf("r%d = r%d - r%d", o.Dst, o.Lhs, o.Rhs)
	case BMul:
		return fmt.Sprintf("r%d = r%d * r%d", o.Dst, o.Lhs, o.Rhs)
	case BDiv:
		return fmt.Sprintf("r%d = r%d / r%d", o.Dst, o.Lhs, o.Rhs)
	case BAssertEq:
		return fmt.Sprintf("assert r%d == r%d", o.Lhs, o.Rhs)
	case BStop:
		return "stop"
	}
	return fmt.Sprintf("unknown(%d)", o.Type)
}

// Validate checks opcode types and register indices of a block
func Validate(bytecode []Opcode) error {
	for i, o := range bytecode {
		if o.Type < BConst || o.Type > BStop {
			return fmt.Errorf("brillig opcode %d has unknown type %d", i, o.Type)
		}
		for _, r := range o.Registers() {
			if r < 0 {
				return fmt.Errorf("brillig opcode %d uses negative register %d", i, r)
			}
			if r >= MaxRegisters {
				return fmt.Errorf("brillig opcode %d uses register %d, at most %d are available", i, r, MaxRegisters)
			}
		}
	}
	return nil
}

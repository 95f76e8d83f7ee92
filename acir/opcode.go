package acir

import (
	"github.com/PolyhedraZK/acvm-compiler/brillig"
	"github.com/PolyhedraZK/acvm-compiler/expr"
)

// OpcodeType enumerates the types of opcodes that can be part of a Circuit.
type OpcodeType int

const (
	_ OpcodeType = iota
	OAssertZero
	OBlackBoxFuncCall
	OMemoryInit
	OMemoryOp
	OBrilligCall
)

func (t OpcodeType) String() string {
	switch t {
	case OAssertZero:
		return "EXPR"
	case OBlackBoxFuncCall:
		return "BLACKBOX"
	case OMemoryInit:
		return "INIT"
	case OMemoryOp:
		return "MEM"
	case OBrilligCall:
		return "BRILLIG"
	}
	return "UNKNOWN"
}

type BlackBoxFunc int

const (
	_ BlackBoxFunc = iota
	BRange
	BAnd
	BXor
)

func (f BlackBoxFunc) String() string {
	switch f {
	case BRange:
		return "RANGE"
	case BAnd:
		return "AND"
	case BXor:
		return "XOR"
	}
	return "UNKNOWN"
}

// Opcode represents one constraint of a circuit. It can be:
//  1. an expression asserted to be zero
//  2. a black box function call, with witness inputs and outputs
//  3. the initialization of a memory block with witnesses
//  4. a read or a write into a memory block
//  5. a call into an unconstrained block, whose outputs are not constrained by the call itself
type Opcode struct {
	Type OpcodeType
	// AssertZero
	Expr expr.Expression
	// BlackBoxFuncCall
	Func    BlackBoxFunc
	NumBits int
	// BlackBoxFuncCall inputs, MemoryInit initial values
	Inputs []int
	// BlackBoxFuncCall, BrilligCall
	Outputs []int
	// MemoryInit, MemoryOp
	BlockId uint32
	// MemoryOp: a read sets Value to block[Index], a write stores Value at block[Index]
	Index   int
	Value   int
	IsWrite bool
	// BrilligCall, inputs are loaded into the first registers
	BrilligInputs []expr.Expression
	Bytecode      []brillig.Opcode
}

func NewAssertZero(e expr.Expression) Opcode {
	return Opcode{
		Type: OAssertZero,
		Expr: e,
	}
}

func NewRange(witness int, numBits int) Opcode {
	return Opcode{
		Type:    OBlackBoxFuncCall,
		Func:    BRange,
		NumBits: numBits,
		Inputs:  []int{witness},
	}
}

// NewLogicOp returns out = lhs (and|xor) rhs, both inputs being constrained to numBits
func NewLogicOp(f BlackBoxFunc, lhs, rhs, out int, numBits int) Opcode {
	if f != BAnd && f != BXor {
		panic("logic op must be AND or XOR")
	}
	return Opcode{
		Type:    OBlackBoxFuncCall,
		Func:    f,
		NumBits: numBits,
		Inputs:  []int{lhs, rhs},
		Outputs: []int{out},
	}
}

func NewMemoryInit(blockId uint32, init []int) Opcode {
	return Opcode{
		Type:    OMemoryInit,
		BlockId: blockId,
		Inputs:  init,
	}
}

func NewMemoryRead(blockId uint32, index, value int) Opcode {
	return Opcode{
		Type:    OMemoryOp,
		BlockId: blockId,
		Index:   index,
		Value:   value,
	}
}

func NewMemoryWrite(blockId uint32, index, value int) Opcode {
	return Opcode{
		Type:    OMemoryOp,
		BlockId: blockId,
		Index:   index,
		Value:   value,
		IsWrite: true,
	}
}

func NewBrilligCall(inputs []expr.Expression, outputs []int, bytecode []brillig.Opcode) Opcode {
	return Opcode{
		Type:          OBrilligCall,
		BrilligInputs: inputs,
		Outputs:       outputs,
		Bytecode:      bytecode,
	}
}

// OutputWitnesses returns the witnesses that this opcode assigns when solved
func (o *Opcode) OutputWitnesses() []int {
	switch o.Type {
	case OBlackBoxFuncCall, OBrilligCall:
		return o.Outputs
	case OMemoryOp:
		if !o.IsWrite {
			return []int{o.Value}
		}
	}
	return nil
}

// Witnesses returns every witness referenced by the opcode, possibly with repetitions
func (o *Opcode) Witnesses() []int {
	res := []int{}
	switch o.Type {
	case OAssertZero:
		res = append(res, o.Expr.Witnesses()...)
	case OBlackBoxFuncCall:
		res = append(res, o.Inputs...)
		res = append(res, o.Outputs...)
	case OMemoryInit:
		res = append(res, o.Inputs...)
	case OMemoryOp:
		res = append(res, o.Index, o.Value)
	case OBrilligCall:
		for _, e := range o.BrilligInputs {
			res = append(res, e.Witnesses()...)
		}
		res = append(res, o.Outputs...)
	}
	return res
}

// Clone returns a deep copy, passes must not share slices between circuits
func (o *Opcode) Clone() Opcode {
	res := *o
	if o.Expr != nil {
		res.Expr = o.Expr.Clone()
	}
	res.Inputs = cloneInts(o.Inputs)
	res.Outputs = cloneInts(o.Outputs)
	if o.BrilligInputs != nil {
		res.BrilligInputs = make([]expr.Expression, len(o.BrilligInputs))
		for i, e := range o.BrilligInputs {
			res.BrilligInputs[i] = e.Clone()
		}
	}
	if o.Bytecode != nil {
		res.Bytecode = make([]brillig.Opcode, len(o.Bytecode))
		copy(res.Bytecode, o.Bytecode)
	}
	return res
}

func cloneInts(x []int) []int {
	if x == nil {
		return nil
	}
	res := make([]int, len(x))
	copy(res, x)
	return res
}

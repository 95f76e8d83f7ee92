package acir

import (
	"fmt"

	"github.com/PolyhedraZK/acvm-compiler/brillig"
	"github.com/PolyhedraZK/acvm-compiler/expr"
	"github.com/PolyhedraZK/acvm-compiler/field"
	"github.com/PolyhedraZK/acvm-compiler/utils"
)

func serializeExpression(o *utils.OutputBuf, e expr.Expression, f field.Field) {
	o.AppendUint64(uint64(len(e)))
	for _, term := range e {
		o.AppendUint64(uint64(term.VID0))
		o.AppendUint64(uint64(term.VID1))
		o.AppendFieldElement(f, term.Coeff)
	}
}

func serializeBrillig(o *utils.OutputBuf, bytecode []brillig.Opcode, f field.Field) {
	o.AppendUint64(uint64(len(bytecode)))
	for _, b := range bytecode {
		o.AppendUint8(uint8(b.Type))
		o.AppendUint64(uint64(b.Dst))
		o.AppendUint64(uint64(b.Lhs))
		o.AppendUint64(uint64(b.Rhs))
		o.AppendFieldElement(f, b.Value)
	}
}

func serializeOpcode(o *utils.OutputBuf, op *Opcode, f field.Field) {
	o.AppendUint8(uint8(op.Type))
	switch op.Type {
	case OAssertZero:
		serializeExpression(o, op.Expr, f)
	case OBlackBoxFuncCall:
		o.AppendUint8(uint8(op.Func))
		o.AppendUint64(uint64(op.NumBits))
		o.AppendIntSlice(op.Inputs)
		o.AppendIntSlice(op.Outputs)
	case OMemoryInit:
		o.AppendUint32(op.BlockId)
		o.AppendIntSlice(op.Inputs)
	case OMemoryOp:
		o.AppendUint32(op.BlockId)
		o.AppendUint64(uint64(op.Index))
		o.AppendUint64(uint64(op.Value))
		o.AppendBool(op.IsWrite)
	case OBrilligCall:
		o.AppendUint64(uint64(len(op.BrilligInputs)))
		for _, e := range op.BrilligInputs {
			serializeExpression(o, e, f)
		}
		o.AppendIntSlice(op.Outputs)
		serializeBrillig(o, op.Bytecode, f)
	default:
		panic(fmt.Sprintf("unknown opcode type %d", op.Type))
	}
}

func serializeLocation(o *utils.OutputBuf, loc OpcodeLocation) {
	o.AppendBool(loc.IsBrillig)
	o.AppendUint64(uint64(loc.AcirIndex))
	o.AppendUint64(uint64(loc.BrilligIndex))
}

// Serialize encodes the circuit in the little endian format of utils.OutputBuf
func Serialize(c *Circuit) []byte {
	o := &utils.OutputBuf{}
	o.AppendUint64(field.GetFieldId(c.Field))
	o.AppendUint64(uint64(c.CurrentWitnessIndex))
	o.AppendBool(c.ExpressionWidth.Bounded)
	o.AppendUint64(uint64(c.ExpressionWidth.Width))
	o.AppendUint64(uint64(len(c.Opcodes)))
	for i := range c.Opcodes {
		serializeOpcode(o, &c.Opcodes[i], c.Field)
	}
	o.AppendIntSlice(c.PrivateParameters)
	o.AppendIntSlice(c.PublicParameters)
	o.AppendIntSlice(c.ReturnValues)
	o.AppendUint64(uint64(len(c.AssertMessages)))
	for _, m := range c.AssertMessages {
		serializeLocation(o, m.Location)
		o.AppendString(m.Message)
	}
	return o.Bytes()
}

func deserializeExpression(in *utils.InputBuf, f field.Field) expr.Expression {
	n := in.ReadLen(16 + f.SerializedLen())
	e := make(expr.Expression, n)
	for i := range e {
		e[i].VID0 = int(in.ReadUint64())
		e[i].VID1 = int(in.ReadUint64())
		e[i].Coeff = in.ReadFieldElement(f)
	}
	return e
}

func deserializeBrillig(in *utils.InputBuf, f field.Field) []brillig.Opcode {
	n := in.ReadLen(25 + f.SerializedLen())
	res := make([]brillig.Opcode, n)
	for i := range res {
		res[i].Type = brillig.OpcodeType(in.ReadUint8())
		res[i].Dst = int(in.ReadUint64())
		res[i].Lhs = int(in.ReadUint64())
		res[i].Rhs = int(in.ReadUint64())
		res[i].Value = in.ReadFieldElement(f)
	}
	return res
}

func deserializeOpcode(in *utils.InputBuf, f field.Field) Opcode {
	op := Opcode{Type: OpcodeType(in.ReadUint8())}
	switch op.Type {
	case OAssertZero:
		op.Expr = deserializeExpression(in, f)
	case OBlackBoxFuncCall:
		op.Func = BlackBoxFunc(in.ReadUint8())
		op.NumBits = int(in.ReadUint64())
		op.Inputs = in.ReadIntSlice()
		op.Outputs = in.ReadIntSlice()
	case OMemoryInit:
		op.BlockId = in.ReadUint32()
		op.Inputs = in.ReadIntSlice()
	case OMemoryOp:
		op.BlockId = in.ReadUint32()
		op.Index = int(in.ReadUint64())
		op.Value = int(in.ReadUint64())
		op.IsWrite = in.ReadBool()
	case OBrilligCall:
		n := in.ReadLen(8)
		op.BrilligInputs = make([]expr.Expression, n)
		for i := range op.BrilligInputs {
			op.BrilligInputs[i] = deserializeExpression(in, f)
		}
		op.Outputs = in.ReadIntSlice()
		op.Bytecode = deserializeBrillig(in, f)
	default:
		panic(fmt.Errorf("unknown opcode type %d", op.Type))
	}
	return op
}

// Deserialize decodes a circuit produced by Serialize and validates it
func Deserialize(buf []byte) (c *Circuit, err error) {
	defer func() {
		if r := recover(); r != nil {
			c = nil
			if e, ok := r.(error); ok {
				err = fmt.Errorf("malformed circuit: %w", e)
			} else {
				err = fmt.Errorf("malformed circuit: %v", r)
			}
		}
	}()
	in := utils.NewInputBuf(buf)
	f, err := field.GetFieldById(in.ReadUint64())
	if err != nil {
		return nil, err
	}
	c = NewCircuit(f)
	c.CurrentWitnessIndex = int(in.ReadUint64())
	c.ExpressionWidth.Bounded = in.ReadBool()
	c.ExpressionWidth.Width = int(in.ReadUint64())
	n := in.ReadLen(1)
	c.Opcodes = make([]Opcode, n)
	for i := range c.Opcodes {
		c.Opcodes[i] = deserializeOpcode(in, f)
	}
	c.PrivateParameters = in.ReadIntSlice()
	c.PublicParameters = in.ReadIntSlice()
	c.ReturnValues = in.ReadIntSlice()
	n = in.ReadLen(17)
	c.AssertMessages = make([]AssertMessage, n)
	for i := range c.AssertMessages {
		loc := OpcodeLocation{}
		loc.IsBrillig = in.ReadBool()
		loc.AcirIndex = int(in.ReadUint64())
		loc.BrilligIndex = int(in.ReadUint64())
		c.AssertMessages[i] = AssertMessage{Location: loc, Message: in.ReadString()}
	}
	if !in.IsEnd() {
		return nil, fmt.Errorf("malformed circuit: trailing bytes")
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("malformed circuit: %w", err)
	}
	return c, nil
}

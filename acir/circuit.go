package acir

import (
	"fmt"
	"strings"

	"github.com/PolyhedraZK/acvm-compiler/brillig"
	"github.com/PolyhedraZK/acvm-compiler/field"
)

// AssertMessage explains why the opcode at Location may fail when the circuit is solved
type AssertMessage struct {
	Location OpcodeLocation
	Message  string
}

type Circuit struct {
	Field field.Field
	// witnesses are 1..CurrentWitnessIndex, 0 is the constant one
	CurrentWitnessIndex int
	Opcodes             []Opcode
	ExpressionWidth     ExpressionWidth
	PrivateParameters   []int
	PublicParameters    []int
	ReturnValues        []int
	AssertMessages      []AssertMessage
}

func NewCircuit(f field.Field) *Circuit {
	return &Circuit{
		Field:           f,
		ExpressionWidth: Unbounded,
	}
}

// NewWitness allocates a fresh witness index
func (c *Circuit) NewWitness() int {
	c.CurrentWitnessIndex++
	return c.CurrentWitnessIndex
}

// InputWitnesses returns the parameters of the circuit, private ones first
func (c *Circuit) InputWitnesses() []int {
	res := make([]int, 0, len(c.PrivateParameters)+len(c.PublicParameters))
	res = append(res, c.PrivateParameters...)
	res = append(res, c.PublicParameters...)
	return res
}

// WithOpcodes returns a circuit sharing nothing with c, with the same metadata and the given opcodes.
// Assert messages are copied as is, it is up to the caller to relocate them.
func (c *Circuit) WithOpcodes(opcodes []Opcode) *Circuit {
	res := &Circuit{
		Field:               c.Field,
		CurrentWitnessIndex: c.CurrentWitnessIndex,
		Opcodes:             opcodes,
		ExpressionWidth:     c.ExpressionWidth,
		PrivateParameters:   cloneInts(c.PrivateParameters),
		PublicParameters:    cloneInts(c.PublicParameters),
		ReturnValues:        cloneInts(c.ReturnValues),
	}
	if c.AssertMessages != nil {
		res.AssertMessages = make([]AssertMessage, len(c.AssertMessages))
		copy(res.AssertMessages, c.AssertMessages)
	}
	return res
}

// GetAssertMessage returns the first message attached to loc
func (c *Circuit) GetAssertMessage(loc OpcodeLocation) (string, bool) {
	for _, m := range c.AssertMessages {
		if m.Location == loc {
			return m.Message, true
		}
	}
	return "", false
}

func (c *Circuit) checkWitness(w int) error {
	if w <= 0 || w > c.CurrentWitnessIndex {
		return fmt.Errorf("witness %d is out of bound", w)
	}
	return nil
}

func (c *Circuit) validateOpcode(o *Opcode, initialized map[uint32]bool) error {
	switch o.Type {
	case OAssertZero:
		for _, term := range o.Expr {
			if term.VID0 == 0 && term.VID1 != 0 {
				return fmt.Errorf("VID0 %d is zero but VID1 %d is not", term.VID0, term.VID1)
			}
		}
	case OBlackBoxFuncCall:
		nbIn, nbOut := 2, 1
		if o.Func == BRange {
			nbIn, nbOut = 1, 0
		} else if o.Func != BAnd && o.Func != BXor {
			return fmt.Errorf("unknown black box function %d", o.Func)
		}
		if len(o.Inputs) != nbIn || len(o.Outputs) != nbOut {
			return fmt.Errorf("%v expects %d inputs and %d outputs, got %d and %d", o.Func, nbIn, nbOut, len(o.Inputs), len(o.Outputs))
		}
		if o.NumBits <= 0 || o.NumBits > c.Field.FieldBitLen() {
			return fmt.Errorf("%v has invalid bit size %d", o.Func, o.NumBits)
		}
	case OMemoryInit:
		initialized[o.BlockId] = true
	case OMemoryOp:
		if !initialized[o.BlockId] {
			return fmt.Errorf("memory block %d is used before initialization", o.BlockId)
		}
	case OBrilligCall:
		if err := brillig.Validate(o.Bytecode); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown opcode type %d", o.Type)
	}
	for _, w := range o.Witnesses() {
		if err := c.checkWitness(w); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the circuit is valid
func Validate(c *Circuit) error {
	if c.Field == nil {
		return fmt.Errorf("circuit has no field")
	}
	if err := c.ExpressionWidth.Validate(); err != nil {
		return err
	}
	for _, params := range [][]int{c.PrivateParameters, c.PublicParameters, c.ReturnValues} {
		for _, w := range params {
			if err := c.checkWitness(w); err != nil {
				return fmt.Errorf("circuit parameter: %w", err)
			}
		}
	}
	initialized := make(map[uint32]bool)
	for i := range c.Opcodes {
		if err := c.validateOpcode(&c.Opcodes[i], initialized); err != nil {
			return fmt.Errorf("opcode %d: %w", i, err)
		}
	}
	for _, m := range c.AssertMessages {
		loc := m.Location
		if loc.AcirIndex < 0 || loc.AcirIndex >= len(c.Opcodes) {
			return fmt.Errorf("assert message %q points to missing opcode %v", m.Message, loc)
		}
		if loc.IsBrillig {
			host := &c.Opcodes[loc.AcirIndex]
			if host.Type != OBrilligCall {
				return fmt.Errorf("assert message %q points into opcode %d which is not a brillig call", m.Message, loc.AcirIndex)
			}
			if loc.BrilligIndex < 0 || loc.BrilligIndex >= len(host.Bytecode) {
				return fmt.Errorf("assert message %q points to missing brillig instruction %v", m.Message, loc)
			}
		} else if loc.BrilligIndex != 0 {
			return fmt.Errorf("assert message %q has brillig index %d on top level opcode %d", m.Message, loc.BrilligIndex, loc.AcirIndex)
		}
	}
	return nil
}

func formatWitnesses(ws []int) string {
	s := make([]string, len(ws))
	for i, w := range ws {
		s[i] = fmt.Sprintf("v%d", w)
	}
	return "[" + strings.Join(s, ", ") + "]"
}

func (c *Circuit) formatOpcode(o *Opcode) string {
	switch o.Type {
	case OAssertZero:
		return fmt.Sprintf("EXPR %s = 0", o.Expr.Format(c.Field))
	case OBlackBoxFuncCall:
		if o.Func == BRange {
			return fmt.Sprintf("BLACKBOX RANGE v%d %d bits", o.Inputs[0], o.NumBits)
		}
		return fmt.Sprintf("BLACKBOX %v %s %d bits -> %s", o.Func, formatWitnesses(o.Inputs), o.NumBits, formatWitnesses(o.Outputs))
	case OMemoryInit:
		return fmt.Sprintf("INIT b%d %s", o.BlockId, formatWitnesses(o.Inputs))
	case OMemoryOp:
		if o.IsWrite {
			return fmt.Sprintf("MEM b%d[v%d] = v%d", o.BlockId, o.Index, o.Value)
		}
		return fmt.Sprintf("MEM v%d = b%d[v%d]", o.Value, o.BlockId, o.Index)
	case OBrilligCall:
		ins := make([]string, len(o.BrilligInputs))
		for i, e := range o.BrilligInputs {
			ins[i] = e.Format(c.Field)
		}
		return fmt.Sprintf("BRILLIG (%s) -> %s, %d instructions", strings.Join(ins, ", "), formatWitnesses(o.Outputs), len(o.Bytecode))
	}
	return fmt.Sprintf("UNKNOWN %d", o.Type)
}

func (c *Circuit) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "current witness index : %d\n", c.CurrentWitnessIndex)
	fmt.Fprintf(&sb, "expression width : %v\n", c.ExpressionWidth)
	fmt.Fprintf(&sb, "private parameters : %s\n", formatWitnesses(c.PrivateParameters))
	fmt.Fprintf(&sb, "public parameters : %s\n", formatWitnesses(c.PublicParameters))
	fmt.Fprintf(&sb, "return values : %s\n", formatWitnesses(c.ReturnValues))
	for i := range c.Opcodes {
		fmt.Fprintf(&sb, "%d: %s\n", i, c.formatOpcode(&c.Opcodes[i]))
	}
	for _, m := range c.AssertMessages {
		fmt.Fprintf(&sb, "assert %v: %s\n", m.Location, m.Message)
	}
	return sb.String()
}

func (c *Circuit) Print() {
	fmt.Print(c.String())
}

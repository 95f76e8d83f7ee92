package brillig

import (
	"errors"
	"testing"

	"github.com/PolyhedraZK/acvm-compiler/field/bn254"
	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	f := &bn254.Field{}
	// r0 = (r0 * r1 + 3) / r2
	bytecode := []Opcode{
		NewBinary(BMul, 3, 0, 1),
		NewConst(4, f.FromInterface(3)),
		NewBinary(BAdd, 3, 3, 4),
		NewBinary(BDiv, 0, 3, 2),
		NewMov(1, 4),
		NewStop(),
		NewConst(0, f.FromInterface(99)),
	}
	require.NoError(t, Validate(bytecode))
	out, err := Execute(f, bytecode, []constraint.Element{f.FromInterface(5), f.FromInterface(7), f.FromInterface(2)}, 2)
	require.NoError(t, err)
	assert.Equal(t, f.FromInterface(19), out[0])
	assert.Equal(t, f.FromInterface(3), out[1])
}

func TestTrap(t *testing.T) {
	f := &bn254.Field{}
	bytecode := []Opcode{
		NewConst(2, f.FromInterface(1)),
		NewAssertEq(0, 0),
		NewAssertEq(0, 1),
		NewStop(),
	}
	_, err := Execute(f, bytecode, []constraint.Element{f.FromInterface(1), f.FromInterface(2)}, 0)
	var trap *TrapError
	require.True(t, errors.As(err, &trap))
	assert.Equal(t, 2, trap.Index)

	_, err = Execute(f, []Opcode{NewBinary(BDiv, 0, 0, 1)}, []constraint.Element{f.One()}, 1)
	require.True(t, errors.As(err, &trap))
	assert.Equal(t, 0, trap.Index)
}

func TestStep(t *testing.T) {
	f := &bn254.Field{}
	vm := NewVM(f, []Opcode{NewConst(0, f.FromInterface(8)), NewStop()}, nil)
	done, err := vm.Step()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, f.FromInterface(8), vm.Register(0))
	done, err = vm.Step()
	require.NoError(t, err)
	assert.True(t, done)
	done, _ = vm.Step()
	assert.True(t, done)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Validate([]Opcode{{Type: 42}}))
	assert.Error(t, Validate([]Opcode{NewMov(0, -1)}))
	assert.Error(t, Validate([]Opcode{NewMov(1<<40, 0)}))
	assert.Error(t, Validate([]Opcode{NewAssertEq(0, MaxRegisters)}))
	assert.NoError(t, Validate([]Opcode{NewMov(MaxRegisters-1, 0), NewStop()}))
	assert.Panics(t, func() { NewBinary(BStop, 0, 0, 0) })
}

package brillig

import (
	"fmt"

	"github.com/consensys/gnark/constraint"
)

// TrapError reports the instruction of the block that stopped the execution
type TrapError struct {
	Index  int
	Reason string
}

func (e *TrapError) Error() string {
	return fmt.Sprintf("brillig trap at instruction %d: %s", e.Index, e.Reason)
}

type VM struct {
	field     constraint.Field
	bytecode  []Opcode
	registers []constraint.Element
	pc        int
	stopped   bool
}

// NewVM loads inputs into registers 0..len(inputs)-1
func NewVM(field constraint.Field, bytecode []Opcode, inputs []constraint.Element) *VM {
	vm := &VM{
		field:     field,
		bytecode:  bytecode,
		registers: make([]constraint.Element, len(inputs)),
	}
	copy(vm.registers, inputs)
	return vm
}

func (vm *VM) reg(i int) constraint.Element {
	if i < len(vm.registers) {
		return vm.registers[i]
	}
	return constraint.Element{}
}

func (vm *VM) setReg(i int, v constraint.Element) {
	for len(vm.registers) <= i {
		vm.registers = append(vm.registers, constraint.Element{})
	}
	vm.registers[i] = v
}

// Register returns the value of register i, unset registers hold zero
func (vm *VM) Register(i int) constraint.Element {
	return vm.reg(i)
}

func (vm *VM) trap(reason string) error {
	vm.stopped = true
	return &TrapError{Index: vm.pc, Reason: reason}
}

// Step executes one instruction. It reports whether the machine has stopped.
func (vm *VM) Step() (bool, error) {
	if vm.stopped || vm.pc >= len(vm.bytecode) {
		vm.stopped = true
		return true, nil
	}
	o := &vm.bytecode[vm.pc]
	f := vm.field
	switch o.Type {
	case BConst:
		vm.setReg(o.Dst, o.Value)
	case BMov:
		vm.setReg(o.Dst, vm.reg(o.Lhs))
	case BAdd:
		vm.setReg(o.Dst, f.Add(vm.reg(o.Lhs), vm.reg(o.Rhs)))
	case BSub:
		vm.setReg(o.Dst, f.Sub(vm.reg(o.Lhs), vm.reg(o.Rhs)))
	case BMul:
		vm.setReg(o.Dst, f.Mul(vm.reg(o.Lhs), vm.reg(o.Rhs)))
	case BDiv:
		inv, ok := f.Inverse(vm.reg(o.Rhs))
		if !ok {
			return true, vm.trap("division by zero")
		}
		vm.setReg(o.Dst, f.Mul(vm.reg(o.Lhs), inv))
	case BAssertEq:
		if vm.reg(o.Lhs) != vm.reg(o.Rhs) {
			return true, vm.trap(fmt.Sprintf("r%d != r%d", o.Lhs, o.Rhs))
		}
	case BStop:
		vm.stopped = true
		return true, nil
	default:
		return true, vm.trap(fmt.Sprintf("unknown opcode type %d", o.Type))
	}
	vm.pc++
	return false, nil
}

func (vm *VM) Run() error {
	for {
		done, err := vm.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Execute runs a block and returns registers 0..nbOutputs-1
func Execute(field constraint.Field, bytecode []Opcode, inputs []constraint.Element, nbOutputs int) ([]constraint.Element, error) {
	vm := NewVM(field, bytecode, inputs)
	if err := vm.Run(); err != nil {
		return nil, err
	}
	res := make([]constraint.Element, nbOutputs)
	for i := range res {
		res[i] = vm.reg(i)
	}
	return res, nil
}

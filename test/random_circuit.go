package test

import (
	"fmt"
	"math/rand"

	"github.com/PolyhedraZK/acvm-compiler/acir"
	"github.com/PolyhedraZK/acvm-compiler/brillig"
	"github.com/PolyhedraZK/acvm-compiler/debug"
	"github.com/PolyhedraZK/acvm-compiler/expr"
	"github.com/PolyhedraZK/acvm-compiler/field"
	"github.com/PolyhedraZK/acvm-compiler/solver"
)

// inputs are sampled below inputBound, brillig traps happen above it
const inputBound = 1 << 15

type randomCircuitConfig struct {
	seed         int
	nbInputs     randRange
	nbOpcodes    randRange
	nbTerms      randRange
	exprPercent  int
	rangePercent int
	logicPercent int
	memPercent   int
	field        field.Field
}

type randRange struct {
	l int
	r int
}

func (rr *randRange) sample(r *rand.Rand) int {
	return r.Intn(rr.r-rr.l+1) + rr.l
}

// randomCircuitGenerator builds a circuit opcode by opcode. Every opcode defines its outputs
// from witnesses defined before it, so the circuit can be solved in a single forward pass.
type randomCircuitGenerator struct {
	conf    *randomCircuitConfig
	rand    *rand.Rand
	circuit *acir.Circuit
	debug   *debug.Info
	// opcode index -> witness defined by this AssertZero
	outputs map[int]int
	// opcode index of brillig calls -> constant that makes them trap
	traps   map[int]int
	nbBlock uint32
}

func newRandomCircuitGenerator(conf *randomCircuitConfig) *randomCircuitGenerator {
	rcg := &randomCircuitGenerator{
		conf:    conf,
		rand:    rand.New(rand.NewSource(int64(conf.seed))),
		circuit: acir.NewCircuit(conf.field),
		debug:   debug.NewInfo(),
		outputs: make(map[int]int),
		traps:   make(map[int]int),
	}
	rcg.generate()
	return rcg
}

func (rcg *randomCircuitGenerator) input() int {
	return rcg.circuit.InputWitnesses()[rcg.rand.Intn(len(rcg.circuit.InputWitnesses()))]
}

func (rcg *randomCircuitGenerator) known() int {
	return rcg.rand.Intn(rcg.circuit.CurrentWitnessIndex) + 1
}

func (rcg *randomCircuitGenerator) coeff() interface{} {
	return rcg.rand.Intn(1000) - 500
}

func (rcg *randomCircuitGenerator) add(op acir.Opcode) int {
	c := rcg.circuit
	i := len(c.Opcodes)
	c.Opcodes = append(c.Opcodes, op)
	c.AssertMessages = append(c.AssertMessages, acir.AssertMessage{
		Location: acir.NewAcirLocation(i),
		Message:  fmt.Sprintf("opcode %d failed", i),
	})
	rcg.debug.Add(acir.NewAcirLocation(i), debug.Location{File: "random.nr", Start: i, End: i + 1})
	return i
}

// define adds e - out = 0 for a fresh witness out
func (rcg *randomCircuitGenerator) define(e expr.Expression) int {
	f := rcg.conf.field
	out := rcg.circuit.NewWitness()
	e = append(e, expr.NewTerm(out, 0, f.Neg(f.One())))
	i := rcg.add(acir.NewAssertZero(e))
	rcg.outputs[i] = out
	return out
}

func (rcg *randomCircuitGenerator) randomExpression() expr.Expression {
	f := rcg.conf.field
	e := expr.Expression{}
	for j := rcg.conf.nbTerms.sample(rcg.rand); j > 0; j-- {
		coeff := f.FromInterface(rcg.coeff())
		switch rcg.rand.Intn(4) {
		case 0:
			e = append(e, expr.NewTerm(rcg.known(), rcg.known(), coeff))
		case 1:
			e = append(e, expr.NewTerm(0, 0, coeff))
		default:
			e = append(e, expr.NewTerm(rcg.known(), 0, coeff))
		}
	}
	return e
}

func (rcg *randomCircuitGenerator) randomRange() {
	bits := []int{16, 20, 32}[rcg.rand.Intn(3)]
	rcg.add(acir.NewRange(rcg.input(), bits))
}

func (rcg *randomCircuitGenerator) randomLogicOp() {
	f := acir.BAnd
	if rcg.rand.Intn(2) == 0 {
		f = acir.BXor
	}
	lhs, rhs := rcg.input(), rcg.input()
	rcg.add(acir.NewLogicOp(f, lhs, rhs, rcg.circuit.NewWitness(), 16))
}

// randomMemory initializes a block, and accesses it unless the block is dead
func (rcg *randomCircuitGenerator) randomMemory() {
	f := rcg.conf.field
	block := rcg.nbBlock
	rcg.nbBlock++
	init := make([]int, rcg.rand.Intn(4)+1)
	for i := range init {
		init[i] = rcg.known()
	}
	rcg.add(acir.NewMemoryInit(block, init))
	if rcg.rand.Intn(3) == 0 {
		return
	}
	index := rcg.define(expr.Expression{expr.NewTerm(0, 0, f.FromInterface(rcg.rand.Intn(len(init))))})
	if rcg.rand.Intn(2) == 0 {
		rcg.add(acir.NewMemoryWrite(block, index, rcg.known()))
	}
	rcg.add(acir.NewMemoryRead(block, index, rcg.circuit.NewWitness()))
}

// randomBrillig computes out = 1 / (x - k) in an unconstrained block and checks it with
// out * x - k * out - 1 = 0. The block traps when x = k.
func (rcg *randomCircuitGenerator) randomBrillig() {
	f := rcg.conf.field
	one := f.One()
	x := rcg.input()
	k := inputBound + rcg.rand.Intn(inputBound)
	out := rcg.circuit.NewWitness()
	i := rcg.add(acir.NewBrilligCall(
		[]expr.Expression{{expr.NewTerm(x, 0, one), expr.NewTerm(0, 0, f.FromInterface(-k))}},
		[]int{out},
		[]brillig.Opcode{
			brillig.NewConst(1, one),
			brillig.NewBinary(brillig.BDiv, 0, 1, 0),
			brillig.NewStop(),
		},
	))
	rcg.traps[i] = k
	c := rcg.circuit
	c.AssertMessages = append(c.AssertMessages, acir.AssertMessage{
		Location: acir.NewBrilligLocation(i, 1),
		Message:  fmt.Sprintf("opcode %d trapped", i),
	})
	rcg.debug.Add(acir.NewBrilligLocation(i, 1), debug.Location{File: "std.nr", Start: 0, End: 1})
	rcg.add(acir.NewAssertZero(expr.Expression{
		expr.NewTerm(out, x, one),
		expr.NewTerm(out, 0, f.FromInterface(-k)),
		expr.NewTerm(0, 0, f.Neg(one)),
	}))
}

func (rcg *randomCircuitGenerator) generate() {
	c := rcg.circuit
	for i := rcg.conf.nbInputs.sample(rcg.rand); i > 0; i-- {
		if rcg.rand.Intn(2) == 0 {
			c.PrivateParameters = append(c.PrivateParameters, c.NewWitness())
		} else {
			c.PublicParameters = append(c.PublicParameters, c.NewWitness())
		}
	}
	for i := rcg.conf.nbOpcodes.sample(rcg.rand); i > 0; i-- {
		op := rcg.rand.Intn(100)
		if op < rcg.conf.exprPercent {
			c.ReturnValues = append(c.ReturnValues, rcg.define(rcg.randomExpression()))
		} else if op < rcg.conf.rangePercent {
			rcg.randomRange()
		} else if op < rcg.conf.logicPercent {
			rcg.randomLogicOp()
		} else if op < rcg.conf.memPercent {
			rcg.randomMemory()
		} else {
			rcg.randomBrillig()
		}
	}
}

func (rcg *randomCircuitGenerator) program() (*acir.Circuit, *debug.Info) {
	return rcg.circuit, rcg.debug
}

func (rcg *randomCircuitGenerator) randomAssignment(subSeed int) solver.Witness {
	rand := rand.New(rand.NewSource(int64(subSeed<<48) | int64(rcg.conf.seed)))
	w := solver.Witness{}
	for _, i := range rcg.circuit.InputWitnesses() {
		w[i] = rcg.conf.field.FromInterface(rand.Intn(inputBound))
	}
	return w
}

package acvm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/PolyhedraZK/acvm-compiler/acir"
	"github.com/PolyhedraZK/acvm-compiler/brillig"
	"github.com/PolyhedraZK/acvm-compiler/compiler"
	"github.com/PolyhedraZK/acvm-compiler/debug"
	"github.com/PolyhedraZK/acvm-compiler/expr"
	"github.com/PolyhedraZK/acvm-compiler/field"
	"github.com/PolyhedraZK/acvm-compiler/solver"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = compiler.WithLogger(zerolog.Nop())

// testProgram checks x * (a + b + c + d) = y and that a is not zero, through a brillig inverse
func testProgram() *Program {
	f := field.Default()
	one := f.One()
	c := acir.NewCircuit(f)
	c.CurrentWitnessIndex = 7
	c.PrivateParameters = []int{1, 2, 3, 4, 5}
	c.PublicParameters = []int{6}
	c.Opcodes = []acir.Opcode{
		acir.NewRange(2, 32),
		acir.NewAssertZero(expr.Expression{
			expr.NewTerm(1, 2, one),
			expr.NewTerm(1, 3, one),
			expr.NewTerm(1, 4, one),
			expr.NewTerm(1, 5, one),
			expr.NewTerm(6, 0, f.Neg(one)),
		}),
		acir.NewBrilligCall(
			[]expr.Expression{{expr.NewTerm(2, 0, one)}},
			[]int{7},
			[]brillig.Opcode{
				brillig.NewConst(1, one),
				brillig.NewBinary(brillig.BDiv, 0, 1, 0),
				brillig.NewStop(),
			},
		),
		acir.NewAssertZero(expr.Expression{expr.NewTerm(7, 2, one), expr.NewTerm(0, 0, f.Neg(one))}),
		acir.NewRange(2, 16),
	}
	c.AssertMessages = []acir.AssertMessage{
		{Location: acir.NewAcirLocation(0), Message: "a is too large"},
		{Location: acir.NewAcirLocation(1), Message: "wrong product"},
		{Location: acir.NewBrilligLocation(2, 1), Message: "a is zero"},
		{Location: acir.NewAcirLocation(4), Message: "a is really too large"},
	}
	d := debug.NewInfo()
	for i := range c.Opcodes {
		d.Add(acir.NewAcirLocation(i), debug.Location{File: "main.nr", Start: i * 10, End: i*10 + 5})
	}
	d.Add(acir.NewBrilligLocation(2, 1), debug.Location{File: "std.nr", Start: 100, End: 110})
	return &Program{Circuit: c, Debug: d}
}

func programInputs(a, y int) solver.Witness {
	f := field.Default()
	return solver.Witness{
		1: f.FromInterface(2),
		2: f.FromInterface(a),
		3: f.FromInterface(3),
		4: f.FromInterface(4),
		5: f.FromInterface(5),
		6: f.FromInterface(y),
	}
}

func TestCompile(t *testing.T) {
	p := testProgram()
	res, err := Compile(p, acir.NewBoundedWidth(3), quiet)
	require.NoError(t, err)
	c := res.GetCircuit()
	require.NoError(t, acir.Validate(c))
	tm := res.GetTransformationMap()
	assert.Equal(t, tm.Len(), len(c.Opcodes))

	// the 32 bits range is removed, so is its message and debug info
	for i := range c.Opcodes {
		assert.NotEqual(t, 0, tm.OldIndex(i))
	}
	for _, m := range c.AssertMessages {
		assert.NotEqual(t, "a is too large", m.Message)
	}
	for _, loc := range res.GetDebugInfo().SortedLocations() {
		assert.NotEqual(t, 0, tm.OldIndex(loc.AcirIndex))
	}

	// the input program is untouched
	assert.Len(t, p.Circuit.Opcodes, 5)
	assert.Len(t, p.Debug.Locations, 6)

	w, err := res.Solve(programInputs(6, 2*(6+3+4+5)))
	require.NoError(t, err)
	assert.Equal(t, c.Field.FromInterface(36), w[6])

	back, err := acir.Deserialize(res.Serialize())
	require.NoError(t, err)
	assert.Equal(t, c.String(), back.String())
}

func TestSourceLocations(t *testing.T) {
	res, err := Compile(testProgram(), acir.NewBoundedWidth(3), quiet)
	require.NoError(t, err)

	_, err = res.Solve(programInputs(6, 1))
	var unsat *solver.UnsatisfiedConstraintError
	require.True(t, errors.As(err, &unsat))
	assert.Equal(t, "wrong product", unsat.Message)
	assert.Equal(t, []debug.Location{{File: "main.nr", Start: 10, End: 15}}, res.SourceLocations(err))

	_, err = res.Solve(programInputs(0, 2*(3+4+5)))
	require.True(t, errors.As(err, &unsat))
	assert.True(t, unsat.Location.IsBrillig)
	assert.Equal(t, 1, unsat.Location.BrilligIndex)
	assert.Equal(t, "a is zero", unsat.Message)
	assert.Equal(t, []debug.Location{{File: "std.nr", Start: 100, End: 110}}, res.SourceLocations(err))

	_, err = res.Solve(programInputs(1<<20, 2*((1<<20)+3+4+5)))
	require.True(t, errors.As(err, &unsat))
	assert.Equal(t, "a is really too large", unsat.Message)
	assert.Equal(t, []debug.Location{{File: "main.nr", Start: 40, End: 45}}, res.SourceLocations(err))

	assert.Nil(t, res.SourceLocations(errors.New("other")))
}

func TestCompileErrors(t *testing.T) {
	_, err := Compile(testProgram(), acir.NewBoundedWidth(2), quiet)
	assert.Error(t, err)

	p := testProgram()
	p.Circuit.AssertMessages = append(p.Circuit.AssertMessages, acir.AssertMessage{Location: acir.NewAcirLocation(5), Message: "x"})
	_, err = Compile(p, acir.DefaultExpressionWidth, quiet)
	assert.Error(t, err)
}

func TestCompileLogsWithOption(t *testing.T) {
	p := testProgram()
	p.Circuit.AssertMessages = append(p.Circuit.AssertMessages, acir.AssertMessage{Location: acir.NewAcirLocation(5), Message: "x"})
	var buf bytes.Buffer
	_, err := Compile(p, acir.DefaultExpressionWidth, compiler.WithLogger(zerolog.New(&buf)))
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "validating circuit")
}

func TestCompileStaleBrilligIndex(t *testing.T) {
	p := testProgram()
	p.Circuit.AssertMessages = append(p.Circuit.AssertMessages, acir.AssertMessage{
		Location: acir.OpcodeLocation{AcirIndex: 0, BrilligIndex: 3},
		Message:  "stale",
	})
	_, err := Compile(p, acir.DefaultExpressionWidth, quiet)
	assert.Error(t, err)
}

func TestCompileWithoutDebugInfo(t *testing.T) {
	p := testProgram()
	p.Debug = nil
	res, err := Compile(p, acir.Unbounded, quiet)
	require.NoError(t, err)
	assert.Nil(t, res.GetDebugInfo())
	assert.Nil(t, res.SourceLocations(errors.New("other")))
	assert.Len(t, res.GetCircuit().Opcodes, 4)
}

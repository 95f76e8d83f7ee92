package expr

import (
	"testing"

	"github.com/PolyhedraZK/acvm-compiler/field/bn254"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplify(t *testing.T) {
	f := &bn254.Field{}
	e := Expression{
		NewTerm(3, 0, f.FromInterface(2)),
		NewTerm(1, 2, f.FromInterface(5)),
		NewTerm(3, 0, f.FromInterface(-2)),
		NewTerm(2, 1, f.FromInterface(1)),
		NewTerm(0, 0, f.FromInterface(7)),
	}
	orig := e.Clone()
	s := e.Simplify(f)

	require.Len(t, s, 2)
	assert.Equal(t, NewTerm(0, 0, f.FromInterface(7)), s[0])
	assert.Equal(t, NewTerm(2, 1, f.FromInterface(6)), s[1])
	assert.True(t, e.Equal(orig), "simplify must not modify its receiver")
}

func TestSimplifyToEmpty(t *testing.T) {
	f := &bn254.Field{}
	e := Expression{
		NewTerm(4, 0, f.FromInterface(1)),
		NewTerm(4, 0, f.FromInterface(-1)),
	}
	assert.Empty(t, e.Simplify(f))
}

func TestWitnesses(t *testing.T) {
	f := &bn254.Field{}
	e := Expression{
		NewTerm(5, 2, f.One()),
		NewTerm(2, 0, f.One()),
		NewTerm(9, 0, f.One()),
		NewTerm(0, 0, f.One()),
	}
	assert.Equal(t, []int{2, 5, 9}, e.Witnesses())
	assert.Equal(t, 3, e.NbWitnesses())
	_, nbLinear, nbQuad := e.CountOfDegrees()
	assert.Equal(t, 2, nbLinear)
	assert.Equal(t, 1, nbQuad)
}

func TestFormat(t *testing.T) {
	f := &bn254.Field{}
	e := Expression{
		NewTerm(3, 5, f.FromInterface(2)),
		NewTerm(1, 0, f.FromInterface(7)),
		NewTerm(0, 0, f.FromInterface(4)),
	}
	assert.Equal(t, "v5*v3*2+v1*7+4", e.Format(f))
	assert.Equal(t, "0", Expression{}.Format(f))
}

package expr

import (
	"testing"

	"github.com/PolyhedraZK/acvm-compiler/field/bn254"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	f := &bn254.Field{}
	a := Expression{NewTerm(1, 0, f.One()), NewTerm(2, 1, f.One())}
	b := Expression{NewTerm(1, 0, f.One()), NewTerm(2, 1, f.FromInterface(3))}
	m := make(Map)
	assert.Equal(t, 4, m.Add(a, 4))
	assert.Equal(t, 4, m.Add(a.Clone(), 7))
	assert.Equal(t, 5, m.Add(b, 5))
	v, ok := m.Find(b)
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	_, ok = m.Find(Expression{})
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())
}

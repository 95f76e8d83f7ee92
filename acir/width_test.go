package acir

import (
	"testing"

	"github.com/PolyhedraZK/acvm-compiler/expr"
	"github.com/PolyhedraZK/acvm-compiler/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpressionWidth(t *testing.T) {
	for s, expected := range map[string]ExpressionWidth{
		"":          Unbounded,
		"unbounded": Unbounded,
		"Unbounded": Unbounded,
		"0":         Unbounded,
		"3":         NewBoundedWidth(3),
		" 4 ":       NewBoundedWidth(4),
	} {
		w, err := ParseExpressionWidth(s)
		require.NoError(t, err, s)
		assert.Equal(t, expected, w, s)
	}
	for _, s := range []string{"2", "-4", "wide"} {
		_, err := ParseExpressionWidth(s)
		assert.Error(t, err, s)
	}
	assert.Equal(t, "4", DefaultExpressionWidth.String())
	assert.Equal(t, "unbounded", Unbounded.String())
}

func TestFits(t *testing.T) {
	f := field.Default()
	one := f.One()
	e := expr.Expression{
		expr.NewTerm(1, 2, one),
		expr.NewTerm(3, 0, one),
		expr.NewTerm(0, 0, one),
	}
	assert.True(t, NewBoundedWidth(3).Fits(e))
	e = append(e, expr.NewTerm(4, 0, one))
	assert.False(t, NewBoundedWidth(3).Fits(e))
	assert.True(t, NewBoundedWidth(4).Fits(e))
	e = append(e, expr.NewTerm(3, 4, one))
	assert.False(t, NewBoundedWidth(10).Fits(e))
	assert.True(t, Unbounded.Fits(e))
}

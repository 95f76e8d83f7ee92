package bn254

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	f := &Field{}
	assert.Equal(t, 0, f.Field().Cmp(ecc.BN254.ScalarField()))

	a := f.FromInterface(6)
	b := f.FromInterface(4)
	assert.Equal(t, f.FromInterface(10), f.Add(a, b))
	assert.Equal(t, f.FromInterface(2), f.Sub(a, b))
	assert.Equal(t, f.FromInterface(24), f.Mul(a, b))
	assert.Equal(t, f.FromInterface(6), a, "operations must not modify their arguments")

	inv, ok := f.Inverse(b)
	assert.True(t, ok)
	assert.True(t, f.IsOne(f.Mul(inv, b)))

	_, ok = f.Inverse(f.FromInterface(0))
	assert.False(t, ok)

	minusOne := f.Neg(f.One())
	expected := new(big.Int).Sub(ecc.BN254.ScalarField(), big.NewInt(1))
	assert.Equal(t, 0, f.ToBigInt(minusOne).Cmp(expected))

	x, ok := f.Uint64(f.FromInterface(uint64(1) << 40))
	assert.True(t, ok)
	assert.Equal(t, uint64(1)<<40, x)
	_, ok = f.Uint64(minusOne)
	assert.False(t, ok)
}

func TestLayout(t *testing.T) {
	f := &Field{}
	assert.Equal(t, 254, f.FieldBitLen())
	assert.Equal(t, 32, f.SerializedLen())
	assert.Equal(t, 0, ScalarField.Cmp(f.Field()))
	assert.Equal(t, f.FromInterface(-1), f.Neg(f.One()))
	assert.Panics(t, func() { f.FromInterface(struct{}{}) })
}

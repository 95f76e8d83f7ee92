package field

import (
	"fmt"
	"math/big"

	"github.com/PolyhedraZK/acvm-compiler/field/bn254"
	"github.com/consensys/gnark/constraint"
)

type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
	SerializedLen() int
}

// ACIR is defined over the BN254 scalar field.
func Default() Field {
	return &bn254.Field{}
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}

func GetFieldId(f Field) uint64 {
	if f.Field().Cmp(bn254.ScalarField) == 0 {
		return 2
	}
	panic(fmt.Sprintf("unsupported field %v", f))
}

func GetFieldById(id uint64) (Field, error) {
	switch id {
	case 2:
		return &bn254.Field{}, nil
	}
	return nil, fmt.Errorf("unsupported field id %v", id)
}

func IsZero(c constraint.Element) bool {
	return c == constraint.Element{}
}

// Equal compares two reduced elements
func Equal(a, b constraint.Element) bool {
	return a == b
}

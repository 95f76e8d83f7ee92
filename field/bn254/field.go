// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bn254 is the field ACIR coefficients and witness values live in: the scalar field of
// the BN254 curve, exposed as a gnark constraint.Field.
//
// Elements are stored in Montgomery form in the low limbs of a constraint.Element, and are always
// reduced, so two elements are equal exactly when their Element values are equal. Every
// operation works on copies and leaves its arguments untouched.
package bn254

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"
)

// ScalarField is the order of the field, and the key field.GetFieldFromOrder looks it up by
var ScalarField = fr.Modulus()

var _ constraint.Field = (*Field)(nil)

// Field has no state, all its values share the same arithmetic
type Field struct{}

func toElement(e *fr.Element) constraint.Element {
	var r constraint.Element
	copy(r[:], e[:])
	return r
}

func (f *Field) FromInterface(i interface{}) constraint.Element {
	var e fr.Element
	if _, err := e.SetInterface(i); err != nil {
		panic(fmt.Sprintf("can't convert %v to a bn254 element: %v", i, err))
	}
	return toElement(&e)
}

func (f *Field) ToBigInt(c constraint.Element) *big.Int {
	e := (*fr.Element)(c[:])
	r := new(big.Int)
	e.BigInt(r)
	return r
}

func (f *Field) Mul(a, b constraint.Element) constraint.Element {
	_a := (*fr.Element)(a[:])
	_b := (*fr.Element)(b[:])
	_a.Mul(_a, _b)
	return a
}

func (f *Field) Add(a, b constraint.Element) constraint.Element {
	_a := (*fr.Element)(a[:])
	_b := (*fr.Element)(b[:])
	_a.Add(_a, _b)
	return a
}

func (f *Field) Sub(a, b constraint.Element) constraint.Element {
	_a := (*fr.Element)(a[:])
	_b := (*fr.Element)(b[:])
	_a.Sub(_a, _b)
	return a
}

func (f *Field) Neg(a constraint.Element) constraint.Element {
	e := (*fr.Element)(a[:])
	e.Neg(e)
	return a
}

func (f *Field) Inverse(a constraint.Element) (constraint.Element, bool) {
	e := (*fr.Element)(a[:])
	if e.IsZero() {
		return a, false
	}
	e.Inverse(e)
	return a, true
}

func (f *Field) IsOne(a constraint.Element) bool {
	e := (*fr.Element)(a[:])
	return e.IsOne()
}

func (f *Field) One() constraint.Element {
	e := fr.One()
	return toElement(&e)
}

func (f *Field) String(a constraint.Element) string {
	e := (*fr.Element)(a[:])
	return e.String()
}

func (f *Field) Uint64(a constraint.Element) (uint64, bool) {
	e := (*fr.Element)(a[:])
	if !e.IsUint64() {
		return 0, false
	}
	return e.Uint64(), true
}

func (f *Field) Field() *big.Int {
	return fr.Modulus()
}

func (f *Field) FieldBitLen() int {
	return fr.Bits
}

// SerializedLen is the size of an element in the ACIR binary format, little endian
func (f *Field) SerializedLen() int {
	return fr.Bytes
}

package test

import (
	"github.com/PolyhedraZK/acvm-compiler/field"
	"github.com/PolyhedraZK/acvm-compiler/solver"
	"github.com/consensys/gnark/constraint"
)

// SameValues checks that a and b agree on witnesses 1..n
func SameValues(a, b solver.Witness, n int) bool {
	for i := 1; i <= n; i++ {
		x, okx := a[i]
		y, oky := b[i]
		if okx != oky || (okx && !field.Equal(x, y)) {
			return false
		}
	}
	return true
}

// Tamper returns a copy of initial with witness i preset to v
func Tamper(initial solver.Witness, i int, v constraint.Element) solver.Witness {
	res := make(solver.Witness, len(initial)+1)
	for k, x := range initial {
		res[k] = x
	}
	res[i] = v
	return res
}

// An expression supporting quadratic terms, implemented based on gnark `frontend/internal/expr`.
//
// An ACIR AssertZero opcode constrains such an expression to be zero. Variable 0 is reserved for
// the constant one, so a term with VID0 == 0 is a constant.
package expr

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/consensys/gnark/constraint"
)

type Expression []Term

// Field is the arithmetic needed to normalize and print expressions.
type Field interface {
	Add(a, b constraint.Element) constraint.Element
	ToBigInt(c constraint.Element) *big.Int
}

// NewConstantExpression returns c
func NewConstantExpression(c constraint.Element) Expression {
	return Expression{NewTerm(0, 0, c)}
}

// NewLinearExpression returns c * v
func NewLinearExpression(v int, c constraint.Element) Expression {
	return Expression{NewTerm(v, 0, c)}
}

// NewQuadraticExpression returns c * v0 * v1
func NewQuadraticExpression(v0, v1 int, c constraint.Element) Expression {
	return Expression{NewTerm(v0, v1, c)}
}

func (e Expression) Clone() Expression {
	res := make(Expression, len(e))
	copy(res, e)
	return res
}

// Len return the length of the Variable (implements Sort interface)
func (e Expression) Len() int {
	return len(e)
}

// Equals returns true if both SORTED expressions are the same
//
// pre conditions: l and o are sorted
func (e Expression) Equal(o Expression) bool {
	if len(e) != len(o) {
		return false
	}
	for i := 0; i < len(e); i++ {
		if e[i] != o[i] {
			return false
		}
	}
	return true
}

// Swap swaps terms in the Variable (implements Sort interface)
func (e Expression) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
}

// Less returns true if variableID for term at i is less than variableID for term at j (implements Sort interface)
func (e Expression) Less(i, j int) bool {
	if e[i].VID0 != e[j].VID0 {
		return e[i].VID0 < e[j].VID0
	}
	return e[i].VID1 < e[j].VID1
}

// HashCode returns a fast-to-compute but NOT collision resistant hash code identifier for the linear expression
//
// requires sorted
func (e Expression) HashCode() uint64 {
	h := uint64(17)
	for _, val := range e {
		h = h*23 + val.HashCode()
	}
	return h
}

// Degree returns the degree of the polynomial
func (e Expression) Degree() int {
	res := 0
	for _, val := range e {
		deg := val.Degree()
		if deg == 2 {
			return 2
		}
		if deg > res {
			res = deg
		}
	}
	return res
}

// CountOfDegrees returns the number of terms of each degree
func (e Expression) CountOfDegrees() (int, int, int) {
	res0 := 0
	res1 := 0
	res2 := 0
	for _, val := range e {
		deg := val.Degree()
		if deg == 2 {
			res2++
		} else if deg == 1 {
			res1++
		} else {
			res0++
		}
	}
	return res0, res1, res2
}

func (e Expression) IsConstant() bool {
	for _, term := range e {
		if term.VID0 != 0 {
			return false
		}
		if term.VID1 != 0 {
			return false
		}
	}
	return true
}

// Witnesses returns the distinct variables referenced by e, in ascending order
func (e Expression) Witnesses() []int {
	seen := make(map[int]bool)
	res := []int{}
	add := func(v int) {
		if v != 0 && !seen[v] {
			seen[v] = true
			res = append(res, v)
		}
	}
	for _, term := range e {
		add(term.VID0)
		add(term.VID1)
	}
	sort.Ints(res)
	return res
}

// NbWitnesses returns the number of distinct variables referenced by e
func (e Expression) NbWitnesses() int {
	return len(e.Witnesses())
}

// Simplify sorts the terms, merges the ones over the same variables and drops zero coefficients.
// The result never aliases e.
func (e Expression) Simplify(field Field) Expression {
	s := e.Clone()
	sort.Stable(s)
	res := make(Expression, 0, len(s))
	for _, term := range s {
		if n := len(res); n > 0 && res[n-1].SameVariables(term) {
			res[n-1].Coeff = field.Add(res[n-1].Coeff, term.Coeff)
			continue
		}
		res = append(res, term)
	}
	j := 0
	for _, term := range res {
		if !isZero(term.Coeff) {
			res[j] = term
			j++
		}
	}
	return res[:j]
}

// Format renders e as a sum of terms, v3*v5*2+v1*7+4. The empty expression is 0.
func (e Expression) Format(field Field) string {
	if len(e) == 0 {
		return "0"
	}
	s := make([]string, len(e))
	for i, term := range e {
		coeff := field.ToBigInt(term.Coeff).String()
		if term.VID0 == 0 {
			s[i] = coeff
		} else if term.VID1 == 0 {
			s[i] = "v" + strconv.Itoa(term.VID0) + "*" + coeff
		} else {
			s[i] = "v" + strconv.Itoa(term.VID0) + "*v" + strconv.Itoa(term.VID1) + "*" + coeff
		}
	}
	return strings.Join(s, "+")
}

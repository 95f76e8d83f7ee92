package transformers

import (
	"sort"

	"github.com/PolyhedraZK/acvm-compiler/acir"
	"github.com/PolyhedraZK/acvm-compiler/expr"
	"github.com/PolyhedraZK/acvm-compiler/field"
	"github.com/consensys/gnark/constraint"
)

// csatTransformer splits expressions into intermediate variables.
//
// It tracks the witnesses a forward solver knows before each opcode (circuit inputs, outputs of
// the previous opcodes). Intermediate variables are built from such witnesses first, so that
// each emitted opcode has a single unknown when solved in order.
type csatTransformer struct {
	circuit  *acir.Circuit
	field    field.Field
	width    int
	solvable map[int]bool
	minusOne constraint.Element
}

func newCSatTransformer(c *acir.Circuit, width int) *csatTransformer {
	if width < acir.MinimumExpressionWidth {
		panic("width must be at least 3")
	}
	t := &csatTransformer{
		circuit:  c,
		field:    c.Field,
		width:    width,
		solvable: make(map[int]bool),
		minusOne: c.Field.Neg(c.Field.One()),
	}
	t.markSolvable(c.InputWitnesses())
	return t
}

func (t *csatTransformer) markSolvable(ws []int) {
	for _, w := range ws {
		t.solvable[w] = true
	}
}

func (t *csatTransformer) isSolvable(term *expr.Term) bool {
	return (term.VID0 == 0 || t.solvable[term.VID0]) && (term.VID1 == 0 || t.solvable[term.VID1])
}

func (t *csatTransformer) fits(e expr.Expression) bool {
	return acir.NewBoundedWidth(t.width).Fits(e)
}

// split returns the intermediate definitions followed by the residual of e
func (t *csatTransformer) split(e expr.Expression) []expr.Expression {
	e = e.Clone()
	res := []expr.Expression{}
	for !t.fits(e) {
		var intermediate expr.Expression
		if t.shouldExtractQuadratic(e) {
			e, intermediate = t.extractQuadratic(e)
		} else {
			e, intermediate = t.extractLinear(e)
		}
		res = append(res, intermediate)
	}
	return append(res, e)
}

// shouldExtractQuadratic is true while e has several quadratic terms. A single solvable one is
// also moved out when fewer than two solvable linear terms are left to group.
func (t *csatTransformer) shouldExtractQuadratic(e expr.Expression) bool {
	nbQuad, nbSolvableLinear := 0, 0
	quadSolvable := false
	for i := range e {
		if e[i].IsQuadratic() {
			nbQuad++
			quadSolvable = t.isSolvable(&e[i])
		} else if e[i].IsLinear() && t.isSolvable(&e[i]) {
			nbSolvableLinear++
		}
	}
	if nbQuad > 1 {
		return true
	}
	return nbQuad == 1 && quadSolvable && nbSolvableLinear < 2
}

// replace returns e without the terms at indices, plus 1 * v
func (t *csatTransformer) replace(e expr.Expression, indices []int, v int) expr.Expression {
	removed := make(map[int]bool, len(indices))
	for _, i := range indices {
		removed[i] = true
	}
	res := make(expr.Expression, 0, len(e)-len(indices)+1)
	for i, term := range e {
		if !removed[i] {
			res = append(res, term)
		}
	}
	res = append(res, expr.NewTerm(v, 0, t.field.One()))
	sort.Stable(res)
	return res
}

// define allocates v and returns (terms - v), the opcode defining it
func (t *csatTransformer) define(terms []expr.Term) (int, expr.Expression) {
	v := t.circuit.NewWitness()
	e := make(expr.Expression, 0, len(terms)+1)
	e = append(e, terms...)
	e = append(e, expr.NewTerm(v, 0, t.minusOne))
	solvable := true
	for i := range terms {
		solvable = solvable && t.isSolvable(&terms[i])
	}
	if solvable {
		t.solvable[v] = true
	}
	return v, e
}

// extractQuadratic moves one quadratic term of e into a new variable
func (t *csatTransformer) extractQuadratic(e expr.Expression) (expr.Expression, expr.Expression) {
	k := -1
	for i := range e {
		if !e[i].IsQuadratic() {
			continue
		}
		if k == -1 || (!t.isSolvable(&e[k]) && t.isSolvable(&e[i])) {
			k = i
		}
	}
	v, intermediate := t.define([]expr.Term{e[k]})
	return t.replace(e, []int{k}, v), intermediate
}

// extractLinear moves up to width-1 linear terms of e into a new variable, solvable ones first
func (t *csatTransformer) extractLinear(e expr.Expression) (expr.Expression, expr.Expression) {
	solvable := []int{}
	unsolvable := []int{}
	for i := range e {
		if !e[i].IsLinear() {
			continue
		}
		if t.isSolvable(&e[i]) {
			solvable = append(solvable, i)
		} else {
			unsolvable = append(unsolvable, i)
		}
	}
	candidates := solvable
	if len(candidates) < 2 {
		candidates = append(candidates, unsolvable...)
	}
	if len(candidates) < 2 {
		panic("unexpected: expression can't be split")
	}
	if len(candidates) > t.width-1 {
		candidates = candidates[:t.width-1]
	}
	terms := make([]expr.Term, len(candidates))
	for i, k := range candidates {
		terms[i] = e[k]
	}
	v, intermediate := t.define(terms)
	return t.replace(e, candidates, v), intermediate
}

package test

import (
	"errors"
	"testing"

	"github.com/PolyhedraZK/acvm-compiler/acir"
	"github.com/PolyhedraZK/acvm-compiler/solver"
)

type Assert struct {
	t *testing.T
}

func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

func (a *Assert) SolveSucceeded(c *acir.Circuit, initial solver.Witness) solver.Witness {
	a.t.Helper()
	w, err := solver.Solve(c, initial)
	if err != nil {
		a.t.Fatalf("should succeed: %v", err)
	}
	return w
}

func (a *Assert) SolveFailed(c *acir.Circuit, initial solver.Witness) *solver.UnsatisfiedConstraintError {
	a.t.Helper()
	_, err := solver.Solve(c, initial)
	var unsat *solver.UnsatisfiedConstraintError
	if !errors.As(err, &unsat) {
		a.t.Fatalf("should fail with an unsatisfied constraint, got %v", err)
	}
	return unsat
}

func (a *Assert) FitsWidth(c *acir.Circuit) {
	a.t.Helper()
	for i := range c.Opcodes {
		if c.Opcodes[i].Type == acir.OAssertZero && !c.ExpressionWidth.Fits(c.Opcodes[i].Expr) {
			a.t.Fatalf("opcode %d does not fit width %v: %s", i, c.ExpressionWidth, c.Opcodes[i].Expr.Format(c.Field))
		}
	}
}

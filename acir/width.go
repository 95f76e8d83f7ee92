package acir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PolyhedraZK/acvm-compiler/expr"
)

// MinimumExpressionWidth is the smallest bound the width transformer can reach:
// one quadratic term and one linear term
const MinimumExpressionWidth = 3

// ExpressionWidth bounds the number of distinct witnesses a single AssertZero opcode may reference
type ExpressionWidth struct {
	Bounded bool
	Width   int
}

var Unbounded = ExpressionWidth{}

var DefaultExpressionWidth = NewBoundedWidth(4)

func NewBoundedWidth(width int) ExpressionWidth {
	return ExpressionWidth{Bounded: true, Width: width}
}

func (w ExpressionWidth) Validate() error {
	if w.Bounded && w.Width < MinimumExpressionWidth {
		return fmt.Errorf("expression width must be at least %d, got %d", MinimumExpressionWidth, w.Width)
	}
	return nil
}

// Fits reports whether e can be a single opcode under this width: at most one quadratic term,
// and no more than Width distinct witnesses
func (w ExpressionWidth) Fits(e expr.Expression) bool {
	if !w.Bounded {
		return true
	}
	_, _, nbQuad := e.CountOfDegrees()
	return nbQuad <= 1 && e.NbWitnesses() <= w.Width
}

func (w ExpressionWidth) String() string {
	if !w.Bounded {
		return "unbounded"
	}
	return strconv.Itoa(w.Width)
}

// ParseExpressionWidth accepts "unbounded", "0" (also unbounded), or a width of at least 3
func ParseExpressionWidth(s string) (ExpressionWidth, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "unbounded") {
		return Unbounded, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return ExpressionWidth{}, fmt.Errorf("invalid expression width %q: %w", s, err)
	}
	if n == 0 {
		return Unbounded, nil
	}
	w := NewBoundedWidth(n)
	if err := w.Validate(); err != nil {
		return ExpressionWidth{}, err
	}
	return w, nil
}

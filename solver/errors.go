package solver

import (
	"errors"
	"fmt"

	"github.com/PolyhedraZK/acvm-compiler/acir"
)

var ErrMissingWitness = errors.New("missing witness value")

// UnsatisfiedConstraintError is returned when the opcode at Location does not hold.
// Message is the assert message attached to the location, if any.
type UnsatisfiedConstraintError struct {
	Location acir.OpcodeLocation
	Message  string
	Reason   string
}

func (e *UnsatisfiedConstraintError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("opcode %v failed: %s", e.Location, e.Message)
	}
	return fmt.Sprintf("opcode %v failed: %s", e.Location, e.Reason)
}

// OpcodeNotSolvableError is returned when the values known before an opcode are not enough to solve it
type OpcodeNotSolvableError struct {
	Location acir.OpcodeLocation
	Reason   string
}

func (e *OpcodeNotSolvableError) Error() string {
	return fmt.Sprintf("opcode %v is not solvable: %s", e.Location, e.Reason)
}

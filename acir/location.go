package acir

import (
	"fmt"
	"strconv"
	"strings"
)

// OpcodeLocation addresses either a top level opcode of a circuit, or an instruction of the
// unconstrained block hosted by the top level opcode at AcirIndex.
type OpcodeLocation struct {
	AcirIndex    int
	BrilligIndex int
	IsBrillig    bool
}

func NewAcirLocation(acirIndex int) OpcodeLocation {
	return OpcodeLocation{AcirIndex: acirIndex}
}

func NewBrilligLocation(acirIndex int, brilligIndex int) OpcodeLocation {
	return OpcodeLocation{AcirIndex: acirIndex, BrilligIndex: brilligIndex, IsBrillig: true}
}

// WithAcirIndex moves the location to another top level opcode.
// The brillig index is kept, passes never rewrite the inside of a block.
// A top level location always comes out with a zero brillig index.
func (l OpcodeLocation) WithAcirIndex(acirIndex int) OpcodeLocation {
	l.AcirIndex = acirIndex
	if !l.IsBrillig {
		l.BrilligIndex = 0
	}
	return l
}

func (l OpcodeLocation) String() string {
	if l.IsBrillig {
		return fmt.Sprintf("%d.%d", l.AcirIndex, l.BrilligIndex)
	}
	return strconv.Itoa(l.AcirIndex)
}

// ParseOpcodeLocation is the inverse of OpcodeLocation.String
func ParseOpcodeLocation(s string) (OpcodeLocation, error) {
	parseIndex := func(x string) (int, error) {
		i, err := strconv.Atoi(x)
		if err != nil {
			return 0, fmt.Errorf("invalid opcode location %q: %w", s, err)
		}
		if i < 0 {
			return 0, fmt.Errorf("invalid opcode location %q: negative index", s)
		}
		return i, nil
	}
	parts := strings.Split(s, ".")
	switch len(parts) {
	case 1:
		i, err := parseIndex(parts[0])
		if err != nil {
			return OpcodeLocation{}, err
		}
		return NewAcirLocation(i), nil
	case 2:
		i, err := parseIndex(parts[0])
		if err != nil {
			return OpcodeLocation{}, err
		}
		j, err := parseIndex(parts[1])
		if err != nil {
			return OpcodeLocation{}, err
		}
		return NewBrilligLocation(i, j), nil
	}
	return OpcodeLocation{}, fmt.Errorf("invalid opcode location %q", s)
}

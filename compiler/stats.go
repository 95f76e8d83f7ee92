package compiler

import (
	"fmt"
	"io"

	"github.com/PolyhedraZK/acvm-compiler/acir"
	"github.com/markkurossi/tabulate"
)

type StageStats struct {
	Name             string
	NbOpcodes        int
	NbAssertZero     int
	NbWitnesses      int
	NbAssertMessages int
	// maximum number of distinct witnesses in a single AssertZero
	MaxWidth int
}

type Stats struct {
	Stages []StageStats
}

func GetStageStats(name string, c *acir.Circuit) StageStats {
	r := StageStats{
		Name:             name,
		NbOpcodes:        len(c.Opcodes),
		NbWitnesses:      c.CurrentWitnessIndex,
		NbAssertMessages: len(c.AssertMessages),
	}
	for i := range c.Opcodes {
		if c.Opcodes[i].Type != acir.OAssertZero {
			continue
		}
		r.NbAssertZero++
		if w := c.Opcodes[i].Expr.NbWitnesses(); w > r.MaxWidth {
			r.MaxWidth = w
		}
	}
	return r
}

func (s *Stats) record(name string, c *acir.Circuit) {
	if s == nil {
		return
	}
	s.Stages = append(s.Stages, GetStageStats(name, c))
}

// Print renders one row per stage
func (s *Stats) Print(w io.Writer) {
	if len(s.Stages) == 0 {
		return
	}
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Stage").SetAlign(tabulate.ML)
	tab.Header("Opcodes").SetAlign(tabulate.MR)
	tab.Header("Expr").SetAlign(tabulate.MR)
	tab.Header("Width").SetAlign(tabulate.MR)
	tab.Header("Witnesses").SetAlign(tabulate.MR)
	tab.Header("Asserts").SetAlign(tabulate.MR)

	for _, stage := range s.Stages {
		row := tab.Row()
		row.Column(stage.Name)
		row.Column(fmt.Sprintf("%d", stage.NbOpcodes))
		row.Column(fmt.Sprintf("%d", stage.NbAssertZero))
		row.Column(fmt.Sprintf("%d", stage.MaxWidth))
		row.Column(fmt.Sprintf("%d", stage.NbWitnesses))
		row.Column(fmt.Sprintf("%d", stage.NbAssertMessages))
	}
	tab.Print(w)
}

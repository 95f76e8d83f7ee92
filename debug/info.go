// Package debug maps the opcodes of a circuit back to the source code they were generated from.
package debug

import (
	"fmt"
	"iter"
	"sort"

	"github.com/PolyhedraZK/acvm-compiler/acir"
	"github.com/fxamacker/cbor/v2"
)

// Location is a span in a source file
type Location struct {
	File  string `cbor:"file"`
	Start int    `cbor:"start"`
	End   int    `cbor:"end"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d-%d", l.File, l.Start, l.End)
}

// Locator is implemented by compiler.TransformationMap
type Locator interface {
	NewLocations(old acir.OpcodeLocation) iter.Seq[acir.OpcodeLocation]
}

// Info holds the call stack of source locations of every opcode
type Info struct {
	Locations map[acir.OpcodeLocation][]Location
}

func NewInfo() *Info {
	return &Info{Locations: make(map[acir.OpcodeLocation][]Location)}
}

func (d *Info) Add(loc acir.OpcodeLocation, src ...Location) {
	d.Locations[loc] = append(d.Locations[loc], src...)
}

// OpcodeLocation returns the call stack of loc, nil when unknown
func (d *Info) OpcodeLocation(loc acir.OpcodeLocation) []Location {
	return d.Locations[loc]
}

// UpdateAcir moves the locations to the opcodes derived from them by a compilation.
// Locations of removed opcodes are dropped.
func (d *Info) UpdateAcir(m Locator) {
	res := make(map[acir.OpcodeLocation][]Location, len(d.Locations))
	for old, src := range d.Locations {
		for loc := range m.NewLocations(old) {
			stack := make([]Location, len(src))
			copy(stack, src)
			res[loc] = stack
		}
	}
	d.Locations = res
}

type serializedInfo struct {
	Locations map[string][]Location `cbor:"locations"`
}

// Serialize encodes the info in CBOR, opcode locations being written as in OpcodeLocation.String
func (d *Info) Serialize() ([]byte, error) {
	s := serializedInfo{Locations: make(map[string][]Location, len(d.Locations))}
	for loc, src := range d.Locations {
		s.Locations[loc.String()] = src
	}
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(s)
}

func DeserializeInfo(buf []byte) (*Info, error) {
	var s serializedInfo
	if err := cbor.Unmarshal(buf, &s); err != nil {
		return nil, fmt.Errorf("decode debug info: %w", err)
	}
	d := NewInfo()
	for k, src := range s.Locations {
		loc, err := acir.ParseOpcodeLocation(k)
		if err != nil {
			return nil, fmt.Errorf("decode debug info: %w", err)
		}
		d.Locations[loc] = src
	}
	return d, nil
}

// SortedLocations returns the opcode locations having debug info, by ascending acir then brillig index
func (d *Info) SortedLocations() []acir.OpcodeLocation {
	res := make([]acir.OpcodeLocation, 0, len(d.Locations))
	for loc := range d.Locations {
		res = append(res, loc)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].AcirIndex != res[j].AcirIndex {
			return res[i].AcirIndex < res[j].AcirIndex
		}
		if res[i].IsBrillig != res[j].IsBrillig {
			return !res[i].IsBrillig
		}
		return res[i].BrilligIndex < res[j].BrilligIndex
	})
	return res
}

package compiler

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/PolyhedraZK/acvm-compiler/acir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseLookup(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 50; iter++ {
		nbOld := r.Intn(10) + 1
		positions := make(acir.PositionMap, r.Intn(30))
		for i := range positions {
			positions[i] = r.Intn(nbOld)
		}
		tm := NewTransformationMap(positions)
		require.Equal(t, len(positions), tm.Len())
		for old := 0; old < nbOld; old++ {
			expected := []acir.OpcodeLocation{}
			for i, p := range positions {
				if p == old {
					expected = append(expected, acir.NewAcirLocation(i))
				}
			}
			got := slices.Collect(tm.NewLocations(acir.NewAcirLocation(old)))
			if len(expected) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, expected, got)
			}
			for _, loc := range got {
				assert.Equal(t, old, tm.OldIndex(loc.AcirIndex))
			}
		}
	}
}

func TestBrilligLocations(t *testing.T) {
	tm := NewTransformationMap(acir.PositionMap{1, 0, 0, 2})
	got := slices.Collect(tm.NewLocations(acir.NewBrilligLocation(0, 5)))
	assert.Equal(t, []acir.OpcodeLocation{
		acir.NewBrilligLocation(1, 5),
		acir.NewBrilligLocation(2, 5),
	}, got)
	assert.Empty(t, slices.Collect(tm.NewLocations(acir.NewBrilligLocation(3, 0))))
}

func TestNewLocationsEarlyBreak(t *testing.T) {
	tm := NewTransformationMap(acir.PositionMap{0, 0, 0})
	seq := tm.NewLocations(acir.NewAcirLocation(0))
	for loc := range seq {
		assert.Equal(t, acir.NewAcirLocation(0), loc)
		break
	}
	// the sequence can be consumed again from the start
	assert.Len(t, slices.Collect(seq), 3)
	assert.Len(t, slices.Collect(seq), 3)
}

func TestMapIsCopied(t *testing.T) {
	positions := acir.PositionMap{0, 1}
	tm := NewTransformationMap(positions)
	positions[0] = 1
	assert.Equal(t, 0, tm.OldIndex(0))
}

func TestTransformAssertMessages(t *testing.T) {
	// opcodes [A, B, C], B removed and C split in two, then left as is
	composed := acir.PositionMap{0, 2, 2}.Compose(acir.IdentityPositions(3))
	require.Equal(t, acir.PositionMap{0, 2, 2}, composed)
	tm := NewTransformationMap(composed)
	messages := []acir.AssertMessage{
		{Location: acir.NewAcirLocation(1), Message: "b failed"},
		{Location: acir.NewAcirLocation(2), Message: "c failed"},
	}
	assert.Equal(t, []acir.AssertMessage{
		{Location: acir.NewAcirLocation(1), Message: "c failed"},
		{Location: acir.NewAcirLocation(2), Message: "c failed"},
	}, transformAssertMessages(messages, tm))
}

func TestTransformAssertMessagesOrder(t *testing.T) {
	tm := NewTransformationMap(acir.PositionMap{1, 0, 1})
	messages := []acir.AssertMessage{
		{Location: acir.NewAcirLocation(1), Message: "first"},
		{Location: acir.NewAcirLocation(0), Message: "second"},
		{Location: acir.NewAcirLocation(1), Message: "third"},
	}
	assert.Equal(t, []acir.AssertMessage{
		{Location: acir.NewAcirLocation(0), Message: "first"},
		{Location: acir.NewAcirLocation(2), Message: "first"},
		{Location: acir.NewAcirLocation(1), Message: "second"},
		{Location: acir.NewAcirLocation(0), Message: "third"},
		{Location: acir.NewAcirLocation(2), Message: "third"},
	}, transformAssertMessages(messages, tm))
	assert.Empty(t, transformAssertMessages(nil, tm))
}

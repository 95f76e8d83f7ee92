package acir

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomPositions(r *rand.Rand, n int, nbOld int) PositionMap {
	p := make(PositionMap, n)
	for i := range p {
		p[i] = r.Intn(nbOld)
	}
	return p
}

func TestComposition(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 100; iter++ {
		nbOld := r.Intn(20) + 1
		nbMid := r.Intn(30) + 1
		first := randomPositions(r, nbMid, nbOld)
		second := randomPositions(r, r.Intn(40), nbMid)
		composed := first.Compose(second)
		assert.Len(t, composed, len(second))
		for i := range composed {
			assert.Equal(t, first[second[i]], composed[i])
		}
		composed.Check(nbOld)
	}
}

func TestIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for iter := 0; iter < 20; iter++ {
		nbOld := r.Intn(10) + 1
		p := randomPositions(r, r.Intn(15)+1, nbOld)
		assert.Equal(t, p, p.Compose(IdentityPositions(len(p))))
		assert.Equal(t, p, IdentityPositions(nbOld).Compose(p))
	}
}

func TestEmptyPositions(t *testing.T) {
	assert.Empty(t, IdentityPositions(0).Compose(PositionMap{}))
	assert.Empty(t, PositionMap{0, 1}.Compose(PositionMap{}))
	PositionMap{}.Check(0)
}

func TestOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { PositionMap{0, 1}.Compose(PositionMap{0, 2}) })
	assert.Panics(t, func() { PositionMap{0, 1}.Compose(PositionMap{-1}) })
	assert.Panics(t, func() { PositionMap{0, 3}.Check(3) })
	assert.NotPanics(t, func() { PositionMap{0, 2}.Check(3) })
}

package expr

// Map associates an int to sorted expressions, bucketed by HashCode
type Map map[uint64][]mapEntry

type mapEntry struct {
	e Expression
	v int
}

func (m Map) Find(e Expression) (int, bool) {
	for _, x := range m[e.HashCode()] {
		if x.e.Equal(e) {
			return x.v, true
		}
	}
	return 0, false
}

// Add stores v for e unless an equal expression is already present, and returns the value kept
func (m Map) Add(e Expression, v int) int {
	h := e.HashCode()
	for _, x := range m[h] {
		if x.e.Equal(e) {
			return x.v
		}
	}
	m[h] = append(m[h], mapEntry{
		e: e,
		v: v,
	})
	return v
}

func (m Map) Len() int {
	n := 0
	for _, s := range m {
		n += len(s)
	}
	return n
}

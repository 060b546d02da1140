package memo

type mapTable struct {
	m map[int64]int
}

// NewMap returns an unbounded table backed by a Go map.
func NewMap() Table {
	return &mapTable{m: make(map[int64]int)}
}

func (t *mapTable) Load(n int64) (int, bool, error) {
	v, ok := t.m[n]
	return v, ok, nil
}

func (t *mapTable) Store(n int64, steps int) error {
	t.m[n] = steps
	return nil
}

func (t *mapTable) Len() int {
	return len(t.m)
}

func (t *mapTable) Close() error {
	return nil
}

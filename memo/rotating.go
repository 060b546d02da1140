package memo

import "fmt"

// rotatingTable holds two generations of entries. Stores go to the head
// generation; when it is full the tail is cleared and becomes the new head.
// Loads consult both.
type rotatingTable struct {
	gens    [2]map[int64]int
	headIdx int
	maxSize int
}

// NewRotating returns a table that keeps between capacity and 2*capacity entries.
func NewRotating(capacity int64) (Table, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &rotatingTable{
		gens:    [2]map[int64]int{make(map[int64]int), make(map[int64]int)},
		maxSize: int(capacity),
	}, nil
}

func (t *rotatingTable) Load(n int64) (int, bool, error) {
	if v, ok := t.gens[t.headIdx][n]; ok {
		return v, true, nil
	}
	v, ok := t.gens[1-t.headIdx][n]
	return v, ok, nil
}

func (t *rotatingTable) Store(n int64, steps int) error {
	if len(t.gens[t.headIdx]) >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		clear(t.gens[t.headIdx])
	}
	t.gens[t.headIdx][n] = steps
	return nil
}

func (t *rotatingTable) Len() int {
	return len(t.gens[0]) + len(t.gens[1])
}

func (t *rotatingTable) Close() error {
	return nil
}

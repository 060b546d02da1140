package pure

import "fmt"

// Table maps a positive integer to its step count.
// A value, once stored, must be the true step count of its key.
type Table interface {
	Load(n int64) (steps int, ok bool, err error)
	Store(n int64, steps int) error
}

// Stats counts the table traffic of a Memoizer.
type Stats struct {
	Lookups uint64
	Hits    uint64
	Stores  uint64
}

// Memoizer counts Collatz steps, remembering the count of every value it walks through.
//
// Steps walks forward from n, pushing each value it has no count for, until it
// reaches 1 or a value already in the table. It then walks the pushed values
// backwards, storing 1 + the count of the value after each one. The call
// stack stays flat however long the sequence is.
//
// A Memoizer is not safe for concurrent use.
type Memoizer struct {
	table Table
	path  []int64
	stats Stats
}

// NewMemoizer returns a Memoizer that reads and fills table.
func NewMemoizer(table Table) *Memoizer {
	return &Memoizer{
		table: table,
		path:  make([]int64, 0, 512),
	}
}

// Steps returns the number of Collatz steps from n to 1.
func (m *Memoizer) Steps(n int64) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrNotPositive, n)
	}

	path := m.path[:0]
	steps := 0
	for cur := n; cur != 1; {
		m.stats.Lookups++
		cached, ok, err := m.table.Load(cur)
		if err != nil {
			return 0, fmt.Errorf("load %d: %w", cur, err)
		}
		if ok {
			m.stats.Hits++
			steps = cached
			break
		}
		path = append(path, cur)
		if cur, err = Next(cur); err != nil {
			return 0, err
		}
	}

	for i := len(path) - 1; i >= 0; i-- {
		steps++
		if err := m.table.Store(path[i], steps); err != nil {
			return 0, fmt.Errorf("store %d: %w", path[i], err)
		}
		m.stats.Stores++
	}
	m.path = path[:0]
	return steps, nil
}

// Stats reports the table traffic of every Steps call so far.
func (m *Memoizer) Stats() Stats {
	return m.stats
}

package memo

import (
	"fmt"

	ristretto "github.com/dgraph-io/ristretto/v2"
)

// Waiter is implemented by tables whose stores are applied asynchronously.
type Waiter interface {
	// Wait blocks until buffered stores have been applied.
	Wait()
}

var _ Waiter = (*ristrettoTable)(nil)

type ristrettoTable struct {
	cache *ristretto.Cache[int64, int]
}

// NewRistretto returns a table that holds roughly capacity entries.
// Each entry costs 1; ristretto decides which entries to admit and evict.
func NewRistretto(capacity int64) (Table, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[int64, int]{
		NumCounters:        10 * capacity, // 10x the expected number of entries
		MaxCost:            capacity,      // cost is an entry count, not bytes
		IgnoreInternalCost: true,
		BufferItems:        64,
		Metrics:            true,
	})
	if err != nil {
		return nil, err
	}
	return &ristrettoTable{cache: cache}, nil
}

func (r *ristrettoTable) Load(n int64) (int, bool, error) {
	v, ok := r.cache.Get(n)
	return v, ok, nil
}

// Store hands the entry to ristretto's write buffer. It may be dropped.
func (r *ristrettoTable) Store(n int64, steps int) error {
	r.cache.Set(n, steps, 1)
	return nil
}

func (r *ristrettoTable) Wait() {
	r.cache.Wait()
}

func (r *ristrettoTable) Len() int {
	m := r.cache.Metrics
	return int(m.KeysAdded() - m.KeysEvicted())
}

func (r *ristrettoTable) Close() error {
	r.cache.Close()
	return nil
}

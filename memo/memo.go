package memo

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/collatz_ive_go/pure"
)

// Backend names a Table implementation.
type Backend string

const (
	// BackendMap keeps every entry in a Go map. Entries are never removed.
	BackendMap Backend = "map"

	// BackendRotating keeps at most two generations of capacity entries each.
	BackendRotating Backend = "rotating"

	// BackendMemDB keeps every entry in a go-memdb table. Entries are never removed.
	BackendMemDB Backend = "memdb"

	// BackendRistretto keeps a bounded, admission-controlled set of entries.
	BackendRistretto Backend = "ristretto"
)

// DefaultCapacity bounds the rotating and ristretto backends when no capacity is given.
const DefaultCapacity = 1 << 24

var (
	ErrUnknownBackend  = errors.New("unknown memo backend")
	ErrInvalidCapacity = errors.New("memo capacity must be positive")
)

// Table is a pure.Table that can report its size and release its resources.
//
// Bounded backends may drop entries. A dropped entry is recomputed on the next
// walk that reaches it, so step counts never change.
type Table interface {
	pure.Table
	Len() int
	Close() error
}

// Open creates the table for backend. capacity is used by bounded backends only.
func Open(backend Backend, capacity int64) (Table, error) {
	switch backend {
	case BackendMap, "":
		return NewMap(), nil
	case BackendRotating:
		return NewRotating(capacity)
	case BackendMemDB:
		return NewMemDB()
	case BackendRistretto:
		return NewRistretto(capacity)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Backends lists every name Open accepts.
func Backends() []Backend {
	return []Backend{BackendMap, BackendRotating, BackendMemDB, BackendRistretto}
}

package memo

import (
	memdb "github.com/hashicorp/go-memdb"
)

const (
	memdbTable = "memo"
	memdbIndex = "id"
)

type entry struct {
	N     int64
	Steps int
}

var memdbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		memdbTable: {
			Name: memdbTable,
			Indexes: map[string]*memdb.IndexSchema{
				memdbIndex: {
					Name:    memdbIndex,
					Unique:  true,
					Indexer: &memdb.IntFieldIndex{Field: "N"},
				},
			},
		},
	},
}

type memDBTable struct {
	db   *memdb.MemDB
	size int
}

// NewMemDB returns an unbounded table stored in a go-memdb database.
func NewMemDB() (Table, error) {
	db, err := memdb.NewMemDB(memdbSchema)
	if err != nil {
		return nil, err
	}
	return &memDBTable{db: db}, nil
}

func (m *memDBTable) Load(n int64) (int, bool, error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(memdbTable, memdbIndex, n)
	if err != nil || raw == nil {
		return 0, false, err
	}
	return raw.(*entry).Steps, true, nil
}

func (m *memDBTable) Store(n int64, steps int) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	old, err := txn.First(memdbTable, memdbIndex, n)
	if err != nil {
		return err
	}
	if err := txn.Insert(memdbTable, &entry{N: n, Steps: steps}); err != nil {
		return err
	}
	txn.Commit()

	if old == nil {
		m.size++
	}
	return nil
}

func (m *memDBTable) Len() int {
	return m.size
}

func (m *memDBTable) Close() error {
	return nil
}

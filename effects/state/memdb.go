package state

import (
	"fmt"

	memdb "github.com/hashicorp/go-memdb"
)

const (
	memDBTable = "state"
	memDBIndex = "id"
)

type memDBRecord struct {
	Key   string
	Value any
}

// MemDBRepo is a Repo backed by an in-memory go-memdb database.
// Writes are transactional, so CompareAndSwap is atomic.
type MemDBRepo struct {
	db *memdb.MemDB
}

// NewMemDBRepo creates a MemDBRepo with its own single-table schema.
func NewMemDBRepo() (*MemDBRepo, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memDBTable: {
				Name: memDBTable,
				Indexes: map[string]*memdb.IndexSchema{
					memDBIndex: {
						Name:    memDBIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("create memdb: %w", err)
	}
	return &MemDBRepo{db: db}, nil
}

func (m *MemDBRepo) first(txn *memdb.Txn, key string) (*memDBRecord, error) {
	raw, err := txn.First(memDBTable, memDBIndex, key)
	if err != nil || raw == nil {
		return nil, err
	}
	return raw.(*memDBRecord), nil
}

func (m *MemDBRepo) Load(key string) (value any, ok bool, err error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	rec, err := m.first(txn, key)
	if err != nil || rec == nil {
		return nil, false, err
	}
	return rec.Value, true, nil
}

func (m *MemDBRepo) Store(key string, value any) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(memDBTable, &memDBRecord{Key: key, Value: value}); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (m *MemDBRepo) Delete(key string) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	rec, err := m.first(txn, key)
	if err != nil || rec == nil {
		return err
	}
	if err := txn.Delete(memDBTable, rec); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (m *MemDBRepo) CompareAndSwap(key string, old, new any) (swapped bool, err error) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	rec, err := m.first(txn, key)
	if err != nil {
		return false, err
	}
	var actual any
	if rec != nil {
		actual = rec.Value
	}
	if !matches(old, actual, rec != nil) {
		return false, nil
	}

	if err := txn.Insert(memDBTable, &memDBRecord{Key: key, Value: new}); err != nil {
		return false, err
	}
	txn.Commit()
	return true, nil
}

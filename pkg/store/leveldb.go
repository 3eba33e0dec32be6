package store

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	ldberr "github.com/syndtr/goleveldb/leveldb/errors"
	ldbs "github.com/syndtr/goleveldb/leveldb/storage"
)

var _ Store = (*LevelDB)(nil)

// LevelDB uses LevelDB to store values.
type LevelDB struct {
	db *leveldb.DB
}

// NewInMemoryLevelDB returns a LevelDB store backed by memory storage.
func NewInMemoryLevelDB() (*LevelDB, error) {
	db, err := leveldb.Open(ldbs.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &LevelDB{db: db}, nil
}

// NewLevelDB opens or creates the database at path, recovering it when corrupted.
func NewLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		if !ldberr.IsCorrupted(err) {
			return nil, fmt.Errorf("open leveldb %s: %w", path, err)
		}
		db, err = leveldb.RecoverFile(path, nil)
		if err != nil {
			return nil, fmt.Errorf("recover leveldb %s: %w", path, err)
		}
	}
	return &LevelDB{db: db}, nil
}

func (s *LevelDB) Get(key string) (string, error) {
	data, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(data), nil
}

func (s *LevelDB) Set(key, value string) error {
	return s.db.Put([]byte(key), []byte(value), nil)
}

func (s *LevelDB) Delete(key string) error {
	return s.db.Delete([]byte(key), nil)
}

func (s *LevelDB) Close() error {
	return s.db.Close()
}

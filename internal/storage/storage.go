package storage

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"
)

// Cache is a persistent, Zobrist-hash-keyed key/value store backed by
// BadgerDB. It underlies the engine's optional persistent analysis cache
// (`setoption name PersistHash value true`): transposition-table entries
// and correction-history snapshots survive a process restart instead of
// being rebuilt from scratch.
//
// Cache deliberately knows nothing about TTEntry/CorrectionHistory layout —
// it stores opaque byte values under uint64 keys — so internal/engine can
// depend on internal/storage without a reverse import.
type Cache struct {
	db *badger.DB
}

// NewCache opens (creating if necessary) the persistent cache database in
// the platform data directory.
func NewCache() (*Cache, error) {
	dir, err := GetCacheDir()
	if err != nil {
		return nil, err
	}
	return NewCacheAt(dir)
}

// NewCacheAt opens the cache database at an explicit directory, primarily
// for tests that want an isolated temp dir.
func NewCacheAt(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func hashKey(prefix byte, hash uint64) []byte {
	key := make([]byte, 9)
	key[0] = prefix
	binary.BigEndian.PutUint64(key[1:], hash)
	return key
}

// Prefixes distinguish the different record kinds sharing one database.
const (
	prefixTTEntry    byte = 't'
	prefixCorrection byte = 'c'
)

// GetTTEntry fetches the raw bytes for a persisted transposition entry, if any.
func (c *Cache) GetTTEntry(hash uint64) ([]byte, bool, error) {
	return c.get(hashKey(prefixTTEntry, hash))
}

// SetTTEntry persists the raw bytes of a transposition entry under hash.
func (c *Cache) SetTTEntry(hash uint64, value []byte) error {
	return c.set(hashKey(prefixTTEntry, hash), value)
}

// GetCorrection fetches a persisted correction-history bucket, if any.
func (c *Cache) GetCorrection(bucket uint64) ([]byte, bool, error) {
	return c.get(hashKey(prefixCorrection, bucket))
}

// SetCorrection persists a correction-history bucket.
func (c *Cache) SetCorrection(bucket uint64, value []byte) error {
	return c.set(hashKey(prefixCorrection, bucket), value)
}

func (c *Cache) get(key []byte) ([]byte, bool, error) {
	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = append([]byte(nil), val...)
			return nil
		})
	})
	return value, value != nil, err
}

func (c *Cache) set(key, value []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Flush forces pending writes to be durably persisted.
func (c *Cache) Flush() error {
	return c.db.Sync()
}

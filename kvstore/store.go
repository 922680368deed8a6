// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kvstore

import (
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
)

// DB is a handle onto the on-disk key-value store. It is safe for
// concurrent use by multiple goroutines: goleveldb itself permits
// concurrent readers and writers and serialises per-key writes
// internally, so no additional locking is layered on top here.
type DB struct {
	ldb *leveldb.DB
}

// Open opens (creating if absent) the key-value store at path. The
// returned DB survives process restart: every partition's data lives in
// the same on-disk leveldb instance at path.
func Open(path string) (*DB, error) {
	ldb, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &DB{ldb: ldb}, nil
}

// Close releases the underlying leveldb handle.
func (db *DB) Close() error {
	return db.ldb.Close()
}

// Get returns the raw value for key in partition p, or ErrNotFound if
// absent.
func (db *DB) Get(p Partition, key []byte) ([]byte, error) {
	val, err := db.ldb.Get(p.prefixed(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Put writes the raw value for key in partition p. Durability is "at
// least flushed to the OS page cache before returning" — the default
// goleveldb write options, which do not force an fsync, already satisfy
// that contract without paying for a sync on every write.
func (db *DB) Put(p Partition, key, value []byte) error {
	return db.ldb.Put(p.prefixed(key), value, nil)
}

// Delete removes key from partition p. Deleting an absent key is not an
// error.
func (db *DB) Delete(p Partition, key []byte) error {
	return db.ldb.Delete(p.prefixed(key), nil)
}

// Has reports whether key exists in partition p.
func (db *DB) Has(p Partition, key []byte) (bool, error) {
	return db.ldb.Has(p.prefixed(key), nil)
}

// GetTyped reads key from partition p and gob-decodes it into out. It
// returns ErrNotFound if the key is absent and ErrCorrupt if the stored
// bytes don't decode as the requested type.
func GetTyped[T any](db *DB, p Partition, key []byte, out *T) error {
	raw, err := db.Get(p, key)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// PutTyped gob-encodes val and writes it to key in partition p.
func PutTyped[T any](db *DB, p Partition, key []byte, val T) error {
	raw, err := encode(val)
	if err != nil {
		return err
	}
	return db.Put(p, key, raw)
}

// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kvstore

import (
	"github.com/syndtr/goleveldb/leveldb/util"
)

// KV is one (key, value) pair yielded by a typed partition scan, with
// the partition tag byte already stripped from Key.
type KV[T any] struct {
	Key   []byte
	Value T
}

// IterateTyped scans every entry in partition p and gob-decodes each
// value as T, invoking fn for each pair in key order. A corrupt value is
// passed to fn as a zero T alongside ErrCorrupt rather than aborting the
// whole scan, so one bad record can't hide the rest of the partition.
//
// This is a full-partition scan: the spec accepts that cost in exchange
// for not needing a secondary index, since per-token and per-address
// cardinality is small. fn returning a non-nil error stops the scan
// early and that error is returned to the caller.
func IterateTyped[T any](db *DB, p Partition, fn func(key []byte, val T, err error) error) error {
	prefix := p.prefixed(nil)
	iter := db.ldb.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	for iter.Next() {
		key := make([]byte, len(iter.Key())-1)
		copy(key, iter.Key()[1:])

		var val T
		err := decode(iter.Value(), &val)
		if cbErr := fn(key, val, err); cbErr != nil {
			return cbErr
		}
	}
	return iter.Error()
}

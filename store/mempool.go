// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import "github.com/toole-brendan/bitnotify/kvstore"

// MarkSeen records txid as seen in the mempool at unix time seenAt.
func (s *Store) MarkSeen(txid string, seenAt int64) error {
	return kvstore.PutTyped(s.db, kvstore.Mempool, []byte(txid), seenAt)
}

// IsSeen reports whether txid is present in the mempool-seen cache.
// Per the open question in spec.md §9, presence is the only thing that
// matters here: any successfully decoded entry counts as "seen",
// regardless of the timestamp it carries.
func (s *Store) IsSeen(txid string) (bool, error) {
	var seenAt int64
	err := kvstore.GetTyped(s.db, kvstore.Mempool, []byte(txid), &seenAt)
	if err == kvstore.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ForgetSeen removes txid from the mempool-seen cache. The Block
// Processor calls this once a previously-mempool-only tx is confirmed.
func (s *Store) ForgetSeen(txid string) error {
	return s.db.Delete(kvstore.Mempool, []byte(txid))
}

// SeenEntry is one (txid, first-seen time) pair from the mempool-seen
// cache.
type SeenEntry struct {
	Txid   string
	SeenAt int64
}

// IterSeen returns every entry currently in the mempool-seen cache.
func (s *Store) IterSeen() ([]SeenEntry, error) {
	var result []SeenEntry
	err := kvstore.IterateTyped(s.db, kvstore.Mempool, func(key []byte, seenAt int64, decodeErr error) error {
		if decodeErr != nil {
			return nil
		}
		result = append(result, SeenEntry{Txid: string(key), SeenAt: seenAt})
		return nil
	})
	return result, err
}

// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kvstore is a thin typed layer over an embedded, persistent
// key-value engine (goleveldb). It exposes five disjoint partitions as
// the sole unit of namespacing; nothing above this package ever sees a
// raw leveldb key.
package kvstore

// Partition names one of the five disjoint key spaces the notification
// service persists into. Partitions never overlap: a key written to one
// partition is invisible to every other.
type Partition byte

const (
	// Network holds the chain cursor (last fully-processed block height).
	Network Partition = iota

	// Token holds one empty sentinel entry per registered subscriber
	// token.
	Token

	// Address holds, per watched address, the set of tokens watching it.
	Address

	// Notification holds queued notifications awaiting subscriber
	// retrieval.
	Notification

	// Mempool holds the mempool-seen cache: txid -> first-seen time.
	Mempool
)

// prefixed returns the physical leveldb key for a logical key within p:
// a single partition-tag byte followed by the caller's key bytes. This
// is the only place partition scoping happens.
func (p Partition) prefixed(key []byte) []byte {
	out := make([]byte, 1+len(key))
	out[0] = byte(p)
	copy(out[1:], key)
	return out
}

// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import "github.com/toole-brendan/bitnotify/kvstore"

// cursorKey is the single fixed key the chain cursor is stored under in
// the Network partition.
var cursorKey = []byte("last_processed_block")

// LastProcessedBlock returns the height of the last block the Block
// Processor has fully processed, or 0 with ErrNotFound if no cursor has
// been written yet (the processor initialises it lazily on first run).
func (s *Store) LastProcessedBlock() (uint32, error) {
	var height uint32
	err := kvstore.GetTyped(s.db, kvstore.Network, cursorKey, &height)
	if err == kvstore.ErrNotFound {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return height, nil
}

// SetLastProcessedBlock advances the chain cursor. Only the Block
// Processor calls this, and only after a block has been fully
// classified.
func (s *Store) SetLastProcessedBlock(height uint32) error {
	return kvstore.PutTyped(s.db, kvstore.Network, cursorKey, height)
}

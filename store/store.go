// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import "github.com/toole-brendan/bitnotify/kvstore"

// Store is the domain-typed surface consumed by the chain watcher, the
// retention cleaners and the core API façade.
type Store struct {
	db *kvstore.DB
}

// New wraps an opened kvstore.DB in the domain-typed Store surface.
func New(db *kvstore.DB) *Store {
	return &Store{db: db}
}

// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store is a domain-typed surface over kvstore: it owns every
// persisted byte the notification service writes (tokens, watched
// addresses, notifications, the mempool-seen cache, and the chain
// cursor) and enforces the invariants in between them. Nothing outside
// this package writes to the database directly.
package store

import (
	"errors"

	"github.com/toole-brendan/bitnotify/kvstore"
)

var (
	// ErrNotFound is returned by LastProcessedBlock when no chain cursor
	// has been written yet.
	ErrNotFound = errors.New("store: not found")

	// ErrAlreadyExists is returned by CreateToken for a token that is
	// already registered.
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInvalidValue is returned when a value fails domain validation,
	// e.g. a token that isn't 50+ hex characters.
	ErrInvalidValue = errors.New("store: invalid value")

	// ErrCorrupt is returned when a stored value exists but fails to
	// deserialise as the type the caller expects.
	ErrCorrupt = kvstore.ErrCorrupt
)

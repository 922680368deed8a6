// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kvstore

import "errors"

var (
	// ErrNotFound is returned when a key does not exist in a partition.
	ErrNotFound = errors.New("kvstore: key not found")

	// ErrCorrupt is returned when a value exists but fails to decode as
	// the type the caller asked for. This is deliberately distinct from
	// ErrNotFound so callers can tell "absent" from "unreadable" apart.
	ErrCorrupt = errors.New("kvstore: value is corrupt")
)

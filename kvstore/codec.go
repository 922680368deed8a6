// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kvstore

import (
	"bytes"
	"encoding/gob"
)

// encode gob-encodes v. gob is self-describing and already a standard
// library citizen of every btcsuite-adjacent daemon's config/state
// persistence; nothing in the retrieved pack carries a lighter-weight
// structured codec we could reach for instead, so this one ambient
// concern stays on the standard library (see DESIGN.md).
func encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decode gob-decodes data into out. A malformed payload is reported as
// ErrCorrupt, never as a bare gob error, so callers can distinguish it
// from ErrNotFound.
func decode(data []byte, out interface{}) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(out); err != nil {
		return ErrCorrupt
	}
	return nil
}

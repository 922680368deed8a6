// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addresses

import "errors"

var (
	// ErrInvalidKey is returned when an extended public key string fails
	// base58check decoding, has an unrecognised prefix, or fails BIP32
	// parsing once normalised to its canonical xpub form.
	ErrInvalidKey = errors.New("addresses: invalid extended public key")

	// ErrInvalidScriptType is returned when a multisig script type is
	// not one of "p2wsh", "p2shwsh" or "p2sh".
	ErrInvalidScriptType = errors.New("addresses: invalid multisig script type")

	// ErrInvalidSignatureCount is returned when the required signature
	// count m exceeds the number of supplied cosigner keys n.
	ErrInvalidSignatureCount = errors.New("addresses: required signatures exceed key count")

	// ErrMixedPrefixes is returned when a multisig key set mixes more
	// than one Electrum-style extended key prefix.
	ErrMixedPrefixes = errors.New("addresses: cosigner keys use mixed prefixes")
)

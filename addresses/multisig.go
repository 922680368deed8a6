// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addresses

import (
	"bytes"
	"sort"
)

// DeriveMultisig expands a set of n cosigner extended public keys into
// m-of-n multisig addresses for change/index in [from, to], inclusive.
//
// All keys must share the same Electrum-style prefix; per child index
// the n derived pubkeys are sorted lexicographically (BIP67) before the
// CHECKMULTISIG script is built, so the result is reproducible
// regardless of the order cosigners were supplied in.
func DeriveMultisig(scriptType string, m int, xpubs []string, from, to uint32, isChange bool) ([]string, error) {
	switch scriptType {
	case ScriptTypeP2WSH, ScriptTypeP2SHWSH, ScriptTypeP2SH:
	default:
		return nil, ErrInvalidScriptType
	}

	n := len(xpubs)
	if n == 0 {
		return nil, ErrInvalidKey
	}
	if m <= 0 || m > n {
		return nil, ErrInvalidSignatureCount
	}
	if from > to {
		return nil, ErrInvalidKey
	}

	decodedKeys := make([]*decodedKey, n)
	var commonPrefix string
	for i, xkey := range xpubs {
		decoded, err := decodeExtendedKey(xkey)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			commonPrefix = decoded.prefix
		} else if decoded.prefix != commonPrefix {
			return nil, ErrMixedPrefixes
		}
		decodedKeys[i] = decoded
	}

	change := uint32(0)
	if isChange {
		change = 1
	}

	addrs := make([]string, 0, to-from+1)
	for idx := from; idx <= to; idx++ {
		pubKeys := make([][]byte, n)
		for i, decoded := range decodedKeys {
			pub, err := childPubKeyBytes(decoded.key, change, idx)
			if err != nil {
				return nil, err
			}
			pubKeys[i] = pub
		}

		sortPubKeysBIP67(pubKeys)

		script, err := multisigScript(m, n, pubKeys)
		if err != nil {
			return nil, err
		}
		addr, err := addressForMultisig(script, scriptType)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

// sortPubKeysBIP67 sorts compressed public keys into ascending
// lexicographic order in place, as required by BIP67.
func sortPubKeysBIP67(pubKeys [][]byte) {
	sort.Slice(pubKeys, func(i, j int) bool {
		return bytes.Compare(pubKeys[i], pubKeys[j]) < 0
	})
}

// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addresses

// DeriveSingleSig expands an xpub, ypub or zpub extended public key into
// the addresses for change/index in [from, to], inclusive, where change
// is 1 if isChange and 0 otherwise.
//
// xpub yields P2PKH addresses, ypub yields P2SH-wrapped P2WPKH, and zpub
// yields native P2WPKH. Multisig-only prefixes (Ypub, Zpub) are rejected.
func DeriveSingleSig(xkey string, from, to uint32, isChange bool) ([]string, error) {
	decoded, err := decodeExtendedKey(xkey)
	if err != nil {
		return nil, err
	}
	pfx := prefixes[decoded.prefix]
	if pfx.multisig {
		return nil, ErrInvalidKey
	}
	if from > to {
		return nil, ErrInvalidKey
	}

	change := uint32(0)
	if isChange {
		change = 1
	}

	addrs := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		pub, err := childPubKeyBytes(decoded.key, change, i)
		if err != nil {
			return nil, err
		}
		addr, err := addressForSingleSig(pub, pfx.singleSigScriptType)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

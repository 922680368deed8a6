// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

var mainNetParams = &chaincfg.MainNetParams

// AddressFromScript returns the single address a scriptPubKey pays to,
// if it pays to exactly one. Scripts that resolve to zero or multiple
// addresses (bare multisig, OP_RETURN, other non-standard scripts)
// return ("", false) — the spec leaves such outputs/inputs out of
// classification entirely, and this is the one place that decision is
// made.
func AddressFromScript(pkScript []byte) (string, bool) {
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, mainNetParams)
	if err != nil || len(addrs) != 1 {
		return "", false
	}
	return addrs[0].EncodeAddress(), true
}

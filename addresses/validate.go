// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addresses

import "github.com/btcsuite/btcd/btcutil"

// IsAddress reports whether s parses as a syntactically valid mainnet
// Bitcoin address. It performs no chain lookups; it is purely a format
// check.
func IsAddress(s string) bool {
	_, err := btcutil.DecodeAddress(s, mainNetParams)
	return err == nil
}

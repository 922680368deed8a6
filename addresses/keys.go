// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package addresses expands BIP32 extended public keys into the address
// lists that the chain watcher subscribes to, for both single-sig and
// multisig cosigner sets. It holds no persistent state; every function
// here is a pure computation over its arguments.
package addresses

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// xpubVersion is the canonical mainnet BIP32 extended-public-key version
// (the "xpub" prefix), used to normalise ypub/zpub/Ypub/Zpub payloads
// before they're handed to hdkeychain, which only recognises version
// bytes registered against a chaincfg network.
var xpubVersion = [4]byte{0x04, 0x88, 0xb2, 0x1e}

// keyPrefix describes one of the five Electrum-style extended-key
// prefixes this service understands.
type keyPrefix struct {
	// name is the four character prefix as it appears in the key string,
	// e.g. "zpub".
	name string

	// singleSigScriptType is the script type single-sig derivation uses
	// for keys with this prefix. Empty for multisig-only prefixes.
	singleSigScriptType string

	// multisig is true if this prefix is only valid as a multisig
	// cosigner key (Ypub, Zpub).
	multisig bool
}

var prefixes = map[string]keyPrefix{
	"xpub": {name: "xpub", singleSigScriptType: scriptP2PKH},
	"ypub": {name: "ypub", singleSigScriptType: scriptP2SHP2WPKH},
	"zpub": {name: "zpub", singleSigScriptType: scriptP2WPKH},
	"Ypub": {name: "Ypub", multisig: true},
	"Zpub": {name: "Zpub", multisig: true},
}

const (
	scriptP2PKH      = "p2pkh"
	scriptP2SHP2WPKH = "p2sh-p2wpkh"
	scriptP2WPKH     = "p2wpkh"
)

// Multisig script types accepted by DeriveMultisig, per the spec's own
// naming (note "p2shwsh" rather than "p2sh-p2wsh").
const (
	ScriptTypeP2WSH   = "p2wsh"
	ScriptTypeP2SHWSH = "p2shwsh"
	ScriptTypeP2SH    = "p2sh"
)

// decodedKey is an extended public key plus the prefix it was decoded
// from.
type decodedKey struct {
	key    *hdkeychain.ExtendedKey
	prefix string
}

// decodeExtendedKey parses an xpub/ypub/zpub/Ypub/Zpub string into a BIP32
// extended key. It recognises the prefix, rewrites the base58check
// payload's version bytes to the canonical xpub version, verifies the
// checksum, and re-validates via hdkeychain.
func decodeExtendedKey(s string) (*decodedKey, error) {
	if len(s) < 4 {
		return nil, ErrInvalidKey
	}
	pfx, ok := prefixes[s[:4]]
	if !ok {
		return nil, ErrInvalidKey
	}

	canonical, err := rewriteVersion(s)
	if err != nil {
		return nil, ErrInvalidKey
	}

	key, err := hdkeychain.NewKeyFromString(canonical)
	if err != nil {
		return nil, ErrInvalidKey
	}

	return &decodedKey{key: key, prefix: pfx.name}, nil
}

// rewriteVersion base58check-decodes an extended key string, replaces its
// 4-byte version prefix with the canonical xpub version, and re-encodes
// it with a freshly computed checksum.
func rewriteVersion(s string) (string, error) {
	decoded := base58.Decode(s)
	// version(4) + depth(1) + parentFP(4) + childNum(4) + chaincode(32) + key(33) + checksum(4)
	const payloadLen = 4 + 1 + 4 + 4 + 32 + 33
	if len(decoded) != payloadLen+4 {
		return "", ErrInvalidKey
	}

	payload := decoded[:payloadLen]
	checksum := decoded[payloadLen:]
	want := chainhash.DoubleHashB(payload)[:4]
	for i := range checksum {
		if checksum[i] != want[i] {
			return "", ErrInvalidKey
		}
	}

	rewritten := make([]byte, payloadLen)
	copy(rewritten, payload)
	copy(rewritten[:4], xpubVersion[:])

	newChecksum := chainhash.DoubleHashB(rewritten)[:4]
	full := append(rewritten, newChecksum...)
	return base58.Encode(full), nil
}

// childPubKeyBytes derives change/index from key and returns the
// compressed serialised child public key.
//
// The serialised bytes are re-parsed with btcec.ParsePubKey as a
// belt-and-suspenders check that the derived key is a valid compressed
// secp256k1 point before it's handed to script construction or BIP67
// sorting — hdkeychain already guarantees this in practice, but a
// malformed point silently corrupting an address is worse than an
// explicit error here.
func childPubKeyBytes(key *hdkeychain.ExtendedKey, change, index uint32) ([]byte, error) {
	changeKey, err := key.Child(change)
	if err != nil {
		return nil, err
	}
	childKey, err := changeKey.Child(index)
	if err != nil {
		return nil, err
	}
	pub, err := childKey.ECPubKey()
	if err != nil {
		return nil, err
	}

	compressed := pub.SerializeCompressed()
	if _, err := btcec.ParsePubKey(compressed); err != nil {
		return nil, ErrInvalidKey
	}
	return compressed, nil
}

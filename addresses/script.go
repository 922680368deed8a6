// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addresses

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

var mainNetParams = &chaincfg.MainNetParams

// addressForSingleSig builds the address a single-sig script type
// produces for a compressed public key.
func addressForSingleSig(pubKey []byte, scriptType string) (string, error) {
	hash160 := btcutil.Hash160(pubKey)

	switch scriptType {
	case scriptP2PKH:
		addr, err := btcutil.NewAddressPubKeyHash(hash160, mainNetParams)
		if err != nil {
			return "", err
		}
		return addr.EncodeAddress(), nil

	case scriptP2WPKH:
		addr, err := btcutil.NewAddressWitnessPubKeyHash(hash160, mainNetParams)
		if err != nil {
			return "", err
		}
		return addr.EncodeAddress(), nil

	case scriptP2SHP2WPKH:
		witnessProgram, err := txscript.NewScriptBuilder().
			AddOp(txscript.OP_0).
			AddData(hash160).
			Script()
		if err != nil {
			return "", err
		}
		addr, err := btcutil.NewAddressScriptHash(witnessProgram, mainNetParams)
		if err != nil {
			return "", err
		}
		return addr.EncodeAddress(), nil
	}

	return "", ErrInvalidScriptType
}

// multisigScript builds the OP_m <pk1>...<pkn> OP_n OP_CHECKMULTISIG
// script for the given BIP67-sorted compressed public keys.
func multisigScript(m, n int, sortedPubKeys [][]byte) ([]byte, error) {
	builder := txscript.NewScriptBuilder()
	builder.AddInt64(int64(m))
	for _, pk := range sortedPubKeys {
		builder.AddData(pk)
	}
	builder.AddInt64(int64(n))
	builder.AddOp(txscript.OP_CHECKMULTISIG)
	return builder.Script()
}

// addressForMultisig wraps a multisig script per the requested script
// type.
func addressForMultisig(script []byte, scriptType string) (string, error) {
	switch scriptType {
	case ScriptTypeP2SH:
		addr, err := btcutil.NewAddressScriptHash(script, mainNetParams)
		if err != nil {
			return "", err
		}
		return addr.EncodeAddress(), nil

	case ScriptTypeP2WSH:
		hash := sha256.Sum256(script)
		addr, err := btcutil.NewAddressWitnessScriptHash(hash[:], mainNetParams)
		if err != nil {
			return "", err
		}
		return addr.EncodeAddress(), nil

	case ScriptTypeP2SHWSH:
		hash := sha256.Sum256(script)
		witnessProgram, err := txscript.NewScriptBuilder().
			AddOp(txscript.OP_0).
			AddData(hash[:]).
			Script()
		if err != nil {
			return "", err
		}
		addr, err := btcutil.NewAddressScriptHash(witnessProgram, mainNetParams)
		if err != nil {
			return "", err
		}
		return addr.EncodeAddress(), nil
	}

	return "", ErrInvalidScriptType
}

// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addresses

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDeriveSingleSigXpubP2PKH(t *testing.T) {
	addrs, err := DeriveSingleSig(
		"xpub6Bwfu1R7aLXwczEjjx9pwFzyssVmfEgkurM7vtHk9GKSaRL4PQYigqRKku6d9RtaNyuSXLFCZuNpLKzm3jWEUERb5JtGgdr3PWQnyhL6Ruw",
		0, 0, false,
	)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "1PW7vCjj68jC1T2hSUPw9n7AQUNYuv2rEi", addrs[0])
}

func TestDeriveSingleSigZpubP2WPKH(t *testing.T) {
	addrs, err := DeriveSingleSig(
		"zpub6s1rSuNVVpH88zXPyXdtCduh8XwyaE9eCBYiCXM29iF9gHpDznAU2F4GeYZe7qi3SwdZ9BJm1gkDD8C3SGp7qnA9D2hJjyFRU8b6EeYnTH9",
		6, 6, false,
	)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "bc1qak2mkwwwa2u8zu8df95llp8cdz027wu6wr5h3y", addrs[0])
}

func TestDeriveSingleSigRejectsMultisigPrefix(t *testing.T) {
	t.Run("Ypub", func(t *testing.T) {
		_, err := DeriveSingleSig("Ypub6hg2KupUHydntrbEWyQRyRSHmdgUpDMr9EX1dYTAu3XjFhiCQU6ZQ1wPap1ghmmQ266E9Pqsun7sLnE64f5CQxDrn7h6fx8XYxkJxChFDc4", 0, 0, false)
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestDeriveSingleSigRejectsUnknownPrefix(t *testing.T) {
	_, err := DeriveSingleSig("tpub6000000000000000000000000000000000000000000000000000000000000000000000", 0, 0, false)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestDeriveSingleSigRejectsInvertedRange(t *testing.T) {
	_, err := DeriveSingleSig(
		"xpub6Bwfu1R7aLXwczEjjx9pwFzyssVmfEgkurM7vtHk9GKSaRL4PQYigqRKku6d9RtaNyuSXLFCZuNpLKzm3jWEUERb5JtGgdr3PWQnyhL6Ruw",
		5, 0, false,
	)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestDeriveMultisigP2SH(t *testing.T) {
	addrs, err := DeriveMultisig(
		ScriptTypeP2SH, 2,
		[]string{
			"xpub6BUn9m2y3vsjmwpwNtwYRJPf3sjJ2WJPU3LVcSadNhp5VUN3XfrxDcxZ9v1fWdmmmsD8yV3KjVVuHCqVjCHxHKKTfNtGq3oJyJ",
			"xpub6BYAU1Yx8YaJu4G1E4J7ucYVK3UgBGB1SGmGUivVQvveinBRibUXGmqCBJ2G1R9cdsTVpTfqW4jV5cgWd3xZWQsZYwgjcoKhCg7",
		},
		0, 0, false,
	)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "3AChTvyFF3cfkUPwDDgSZ3kVxg8CYKup7d", addrs[0])
}

func TestDeriveMultisigRejectsInvalidScriptType(t *testing.T) {
	_, err := DeriveMultisig("p2pkh", 1, []string{"xpub6000"}, 0, 0, false)
	assert.ErrorIs(t, err, ErrInvalidScriptType)
}

func TestDeriveMultisigRejectsEmptyKeyList(t *testing.T) {
	_, err := DeriveMultisig(ScriptTypeP2SH, 1, nil, 0, 0, false)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestDeriveMultisigRejectsTooManyRequiredSignatures(t *testing.T) {
	_, err := DeriveMultisig(ScriptTypeP2SH, 3, []string{"xpub6000", "xpub6001"}, 0, 0, false)
	assert.ErrorIs(t, err, ErrInvalidSignatureCount)
}

func TestIsAddress(t *testing.T) {
	assert.True(t, IsAddress("bc1qe7f3h290cyf55ccf62d80kr43h49lya5ac9pt2"))
	assert.False(t, IsAddress("test"))
}

func TestBIP67SortOrdering(t *testing.T) {
	pubKeys := [][]byte{
		{0x03, 0x02},
		{0x02, 0x01},
		{0x03, 0x01},
	}
	sortPubKeysBIP67(pubKeys)
	for i := 1; i < len(pubKeys); i++ {
		require.LessOrEqual(t, string(pubKeys[i-1]), string(pubKeys[i]))
	}
}

// TestBIP67SortOrderingProperty is Testable Property 7 (BIP67 determinism)
// as a property test: sortPubKeysBIP67 always leaves its input in
// non-decreasing lexicographic order, regardless of the input size or
// the order keys arrive in.
func TestBIP67SortOrderingProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		pubKeys := make([][]byte, n)
		for i := range pubKeys {
			keyLen := rapid.IntRange(1, 33).Draw(t, "keyLen")
			key := make([]byte, keyLen)
			for j := range key {
				key[j] = byte(rapid.IntRange(0, 255).Draw(t, "b"))
			}
			pubKeys[i] = key
		}

		sortPubKeysBIP67(pubKeys)

		for i := 1; i < len(pubKeys); i++ {
			assert.LessOrEqual(t, bytes.Compare(pubKeys[i-1], pubKeys[i]), 0)
		}
	})
}

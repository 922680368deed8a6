// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toole-brendan/bitnotify/kvstore"
	"pgregory.net/rapid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := kvstore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db)
}

const testToken = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" // 50 hex chars

func TestTokenValidity(t *testing.T) {
	assert.True(t, ValidToken(testToken))
	assert.False(t, ValidToken("too-short"))
	assert.False(t, ValidToken("zz"+testToken[2:])) // non-hex characters
	assert.True(t, ValidToken(testToken+"bb"))      // longer than 50 is fine
}

func TestCreateTokenRejectsInvalid(t *testing.T) {
	s := newTestStore(t)
	err := s.CreateToken("not-hex")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestCreateTokenIsExclusive(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateToken(testToken))
	err := s.CreateToken(testToken)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestDeleteTokenCascades(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateToken(testToken))
	require.NoError(t, s.CreateAddress(testToken, "addr1"))
	require.NoError(t, s.CreateNotification(testToken, "addr1", "txid1", TxTypeIn, 1000, false, time.Now().Unix()))

	require.NoError(t, s.DeleteToken(testToken))

	notifications, err := s.NotificationsByToken(testToken)
	require.NoError(t, err)
	assert.Empty(t, notifications)

	addrs, err := s.AddressesByToken(testToken)
	require.NoError(t, err)
	assert.Empty(t, addrs)

	exists, err := s.TokenExists(testToken)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNotificationIdempotence(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().Unix()
	require.NoError(t, s.CreateNotification(testToken, "addr1", "txid1", TxTypeIn, 1000, false, now))
	require.NoError(t, s.CreateNotification(testToken, "addr1", "txid1", TxTypeIn, 1000, false, now+10))

	notifications, err := s.NotificationsByToken(testToken)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, now+10, notifications[0].Timestamp)
}

func TestPendingAndConfirmedProduceDistinctRecords(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().Unix()
	require.NoError(t, s.CreateNotification(testToken, "addr1", "txid1", TxTypeIn, 1000, false, now))
	require.NoError(t, s.CreateNotification(testToken, "addr1", "txid1", TxTypeIn, 1000, true, now))

	notifications, err := s.NotificationsByToken(testToken)
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func TestAddressRecordNeverEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateAddress(testToken, "addr1"))
	require.NoError(t, s.DeleteAddress(testToken, "addr1"))

	tokens, err := s.WatchersOf("addr1")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestMempoolSeenCache(t *testing.T) {
	s := newTestStore(t)
	seen, err := s.IsSeen("txid1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, s.MarkSeen("txid1", time.Now().Unix()))
	seen, err = s.IsSeen("txid1")
	require.NoError(t, err)
	assert.True(t, seen)

	require.NoError(t, s.ForgetSeen("txid1"))
	seen, err = s.IsSeen("txid1")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestCursorMonotonicity(t *testing.T) {
	s := newTestStore(t)
	_, err := s.LastProcessedBlock()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SetLastProcessedBlock(100))
	height, err := s.LastProcessedBlock()
	require.NoError(t, err)
	assert.Equal(t, uint32(100), height)

	require.NoError(t, s.SetLastProcessedBlock(101))
	height, err = s.LastProcessedBlock()
	require.NoError(t, err)
	assert.Equal(t, uint32(101), height)
}

// TestCursorReadsBackWhateverWasLastWritten checks the cursor storage
// that Testable Property 4 (cursor monotonicity) rests on, as a property
// test: for any sequence of heights written to the cursor, reading it
// back always yields the last one written, regardless of the sequence's
// shape.
func TestCursorReadsBackWhateverWasLastWritten(t *testing.T) {
	s := newTestStore(t)
	rapid.Check(t, func(t *rapid.T) {
		heights := rapid.SliceOfN(rapid.Uint32(), 1, 20).Draw(t, "heights")
		for _, h := range heights {
			require.NoError(t, s.SetLastProcessedBlock(h))
		}
		got, err := s.LastProcessedBlock()
		require.NoError(t, err)
		assert.Equal(t, heights[len(heights)-1], got)
	})
}

// TestTokenValidityProperty is Testable Property 1 (token well-formedness)
// as a property test: any string of 50+ hex characters is a valid
// token, and any string containing a non-hex character is not.
func TestTokenValidityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hexChars := "0123456789abcdefABCDEF"
		n := rapid.IntRange(50, 80).Draw(t, "n")
		var b []byte
		for i := 0; i < n; i++ {
			b = append(b, hexChars[rapid.IntRange(0, len(hexChars)-1).Draw(t, "c")])
		}
		assert.True(t, ValidToken(string(b)))
	})

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(50, 80).Draw(t, "n")
		pos := rapid.IntRange(0, n-1).Draw(t, "pos")
		bad := rapid.SampledFrom([]byte("ghijklmnopqrstuvwxyz!@#$%^&* ")).Draw(t, "bad")
		b := make([]byte, n)
		for i := range b {
			b[i] = '0'
		}
		b[pos] = bad
		assert.False(t, ValidToken(string(b)))
	})
}

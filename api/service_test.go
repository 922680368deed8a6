// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toole-brendan/bitnotify/kvstore"
	"github.com/toole-brendan/bitnotify/store"
	"pgregory.net/rapid"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := kvstore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(store.New(db))
}

func TestSubscribeIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	token, err := svc.NewPushNotificationToken()
	require.NoError(t, err)
	require.Len(t, token, 64)

	require.NoError(t, svc.Subscribe(token))
	require.NoError(t, svc.Subscribe(token)) // second call must not error

	ok, err := svc.IsSubscribed(token)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSubscribeRejectsMalformedToken(t *testing.T) {
	svc := newTestService(t)
	err := svc.Subscribe("not-a-token")
	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindInvalidArgs, apiErr.Kind)
}

func TestAddAddressesSkipsInvalid(t *testing.T) {
	svc := newTestService(t)
	token, err := svc.NewPushNotificationToken()
	require.NoError(t, err)
	require.NoError(t, svc.Subscribe(token))

	const valid = "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"
	err = svc.AddAddresses(token, []string{valid, "not-an-address"})
	require.NoError(t, err)

	addrs, err := svc.Addresses(token)
	require.NoError(t, err)
	assert.Equal(t, []string{valid}, addrs)
}

// TestNewPushNotificationTokenAlwaysValidProperty checks that, however
// many times it's called, a freshly minted token always satisfies the
// same validity contract Subscribe enforces.
func TestNewPushNotificationTokenAlwaysValidProperty(t *testing.T) {
	svc := newTestService(t)
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(t, "n")
		seen := make(map[string]struct{}, n)
		for i := 0; i < n; i++ {
			token, err := svc.NewPushNotificationToken()
			require.NoError(t, err)
			assert.True(t, store.ValidToken(token))
			_, dup := seen[token]
			assert.False(t, dup)
			seen[token] = struct{}{}
		}
	})
}

func TestUnsubscribeCascades(t *testing.T) {
	svc := newTestService(t)
	token, err := svc.NewPushNotificationToken()
	require.NoError(t, err)
	require.NoError(t, svc.Subscribe(token))
	require.NoError(t, svc.AddAddresses(token, []string{"1BoatSLRHtKNngkdXEeobR76b53LETtpyT"}))

	require.NoError(t, svc.Unsubscribe(token))

	ok, err := svc.IsSubscribed(token)
	require.NoError(t, err)
	assert.False(t, ok)
}

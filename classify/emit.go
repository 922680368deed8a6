// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package classify

import "github.com/toole-brendan/bitnotify/store"

// Emit writes one notification per (token, flow) pair: for every
// classified flow, it looks up which tokens watch that address and
// upserts a notification for each. The deterministic notification id
// (store.NotificationID) makes repeated emission of the same event safe.
func Emit(s *store.Store, txid string, flows []Flow, confirmed bool, timestamp int64) error {
	for _, flow := range flows {
		watchers, err := s.WatchersOf(flow.Address)
		if err != nil {
			return err
		}
		for _, token := range watchers {
			err := s.CreateNotification(token, flow.Address, txid, string(flow.Direction), flow.Amount, confirmed, timestamp)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

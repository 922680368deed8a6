// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cleaner runs the two retention sweeps that keep the KV store
// from growing without bound: one expires old notifications, the other
// expires stale mempool-seen entries.
package cleaner

import (
	"context"
	"time"

	"github.com/btcsuite/btclog"
	"github.com/toole-brendan/bitnotify/store"
)

const (
	sweepInterval = time.Hour
	errSleep      = 60 * time.Second

	// notificationTTL is how long a notification survives before the
	// cleaner deletes it, regardless of whether a client ever fetched
	// it.
	notificationTTL = 30 * 24 * time.Hour

	// mempoolSeenTTL is how long a mempool-seen entry survives. An
	// entry living past this without being confirmed or re-seen is
	// almost certainly a transaction that was evicted from every node's
	// mempool (RBF'd away, expired) rather than one still in flight.
	mempoolSeenTTL = 24 * time.Hour
)

// NotificationCleaner deletes notifications older than notificationTTL.
type NotificationCleaner struct {
	s   *store.Store
	log btclog.Logger
}

// NewNotificationCleaner builds a notification cleaner over s.
func NewNotificationCleaner(s *store.Store, log btclog.Logger) *NotificationCleaner {
	return &NotificationCleaner{s: s, log: log}
}

// Run sweeps every sweepInterval until ctx is cancelled.
func (c *NotificationCleaner) Run(ctx context.Context) {
	runLoop(ctx, c.log, "notification", func() error {
		cutoff := time.Now().Add(-notificationTTL).Unix()
		return c.s.DeleteNotificationsOlderThan(cutoff)
	})
}

// MempoolCleaner deletes mempool-seen entries older than mempoolSeenTTL.
type MempoolCleaner struct {
	s   *store.Store
	log btclog.Logger
}

// NewMempoolCleaner builds a mempool-seen cache cleaner over s.
func NewMempoolCleaner(s *store.Store, log btclog.Logger) *MempoolCleaner {
	return &MempoolCleaner{s: s, log: log}
}

// Run sweeps every sweepInterval until ctx is cancelled.
func (c *MempoolCleaner) Run(ctx context.Context) {
	runLoop(ctx, c.log, "mempool-seen", func() error {
		cutoff := time.Now().Add(-mempoolSeenTTL).Unix()
		entries, err := c.s.IterSeen()
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.SeenAt < cutoff {
				if err := c.s.ForgetSeen(entry.Txid); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// runLoop is the shared sweep-sleep-retry skeleton both cleaners use.
func runLoop(ctx context.Context, log btclog.Logger, name string, sweep func() error) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		sleep := sweepInterval
		if err := sweep(); err != nil {
			log.Errorf("%s cleaner: %v", name, err)
			sleep = errSleep
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(sleep):
		}
	}
}

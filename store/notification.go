// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"github.com/toole-brendan/bitnotify/kvstore"
)

// Notification is an immutable record of a detected transaction touching
// a watched address. See NotificationID for how Id is derived.
type Notification struct {
	ID        string
	Token     string
	Address   string
	Txid      string
	TxType    string // "in" or "out"
	Amount    uint64 // satoshis
	Confirmed bool
	Timestamp int64 // unix seconds
}

const (
	// TxTypeIn marks a notification for value arriving at an address.
	TxTypeIn = "in"

	// TxTypeOut marks a notification for value leaving an address.
	TxTypeOut = "out"
)

// NotificationID computes the deterministic notification identifier:
// the first 32 hex characters of SHA-512(token:txid:txtype:amount:confirmed).
//
// Including confirmed in the hash is a deliberate departure from
// collapsing a pending and a confirmed event into one record (see
// DESIGN.md): a mempool sighting and its later confirmation are distinct
// user-visible events and get distinct ids, while re-processing the same
// (token, txid, direction, amount, confirmation state) tuple still
// upserts the same key.
func NotificationID(token, txid, txType string, amount uint64, confirmed bool) string {
	input := fmt.Sprintf("%s:%s:%s:%d:%t", token, txid, txType, amount, confirmed)
	sum := sha512.Sum512([]byte(input))
	return hex.EncodeToString(sum[:])[:32]
}

// CreateNotification upserts a notification for (token, addr, txid,
// txType, amount, confirmed). Because the id is deterministic,
// reprocessing the same event is idempotent: it overwrites the same
// record rather than duplicating it.
func (s *Store) CreateNotification(token, addr, txid, txType string, amount uint64, confirmed bool, timestamp int64) error {
	n := Notification{
		ID:        NotificationID(token, txid, txType, amount, confirmed),
		Token:     token,
		Address:   addr,
		Txid:      txid,
		TxType:    txType,
		Amount:    amount,
		Confirmed: confirmed,
		Timestamp: timestamp,
	}
	return kvstore.PutTyped(s.db, kvstore.Notification, []byte(n.ID), n)
}

// NotificationsByToken returns every notification owned by token.
func (s *Store) NotificationsByToken(token string) ([]Notification, error) {
	var result []Notification
	err := kvstore.IterateTyped(s.db, kvstore.Notification, func(key []byte, n Notification, decodeErr error) error {
		if decodeErr != nil {
			return nil
		}
		if n.Token == token {
			result = append(result, n)
		}
		return nil
	})
	return result, err
}

// DeleteNotificationByID deletes a single notification owned by token,
// identified by its id. Deleting a notification owned by a different
// token, or one that doesn't exist, is a no-op.
func (s *Store) DeleteNotificationByID(token, id string) error {
	var n Notification
	err := kvstore.GetTyped(s.db, kvstore.Notification, []byte(id), &n)
	if err == kvstore.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	if n.Token != token {
		return nil
	}
	return s.db.Delete(kvstore.Notification, []byte(id))
}

// DeleteNotificationsByToken deletes every notification owned by token.
func (s *Store) DeleteNotificationsByToken(token string) error {
	return s.deleteNotificationsWhere(func(n Notification) bool {
		return n.Token == token
	})
}

// DeleteNotificationsByTokenAndIDs deletes the notifications owned by
// token whose id is in ids.
func (s *Store) DeleteNotificationsByTokenAndIDs(token string, ids []string) error {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	return s.deleteNotificationsWhere(func(n Notification) bool {
		if n.Token != token {
			return false
		}
		_, ok := idSet[n.ID]
		return ok
	})
}

// DeleteNotificationsByTokenAndAddress deletes the notifications owned
// by token for addr.
func (s *Store) DeleteNotificationsByTokenAndAddress(token, addr string) error {
	return s.deleteNotificationsWhere(func(n Notification) bool {
		return n.Token == token && n.Address == addr
	})
}

// DeleteNotificationsOlderThan deletes every notification whose
// timestamp is strictly before cutoff, regardless of owning token. The
// Notification Cleaner calls this on a fixed retention schedule.
func (s *Store) DeleteNotificationsOlderThan(cutoff int64) error {
	return s.deleteNotificationsWhere(func(n Notification) bool {
		return n.Timestamp < cutoff
	})
}

// deleteNotificationsWhere scans the notification partition once,
// collecting the keys of matching records, then deletes them. Deletion
// is deferred past the scan so it never mutates the partition it's
// iterating.
func (s *Store) deleteNotificationsWhere(match func(Notification) bool) error {
	var toDelete [][]byte
	err := kvstore.IterateTyped(s.db, kvstore.Notification, func(key []byte, n Notification, decodeErr error) error {
		if decodeErr != nil {
			return nil
		}
		if match(n) {
			toDelete = append(toDelete, append([]byte{}, key...))
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, key := range toDelete {
		if err := s.db.Delete(kvstore.Notification, key); err != nil {
			return err
		}
	}
	return nil
}

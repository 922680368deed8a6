// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import "github.com/toole-brendan/bitnotify/kvstore"

// CreateAddress idempotently adds token to addr's watcher set, creating
// the address record if this is the first watcher.
func (s *Store) CreateAddress(token, addr string) error {
	var tokens []string
	err := kvstore.GetTyped(s.db, kvstore.Address, []byte(addr), &tokens)
	switch err {
	case nil:
		if containsString(tokens, token) {
			return nil
		}
	case kvstore.ErrNotFound:
		tokens = nil
	default:
		return err
	}

	tokens = append(tokens, token)
	return kvstore.PutTyped(s.db, kvstore.Address, []byte(addr), tokens)
}

// DeleteAddress removes token from addr's watcher set, deleting the
// record entirely if the set becomes empty. Removing a token that isn't
// watching addr is a no-op.
func (s *Store) DeleteAddress(token, addr string) error {
	var tokens []string
	err := kvstore.GetTyped(s.db, kvstore.Address, []byte(addr), &tokens)
	if err == kvstore.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	idx := indexOfString(tokens, token)
	if idx < 0 {
		return nil
	}
	tokens = append(tokens[:idx], tokens[idx+1:]...)

	if len(tokens) == 0 {
		return s.db.Delete(kvstore.Address, []byte(addr))
	}
	return kvstore.PutTyped(s.db, kvstore.Address, []byte(addr), tokens)
}

// DeleteAddressAndNotifications unwatches addr for token and removes
// any notifications token holds for addr, as a single logical unwatch
// operation.
func (s *Store) DeleteAddressAndNotifications(token, addr string) error {
	if err := s.DeleteNotificationsByTokenAndAddress(token, addr); err != nil {
		return err
	}
	return s.DeleteAddress(token, addr)
}

// AddressesByToken returns every address token currently watches.
func (s *Store) AddressesByToken(token string) ([]string, error) {
	var result []string
	err := kvstore.IterateTyped(s.db, kvstore.Address, func(key []byte, tokens []string, decodeErr error) error {
		if decodeErr != nil {
			return nil
		}
		if containsString(tokens, token) {
			result = append(result, string(key))
		}
		return nil
	})
	return result, err
}

// WatchersOf returns the set of tokens currently watching addr, or nil
// if the address has no record (no error in that case: an unwatched
// address simply has no watchers).
func (s *Store) WatchersOf(addr string) ([]string, error) {
	var tokens []string
	err := kvstore.GetTyped(s.db, kvstore.Address, []byte(addr), &tokens)
	if err == kvstore.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// removeTokenFromAllAddresses scrubs token from every address record,
// deleting any record whose watcher set becomes empty as a result. It
// scans once to find affected records, then mutates, so writes never
// race the scan's own iterator.
func (s *Store) removeTokenFromAllAddresses(token string) error {
	type update struct {
		addr      []byte
		remaining []string
	}
	var updates []update

	err := kvstore.IterateTyped(s.db, kvstore.Address, func(key []byte, tokens []string, decodeErr error) error {
		if decodeErr != nil {
			return nil
		}
		idx := indexOfString(tokens, token)
		if idx < 0 {
			return nil
		}
		remaining := append(append([]string{}, tokens[:idx]...), tokens[idx+1:]...)
		addrCopy := append([]byte{}, key...)
		updates = append(updates, update{addr: addrCopy, remaining: remaining})
		return nil
	})
	if err != nil {
		return err
	}

	for _, u := range updates {
		if len(u.remaining) == 0 {
			if err := s.db.Delete(kvstore.Address, u.addr); err != nil {
				return err
			}
			continue
		}
		if err := kvstore.PutTyped(s.db, kvstore.Address, u.addr, u.remaining); err != nil {
			return err
		}
	}
	return nil
}

func containsString(ss []string, v string) bool {
	return indexOfString(ss, v) >= 0
}

func indexOfString(ss []string, v string) int {
	for i, s := range ss {
		if s == v {
			return i
		}
	}
	return -1
}

// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"regexp"

	"github.com/toole-brendan/bitnotify/kvstore"
)

// tokenPattern is the validity rule for a subscriber token: hex
// characters, at least 50 of them (the real contract generates 64).
var tokenPattern = regexp.MustCompile(`^[0-9A-Fa-f]{50,}$`)

// ValidToken reports whether t is well-formed per the token contract.
func ValidToken(t string) bool {
	return tokenPattern.MatchString(t)
}

// CreateToken registers a new subscriber token. It fails with
// ErrInvalidValue if t isn't well-formed, or ErrAlreadyExists if t is
// already registered.
func (s *Store) CreateToken(token string) error {
	if !ValidToken(token) {
		return ErrInvalidValue
	}

	exists, err := s.db.Has(kvstore.Token, []byte(token))
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyExists
	}

	return s.db.Put(kvstore.Token, []byte(token), []byte{})
}

// TokenExists reports whether token is a registered subscriber.
func (s *Store) TokenExists(token string) (bool, error) {
	return s.db.Has(kvstore.Token, []byte(token))
}

// DeleteToken removes token and cascades: every notification owned by
// token is deleted, token is removed from every address record it
// watches (deleting the record if its token set becomes empty), and
// finally the token entry itself is removed.
func (s *Store) DeleteToken(token string) error {
	if err := s.DeleteNotificationsByToken(token); err != nil {
		return err
	}

	if err := s.removeTokenFromAllAddresses(token); err != nil {
		return err
	}

	return s.db.Delete(kvstore.Token, []byte(token))
}

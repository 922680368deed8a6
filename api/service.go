// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package api

import (
	"errors"

	"github.com/toole-brendan/bitnotify/addresses"
	"github.com/toole-brendan/bitnotify/store"
)

// Service is the Core API façade: every front end talks to the store
// exclusively through this type.
type Service struct {
	s *store.Store
}

// New builds a Core API façade over s.
func New(s *store.Store) *Service {
	return &Service{s: s}
}

// IsSubscribed reports whether token is a registered subscriber.
func (svc *Service) IsSubscribed(token string) (bool, error) {
	ok, err := svc.s.TokenExists(token)
	if err != nil {
		return false, dbErr(err)
	}
	return ok, nil
}

// Subscribe registers token. Subscribing an already-registered token
// succeeds silently, per spec.md's idempotence contract.
func (svc *Service) Subscribe(token string) error {
	err := svc.s.CreateToken(token)
	if err == nil || errors.Is(err, store.ErrAlreadyExists) {
		return nil
	}
	if errors.Is(err, store.ErrInvalidValue) {
		return invalidArgs(err)
	}
	return dbErr(err)
}

// Unsubscribe deregisters token, cascading to its notifications and
// address watches.
func (svc *Service) Unsubscribe(token string) error {
	if err := svc.s.DeleteToken(token); err != nil {
		return dbErr(err)
	}
	return nil
}

// Notifications returns every notification owned by token.
func (svc *Service) Notifications(token string) ([]store.Notification, error) {
	ns, err := svc.s.NotificationsByToken(token)
	if err != nil {
		return nil, dbErr(err)
	}
	return ns, nil
}

// DeleteNotificationByID deletes a single notification token owns.
func (svc *Service) DeleteNotificationByID(token, id string) error {
	if err := svc.s.DeleteNotificationByID(token, id); err != nil {
		return dbErr(err)
	}
	return nil
}

// DeleteAllNotifications deletes every notification token owns.
func (svc *Service) DeleteAllNotifications(token string) error {
	if err := svc.s.DeleteNotificationsByToken(token); err != nil {
		return dbErr(err)
	}
	return nil
}

// Addresses returns every address token currently watches.
func (svc *Service) Addresses(token string) ([]string, error) {
	addrs, err := svc.s.AddressesByToken(token)
	if err != nil {
		return nil, dbErr(err)
	}
	return addrs, nil
}

// AddAddresses watches addrs for token. Addresses that don't parse as
// valid mainnet addresses are silently skipped rather than failing the
// whole call, per spec.md.
func (svc *Service) AddAddresses(token string, addrs []string) error {
	for _, addr := range addrs {
		if !addresses.IsAddress(addr) {
			continue
		}
		if err := svc.s.CreateAddress(token, addr); err != nil {
			return dbErr(err)
		}
	}
	return nil
}

// DeleteAddresses unwatches addrs for token, removing any notifications
// token holds for each address.
func (svc *Service) DeleteAddresses(token string, addrs []string) error {
	for _, addr := range addrs {
		if err := svc.s.DeleteAddressAndNotifications(token, addr); err != nil {
			return dbErr(err)
		}
	}
	return nil
}

// AddAddressesFromSinglesig derives addresses from a single-sig
// extended public key and watches all of them for token.
func (svc *Service) AddAddressesFromSinglesig(token, xkey string, from, to uint32, isChange bool) ([]string, error) {
	addrs, err := addresses.DeriveSingleSig(xkey, from, to, isChange)
	if err != nil {
		return nil, invalidArgs(err)
	}
	for _, addr := range addrs {
		if err := svc.s.CreateAddress(token, addr); err != nil {
			return nil, dbErr(err)
		}
	}
	return addrs, nil
}

// DeleteAddressesFromSinglesig derives addresses from a single-sig
// extended public key and unwatches all of them for token.
func (svc *Service) DeleteAddressesFromSinglesig(token, xkey string, from, to uint32, isChange bool) ([]string, error) {
	addrs, err := addresses.DeriveSingleSig(xkey, from, to, isChange)
	if err != nil {
		return nil, invalidArgs(err)
	}
	if err := svc.DeleteAddresses(token, addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

// AddAddressesFromMultisig derives addresses from a cosigner xpub set
// and watches all of them for token.
func (svc *Service) AddAddressesFromMultisig(token, scriptType string, m int, xpubs []string, from, to uint32, isChange bool) ([]string, error) {
	addrs, err := addresses.DeriveMultisig(scriptType, m, xpubs, from, to, isChange)
	if err != nil {
		return nil, invalidArgs(err)
	}
	for _, addr := range addrs {
		if err := svc.s.CreateAddress(token, addr); err != nil {
			return nil, dbErr(err)
		}
	}
	return addrs, nil
}

// DeleteAddressesFromMultisig derives addresses from a cosigner xpub set
// and unwatches all of them for token.
func (svc *Service) DeleteAddressesFromMultisig(token, scriptType string, m int, xpubs []string, from, to uint32, isChange bool) ([]string, error) {
	addrs, err := addresses.DeriveMultisig(scriptType, m, xpubs, from, to, isChange)
	if err != nil {
		return nil, invalidArgs(err)
	}
	if err := svc.DeleteAddresses(token, addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

// NewPushNotificationToken mints a fresh subscriber token. It does not
// register it; callers still need Subscribe.
func (svc *Service) NewPushNotificationToken() (string, error) {
	token, err := NewPushNotificationToken()
	if err != nil {
		return "", dbErr(err)
	}
	return token, nil
}

// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package api is the Core API façade every front end (REST, gRPC, CLI)
// is expected to sit on top of: one method per operation spec.md §4.8
// names, translating derivation and store failures into the two error
// kinds a front end needs to distinguish.
package api

import "fmt"

// ErrKind classifies why a Core API call failed.
type ErrKind string

const (
	// KindInvalidArgs means the caller supplied a malformed token,
	// address, or extended public key.
	KindInvalidArgs ErrKind = "invalid_args"

	// KindDb means the underlying store failed for a reason the caller
	// didn't control.
	KindDb ErrKind = "db"
)

// Error wraps a Core API failure with the kind a front end needs to
// decide how to respond to its own caller (4xx vs 5xx, say).
type Error struct {
	Kind ErrKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func invalidArgs(err error) error {
	return &Error{Kind: KindInvalidArgs, Err: err}
}

func dbErr(err error) error {
	return &Error{Kind: KindDb, Err: err}
}

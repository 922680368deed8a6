// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain holds the enriched transaction shape the RPC layer
// produces and the Classifier consumes: plain data, no I/O, so the
// Classifier can stay a pure function over it.
package chain

// Tx is a transaction with every input's prevout resolved to an address
// and value where possible, ready for classification.
type Tx struct {
	Txid    string
	Inputs  []Input
	Outputs []Output
}

// Input is one transaction input, enriched with its prevout's address
// and value. Address is empty if the prevout's scriptPubKey doesn't
// resolve to a single address (missing prevout, or a script — such as
// bare multisig — that doesn't correspond to one address string); such
// inputs contribute nothing to classification, matching the spec's
// documented behaviour for non-representable scripts.
type Input struct {
	Address string
	Value   uint64 // satoshis
}

// Output is one transaction output.
type Output struct {
	Address string
	Value   uint64 // satoshis
}

// HasAddress reports whether an enriched input or output resolved to a
// usable address.
func (i Input) HasAddress() bool  { return i.Address != "" }
func (o Output) HasAddress() bool { return o.Address != "" }

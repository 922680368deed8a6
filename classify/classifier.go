// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package classify computes, for one enriched transaction, the net
// satoshi flow per address and turns it into notification emissions.
// Nothing here touches the network or the store: Classify is a pure
// function, and Emit is the only piece that talks to the store, kept
// separate so the flow computation itself stays trivially testable.
package classify

import "github.com/toole-brendan/bitnotify/chain"

// Direction is the sign of a classified flow: value arriving at an
// address ("in") or leaving it ("out").
type Direction string

const (
	In  Direction = "in"
	Out Direction = "out"
)

// Flow is one classified (address, direction, amount) triple produced
// for a transaction.
type Flow struct {
	Address   string
	Direction Direction
	Amount    uint64 // satoshis
}

// Classify aggregates tx's inputs by address, walks its outputs netting
// out any self-spend/change, and returns the resulting per-address flows.
//
// Algorithm (spec.md §4.6): accumulate input value by address; for each
// output whose address was also an input address, net the two amounts
// against each other and remove the address from the input set; for
// every output address not among the inputs, emit its full value as
// "in"; finally, any input address not matched by an output (fully
// spent, no change) emits its residual value as "out".
func Classify(tx chain.Tx) []Flow {
	inputs := make(map[string]uint64)
	for _, in := range tx.Inputs {
		if !in.HasAddress() {
			continue
		}
		inputs[in.Address] += in.Value
	}

	var flows []Flow
	for _, out := range tx.Outputs {
		if !out.HasAddress() {
			continue
		}

		inputValue, wasInput := inputs[out.Address]
		if !wasInput {
			flows = append(flows, Flow{Address: out.Address, Direction: In, Amount: out.Value})
			continue
		}

		switch {
		case out.Value < inputValue:
			flows = append(flows, Flow{Address: out.Address, Direction: Out, Amount: inputValue - out.Value})
		default:
			flows = append(flows, Flow{Address: out.Address, Direction: In, Amount: out.Value - inputValue})
		}
		delete(inputs, out.Address)
	}

	for addr, residual := range inputs {
		flows = append(flows, Flow{Address: addr, Direction: Out, Amount: residual})
	}

	return flows
}

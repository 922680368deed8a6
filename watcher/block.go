// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watcher runs the two long-lived polling loops that drive the
// whole service: the Block Processor, which walks confirmed blocks at a
// fixed depth behind the chain tip, and the Mempool Processor, which
// diffs the node's mempool against what's already been seen. Neither
// loop talks to the other directly — they coordinate only through the
// KV store, matching the spec's no-shared-memory concurrency model.
package watcher

import (
	"context"
	"time"

	"github.com/btcsuite/btclog"
	"github.com/toole-brendan/bitnotify/classify"
	"github.com/toole-brendan/bitnotify/rpcclient"
	"github.com/toole-brendan/bitnotify/store"
)

// confirmationDepth is how many blocks back from the tip the Block
// Processor trails, per spec.md's reorg-safety margin.
const confirmationDepth = 5

const (
	blockProcessorErrSleep  = 60 * time.Second
	blockProcessorIdleSleep = 120 * time.Second
)

// BlockProcessor walks confirmed blocks one at a time, classifying each
// transaction and advancing the persisted cursor only after a block has
// been fully processed.
type BlockProcessor struct {
	rpc *rpcclient.Client
	s   *store.Store
	log btclog.Logger
}

// NewBlockProcessor builds a Block Processor over rpc and s.
func NewBlockProcessor(rpc *rpcclient.Client, s *store.Store, log btclog.Logger) *BlockProcessor {
	return &BlockProcessor{rpc: rpc, s: s, log: log}
}

// Run loops until ctx is cancelled. Each iteration processes at most one
// block, so a slow or wedged node can't stall graceful shutdown for
// long.
func (p *BlockProcessor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		sleep, err := p.step()
		if err != nil {
			p.log.Errorf("block processor: %v", err)
			sleep = blockProcessorErrSleep
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(sleep):
		}
	}
}

// step processes exactly one confirmed block, if one is due, and
// reports how long the caller should sleep before calling step again.
func (p *BlockProcessor) step() (time.Duration, error) {
	tip, err := p.rpc.Tip()
	if err != nil {
		return 0, err
	}
	target := tip - confirmationDepth
	if target < 0 {
		return blockProcessorIdleSleep, nil
	}

	last, err := p.s.LastProcessedBlock()
	if err == store.ErrNotFound {
		last = uint32(target) // first run: start from the current confirmed tip
		if err := p.s.SetLastProcessedBlock(last); err != nil {
			return 0, err
		}
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	next := int64(last) + 1
	if next > target {
		return blockProcessorIdleSleep, nil
	}

	if err := p.processBlock(next); err != nil {
		return 0, err
	}
	return 0, nil
}

func (p *BlockProcessor) processBlock(height int64) error {
	hash, err := p.rpc.BlockHash(height)
	if err != nil {
		return err
	}
	block, err := p.rpc.Block(hash)
	if err != nil {
		return err
	}
	txs, err := p.rpc.EnrichBlock(block)
	if err != nil {
		return err
	}

	timestamp := block.Header.Timestamp.Unix()
	for _, tx := range txs {
		flows := classify.Classify(tx)
		if err := classify.Emit(p.s, tx.Txid, flows, true, timestamp); err != nil {
			return err
		}
		if err := p.s.ForgetSeen(tx.Txid); err != nil {
			return err
		}
	}

	return p.s.SetLastProcessedBlock(uint32(height))
}

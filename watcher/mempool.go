// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watcher

import (
	"context"
	"time"

	"github.com/btcsuite/btclog"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/lru"
	"github.com/toole-brendan/bitnotify/classify"
	"github.com/toole-brendan/bitnotify/rpcclient"
	"github.com/toole-brendan/bitnotify/store"
)

const (
	mempoolProcessorOKSleep  = 3 * time.Second
	mempoolProcessorErrSleep = 60 * time.Second

	// frontCacheLimit bounds the in-memory LRU that fronts the
	// persisted mempool-seen cache, cutting KV reads on the hot diff
	// path without needing it to be exhaustive: a false miss just costs
	// one extra store lookup, never a correctness problem.
	frontCacheLimit = 50_000
)

// MempoolProcessor polls the node's mempool and classifies every
// transaction it hasn't already seen, as unconfirmed.
type MempoolProcessor struct {
	rpc   *rpcclient.Client
	s     *store.Store
	log   btclog.Logger
	front *lru.Cache[string]
}

// NewMempoolProcessor builds a Mempool Processor over rpc and s.
func NewMempoolProcessor(rpc *rpcclient.Client, s *store.Store, log btclog.Logger) *MempoolProcessor {
	return &MempoolProcessor{rpc: rpc, s: s, log: log, front: lru.NewCache[string](frontCacheLimit)}
}

// Run loops until ctx is cancelled.
func (p *MempoolProcessor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		sleep := mempoolProcessorOKSleep
		if err := p.step(); err != nil {
			p.log.Errorf("mempool processor: %v", err)
			sleep = mempoolProcessorErrSleep
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(sleep):
		}
	}
}

func (p *MempoolProcessor) step() error {
	txids, err := p.rpc.RawMempool()
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	for _, txid := range txids {
		if p.front.Contains(txid.String()) {
			continue
		}
		seen, err := p.s.IsSeen(txid.String())
		if err != nil {
			return err
		}
		if seen {
			p.front.Add(txid.String())
			continue
		}

		if err := p.processNew(txid, now); err != nil {
			return err
		}
		p.front.Add(txid.String())
	}
	return nil
}

func (p *MempoolProcessor) processNew(txid *chainhash.Hash, now int64) error {
	msgTx, err := p.rpc.Transaction(txid)
	if err != nil {
		return err
	}
	tx, err := p.rpc.EnrichTx(msgTx)
	if err != nil {
		return err
	}

	flows := classify.Classify(tx)
	if err := classify.Emit(p.s, tx.Txid, flows, false, now); err != nil {
		return err
	}
	return p.s.MarkSeen(tx.Txid, now)
}

// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/toole-brendan/bitnotify/chain"
)

// Tip returns the current best block height.
func (c *Client) Tip() (int64, error) {
	height, err := c.rpc.GetBlockCount()
	if err != nil {
		return 0, wrapRPCErr(err)
	}
	return height, nil
}

// BlockHash returns the hash of the block at height.
func (c *Client) BlockHash(height int64) (*chainhash.Hash, error) {
	hash, err := c.rpc.GetBlockHash(height)
	if err != nil {
		return nil, wrapRPCErr(err)
	}
	return hash, nil
}

// Block fetches the full block identified by hash.
func (c *Client) Block(hash *chainhash.Hash) (*wire.MsgBlock, error) {
	block, err := c.rpc.GetBlock(hash)
	if err != nil {
		return nil, wrapRPCErr(err)
	}
	return block, nil
}

// RawMempool lists every txid currently in the node's mempool.
func (c *Client) RawMempool() ([]*chainhash.Hash, error) {
	txids, err := c.rpc.GetRawMempool()
	if err != nil {
		return nil, wrapRPCErr(err)
	}
	return txids, nil
}

// Transaction fetches the decoded wire transaction for txid. Requires
// the node's txindex, since it may be asked for transactions that are
// not in any wallet and not in the current mempool.
func (c *Client) Transaction(txid *chainhash.Hash) (*wire.MsgTx, error) {
	tx, err := c.rpc.GetRawTransaction(txid)
	if err != nil {
		return nil, wrapRPCErr(err)
	}
	return tx.MsgTx(), nil
}

// EnrichBlock resolves every transaction in block to a chain.Tx, ready
// for the Classifier.
func (c *Client) EnrichBlock(block *wire.MsgBlock) ([]chain.Tx, error) {
	txs := make([]chain.Tx, 0, len(block.Transactions))
	for _, msgTx := range block.Transactions {
		tx, err := c.EnrichTx(msgTx)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// EnrichTx resolves msgTx's inputs to their prevout address and value
// and its outputs to their paid address, producing the chain.Tx shape
// the Classifier consumes.
//
// Coinbase inputs are skipped entirely — they have no prevout. Any
// other input whose prevout can't be fetched, or whose output index is
// out of range, contributes an empty chain.Input: per spec.md, a
// missing prevout contributes nothing to classification rather than
// failing the whole transaction.
func (c *Client) EnrichTx(msgTx *wire.MsgTx) (chain.Tx, error) {
	tx := chain.Tx{
		Txid:    msgTx.TxHash().String(),
		Inputs:  make([]chain.Input, 0, len(msgTx.TxIn)),
		Outputs: make([]chain.Output, 0, len(msgTx.TxOut)),
	}

	for _, txIn := range msgTx.TxIn {
		if isCoinbase(txIn) {
			continue
		}

		prevTx, err := c.Transaction(&txIn.PreviousOutPoint.Hash)
		if err != nil {
			tx.Inputs = append(tx.Inputs, chain.Input{})
			continue
		}
		idx := txIn.PreviousOutPoint.Index
		if int(idx) >= len(prevTx.TxOut) {
			tx.Inputs = append(tx.Inputs, chain.Input{})
			continue
		}

		prevOut := prevTx.TxOut[idx]
		addr, _ := chain.AddressFromScript(prevOut.PkScript)
		tx.Inputs = append(tx.Inputs, chain.Input{
			Address: addr,
			Value:   uint64(prevOut.Value),
		})
	}

	for _, txOut := range msgTx.TxOut {
		addr, _ := chain.AddressFromScript(txOut.PkScript)
		tx.Outputs = append(tx.Outputs, chain.Output{
			Address: addr,
			Value:   uint64(txOut.Value),
		})
	}

	return tx, nil
}

func isCoinbase(txIn *wire.TxIn) bool {
	return txIn.PreviousOutPoint.Index == 0xffffffff &&
		txIn.PreviousOutPoint.Hash == chainhash.Hash{}
}

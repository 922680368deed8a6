// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import "time"

// retryDelay is how long Preflight sleeps between retryable checks.
const retryDelay = 10 * time.Second

// minNodeVersion is the lowest Bitcoin Core version number (as
// getnetworkinfo reports it, 220000 for 22.0.0) this service
// trusts getindexinfo/txindex semantics on.
const minNodeVersion = 220000

// Preflight blocks until the connected node satisfies every precondition
// spec.md §4.4 requires, or returns a fatal error. Conditions split into
// two groups:
//
//   - fatal: wrong chain, pruning enabled, P2P network disabled, node
//     too old. These can't resolve themselves; Preflight returns
//     immediately so the caller can abort startup.
//   - retryable: node still in initial block download, no peers, or
//     txindex still catching up. Preflight sleeps retryDelay and checks
//     again rather than giving up.
func Preflight(c *Client) error {
	for {
		info, err := c.rpc.GetBlockChainInfo()
		if err != nil {
			return wrapRPCErr(err)
		}
		if info.Chain != "main" {
			return badResult("node is on chain %q, expected main", info.Chain)
		}
		if info.Pruned {
			return badResult("node has pruning enabled, txindex requires full history")
		}
		if info.InitialBlockDownload {
			time.Sleep(retryDelay)
			continue
		}

		netInfo, err := c.rpc.GetNetworkInfo()
		if err != nil {
			return wrapRPCErr(err)
		}
		if !netInfo.NetworkActive {
			return badResult("node has networkactive=false, P2P network is disabled")
		}
		if netInfo.Version < minNodeVersion {
			return badResult("node version %d below minimum %d", netInfo.Version, minNodeVersion)
		}

		peers, err := c.rpc.GetPeerInfo()
		if err != nil {
			return wrapRPCErr(err)
		}
		if len(peers) == 0 {
			time.Sleep(retryDelay)
			continue
		}

		synced, err := c.txIndexSynced()
		if err != nil {
			return err
		}
		if !synced {
			time.Sleep(retryDelay)
			continue
		}

		return nil
	}
}

// txIndexSynced reports whether the node's transaction index has caught
// up to its best block. getindexinfo isn't wrapped by the rpcclient
// library's typed API, so this issues it as a raw command.
func (c *Client) txIndexSynced() (bool, error) {
	result, err := c.rpc.RawRequest("getindexinfo", nil)
	if err != nil {
		return false, wrapRPCErr(err)
	}

	var info map[string]struct {
		Synced      bool `json:"synced"`
		BestBlockHt int  `json:"best_block_height"`
	}
	if err := unmarshalRaw(result, &info); err != nil {
		return false, badResult("parsing getindexinfo result: %v", err)
	}
	txindex, ok := info["txindex"]
	if !ok {
		return false, badResult("node has no txindex configured")
	}
	return txindex.Synced, nil
}

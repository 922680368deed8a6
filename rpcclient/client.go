// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpcclient wraps btcsuite/btcd/rpcclient with the handful of
// calls the chain watcher needs (tip tracking, block and transaction
// fetch, mempool listing, prevout enrichment and startup preflight),
// and classifies every failure into the Rpc(kind) taxonomy spec.md §7
// describes.
package rpcclient

import (
	"encoding/json"
	"fmt"

	btcrpcclient "github.com/btcsuite/btcd/rpcclient"
)

// Config holds the connection parameters for the upstream Bitcoin node.
type Config struct {
	// Host is host:port of the node's JSON-RPC endpoint.
	Host string

	// User and Pass are HTTP Basic credentials.
	User string
	Pass string

	// DisableTLS speaks plain HTTP instead of HTTPS; typical for a node
	// reachable only over localhost or a private network.
	DisableTLS bool
}

// Client is a thin, domain-scoped wrapper over *rpcclient.Client.
type Client struct {
	rpc *btcrpcclient.Client
}

// New connects to the node described by cfg. The underlying client uses
// HTTP POST mode (no websocket notifications): this service only ever
// polls, it never subscribes.
func New(cfg Config) (*Client, error) {
	connCfg := &btcrpcclient.ConnConfig{
		Host:         cfg.Host,
		User:         cfg.User,
		Pass:         cfg.Pass,
		HTTPPostMode: true,
		DisableTLS:   cfg.DisableTLS,
	}

	rpc, err := btcrpcclient.New(connCfg, nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Err: err}
	}
	return &Client{rpc: rpc}, nil
}

// Shutdown closes the underlying RPC connection.
func (c *Client) Shutdown() {
	c.rpc.Shutdown()
}

func wrapRPCErr(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindNetwork, Err: err}
}

func badResult(format string, args ...interface{}) error {
	return &Error{Kind: KindBadResult, Err: fmt.Errorf(format, args...)}
}

func unmarshalRaw(raw json.RawMessage, out interface{}) error {
	return json.Unmarshal(raw, out)
}

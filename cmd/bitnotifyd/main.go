// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command bitnotifyd runs the Bitcoin push notification service: the
// chain watcher, the retention cleaners, and the KV store they all
// share. Front ends (REST, gRPC, whatever) embed api.Service directly;
// this binary only owns the background workers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/toole-brendan/bitnotify/cleaner"
	"github.com/toole-brendan/bitnotify/config"
	"github.com/toole-brendan/bitnotify/kvstore"
	blog "github.com/toole-brendan/bitnotify/log"
	"github.com/toole-brendan/bitnotify/rpcclient"
	"github.com/toole-brendan/bitnotify/store"
	"github.com/toole-brendan/bitnotify/watcher"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "0.0.0-dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bitnotifyd:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := blog.InitLogRotator(cfg.LogFile(), cfg.MaxLogRolls()); err != nil {
		return fmt.Errorf("initializing log rotator: %w", err)
	}
	if !blog.SetAllLogLevels(cfg.DebugLevel) {
		return fmt.Errorf("invalid debug level %q", cfg.DebugLevel)
	}
	blog.MainLog.Infof("bitnotifyd version %s starting", version)

	db, err := kvstore.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening kv store: %w", err)
	}
	defer db.Close()

	s := store.New(db)

	rpc, err := rpcclient.New(rpcclient.Config{
		Host:       cfg.RPCHost,
		User:       cfg.RPCUser,
		Pass:       cfg.RPCPass,
		DisableTLS: cfg.RPCNoTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to node: %w", err)
	}
	defer rpc.Shutdown()

	blog.MainLog.Info("running startup preflight checks")
	if err := rpcclient.Preflight(rpc); err != nil {
		return fmt.Errorf("preflight failed: %w", err)
	}
	blog.MainLog.Info("preflight checks passed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	blockProc := watcher.NewBlockProcessor(rpc, s, blog.WatcherLog)
	mempoolProc := watcher.NewMempoolProcessor(rpc, s, blog.WatcherLog)
	notifCleaner := cleaner.NewNotificationCleaner(s, blog.CleanerLog)
	mempoolCleaner := cleaner.NewMempoolCleaner(s, blog.CleanerLog)

	var wg sync.WaitGroup
	for _, worker := range []func(context.Context){
		blockProc.Run,
		mempoolProc.Run,
		notifCleaner.Run,
		mempoolCleaner.Run,
	} {
		wg.Add(1)
		go func(run func(context.Context)) {
			defer wg.Done()
			run(ctx)
		}(worker)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	blog.MainLog.Info("shutdown signal received, stopping workers")
	cancel()
	wg.Wait()
	blog.MainLog.Info("bitnotifyd stopped")
	return nil
}

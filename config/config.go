// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package config loads bitnotifyd's configuration from the command
// line and an ini-style config file, in the same two-pass flags+ini
// idiom the teacher's stack depends on (jessevdk/go-flags).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "bitnotifyd.conf"
	defaultDataDirname    = "data"
	defaultLogFilename    = "bitnotifyd.log"
	defaultMaxLogRolls    = 3
	defaultRPCHost        = "127.0.0.1:8332"
)

// Config holds every setting bitnotifyd needs to run.
type Config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir    string `short:"b" long:"datadir" description:"Directory to store the notification KV store in"`
	LogDir     string `long:"logdir" description:"Directory to log output to"`

	RPCHost  string `long:"rpchost" description:"Bitcoin node JSON-RPC host:port"`
	RPCUser  string `long:"rpcuser" description:"Bitcoin node JSON-RPC username"`
	RPCPass  string `long:"rpcpass" description:"Bitcoin node JSON-RPC password"`
	RPCNoTLS bool   `long:"rpcnotls" description:"Disable TLS for the node RPC connection"`

	DebugLevel string `long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`
}

func defaultConfig() Config {
	appDir := appDataDir()
	return Config{
		ConfigFile: filepath.Join(appDir, defaultConfigFilename),
		DataDir:    filepath.Join(appDir, defaultDataDirname),
		LogDir:     filepath.Join(appDir, "logs"),
		RPCHost:    defaultRPCHost,
		DebugLevel: "info",
	}
}

// Load parses the command line and, if present, an ini-style config
// file, command line flags taking precedence over file settings. It
// follows the standard two-pass go-flags idiom: a first pass reads
// only -C/--configfile, then the config file populates the struct, then
// the command line is reapplied so explicit flags win.
func Load() (*Config, error) {
	cfg := defaultConfig()

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.Default&^flags.PrintErrors)
	if _, err := preParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); !ok || flagsErr.Type != flags.ErrHelp {
			return nil, err
		}
		os.Exit(0)
	}
	if preCfg.ConfigFile != "" {
		cfg.ConfigFile = preCfg.ConfigFile
	}

	if _, err := os.Stat(cfg.ConfigFile); err == nil {
		if err := flags.IniParse(cfg.ConfigFile, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", cfg.ConfigFile, err)
		}
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	for _, dir := range []string{cfg.DataDir, cfg.LogDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.RPCHost == "" {
		return fmt.Errorf("rpchost is required")
	}
	if c.RPCUser == "" || c.RPCPass == "" {
		return fmt.Errorf("rpcuser and rpcpass are required")
	}
	return nil
}

// LogFile is the path bitnotifyd writes its rotating log to.
func (c *Config) LogFile() string {
	return filepath.Join(c.LogDir, defaultLogFilename)
}

// MaxLogRolls is how many rotated log files bitnotifyd keeps.
func (c *Config) MaxLogRolls() int { return defaultMaxLogRolls }

func appDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".bitnotifyd")
	}
	return "."
}

// Copyright (c) 2025 The bitnotify developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package log provides the process-wide logging backend: a
// btclog.Backend writing to stdout and a rotating log file, with one
// named btclog.Logger per subsystem so each package can be leveled
// independently.
package log

import (
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
)

// logRotator rotates the on-disk log file; nil until InitLogRotator is
// called, matching the btcd idiom of deferring file logging until the
// config layer knows the log directory.
var logRotator *rotator.Rotator

var backendLog = btclog.NewBackend(logWriter{})

// Subsystem loggers. The composition root hands each one to the
// constructor of the worker that logs under it.
var (
	WatcherLog = backendLog.Logger("WTCH")
	CleanerLog = backendLog.Logger("CLNR")
	StoreLog   = backendLog.Logger("STOR")
	RPCLog     = backendLog.Logger("RPCC")
	APILog     = backendLog.Logger("API")
	ConfigLog  = backendLog.Logger("CNFG")
	MainLog    = backendLog.Logger("BNFY")
)

func init() {
	setLogLevels(btclog.LevelInfo)
}

// logWriter implements io.Writer and writes to both standard output and
// the rotating log file, if one has been initialized.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// InitLogRotator opens (creating if necessary) the log file at
// logFile and begins rotating it when it grows past 10 MiB, keeping up
// to maxRolls old copies.
func InitLogRotator(logFile string, maxRolls int) error {
	logDir := filepath.Dir(logFile)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return err
	}
	r, err := rotator.New(logFile, 10*1024, false, maxRolls)
	if err != nil {
		return err
	}
	logRotator = r
	return nil
}

// SetLogLevel sets the logging level for the named subsystem, returning
// false if no such subsystem exists.
func SetLogLevel(subsystem, levelStr string) bool {
	level, ok := btclog.LevelFromString(levelStr)
	if !ok {
		return false
	}
	logger, ok := subsystems()[subsystem]
	if !ok {
		return false
	}
	logger.SetLevel(level)
	return true
}

// SetAllLogLevels sets every subsystem's log level to levelStr,
// returning false if levelStr doesn't parse. This is what the
// composition root applies a single configured debug level through,
// matching config.Config.DebugLevel's "applies to all subsystems"
// contract.
func SetAllLogLevels(levelStr string) bool {
	level, ok := btclog.LevelFromString(levelStr)
	if !ok {
		return false
	}
	setLogLevels(level)
	return true
}

func subsystems() map[string]btclog.Logger {
	return map[string]btclog.Logger{
		"WTCH": WatcherLog,
		"CLNR": CleanerLog,
		"STOR": StoreLog,
		"RPCC": RPCLog,
		"API":  APILog,
		"CNFG": ConfigLog,
		"BNFY": MainLog,
	}
}

func setLogLevels(level btclog.Level) {
	for _, logger := range subsystems() {
		logger.SetLevel(level)
	}
}

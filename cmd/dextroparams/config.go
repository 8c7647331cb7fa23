// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dextroproject/dextrod/config"
	"github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "dextroparams.log"
)

// cliConfig defines the configuration options for dextroparams.
type cliConfig struct {
	config.NetworkFlags

	Diff       bool   `long:"diff" description:"Only show the fields that differ from the main network"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogDir     string `long:"logdir" description:"Also write logs to a rotated file in this directory"`
}

// loadConfig parses the command line arguments and sets up logging.  The
// returned bool is true when only help was requested.
func loadConfig(args []string) (*cliConfig, bool, error) {
	cfg := cliConfig{
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, true, nil
		}
		return nil, false, err
	}
	if len(remaining) > 0 {
		return nil, false, fmt.Errorf("unexpected arguments %v", remaining)
	}

	if _, err := cfg.ResolveNetwork(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, false, err
	}

	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return nil, false, err
	}
	if cfg.LogDir != "" {
		err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
		if err != nil {
			return nil, false, err
		}
	}
	return &cfg, false, nil
}

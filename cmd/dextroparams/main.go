// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/dextroproject/dextrod/chaincfg"
)

// dumpConfig is used for the full parameter dump.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// run selects the network named by args and writes its parameters to w.
func run(args []string, w io.Writer) error {
	cfg, help, err := loadConfig(args)
	if err != nil || help {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	reg, err := chaincfg.NewRegistry()
	if err != nil {
		log.Errorf("Unable to construct networks: %v", err)
		return err
	}
	params, err := cfg.Select(reg)
	if err != nil {
		log.Errorf("Unable to select network: %v", err)
		return err
	}

	if !cfg.Diff {
		dumpConfig.Fdump(w, params)
		return nil
	}

	mainNet, err := reg.Get(chaincfg.MainNet)
	if err != nil {
		return err
	}
	diffs := diffParams(mainNet, params)
	log.Debugf("%d fields of %v differ from %v", len(diffs), params.Name,
		mainNet.Name)
	for _, d := range diffs {
		fmt.Fprintf(w, "%s: %s -> %s\n", d.Name, d.From, d.To)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}

// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package chaincfg defines chain configuration parameters.

In addition to the main Dextro network, which is intended for the transfer
of monetary value, there also exists a public test network, a local regression
test network, and an in-process unit test network.  Each network has its own
message-start marker, default port, genesis block, checkpoints and address
prefixes, so that nodes and addresses of one network are never mistaken for
those of another.

The genesis block of every network is built from literal inputs when the
package is initialized and checked against its pinned hash and merkle root.
A mismatch is fatal: the package panics during initialization.  Callers that
want to observe the failure instead can use NewRegistry directly.

For library packages, chaincfg provides the ability to lookup chain
parameters and encoding magics when passed a *Params.  Node software selects
the network once at startup:

	package main

	import (
		"fmt"
		"log"

		"github.com/dextroproject/dextrod/chaincfg"
	)

	func main() {
		if err := chaincfg.SelectParams(chaincfg.RegTest); err != nil {
			log.Fatal(err)
		}
		params := chaincfg.MustActiveNetParams()
		fmt.Println(params.Name, params.DefaultPort, params.GenesisHash)
	}

Selecting a different network afterwards is an error.  Only while the unit
test network is active can selected fields be changed, through the capability
returned by UnitTestParams.
*/
package chaincfg

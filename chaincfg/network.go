// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// Network identifies one of the supported Dextro networks.
type Network int

const (
	// MainNet is the production network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the local regression test network.
	RegTest

	// UnitTest is the in-process network used by unit tests.  It is the
	// only network whose parameters can be modified after construction.
	UnitTest

	// numNetworks is the number of supported networks.  It must always
	// come last.
	numNetworks
)

var networkStrings = [numNetworks]string{
	MainNet:  "main",
	TestNet:  "test",
	RegTest:  "regtest",
	UnitTest: "unittest",
}

// String returns the network identifier used in logs and on the command
// line.
func (n Network) String() string {
	if !n.valid() {
		return fmt.Sprintf("Unknown Network (%d)", int(n))
	}
	return networkStrings[n]
}

func (n Network) valid() bool {
	return n >= MainNet && n < numNetworks
}

// ParseNetwork returns the Network with the given identifier.
func ParseNetwork(s string) (Network, error) {
	for n, name := range networkStrings {
		if name == s {
			return Network(n), nil
		}
	}
	str := fmt.Sprintf("unknown network %q", s)
	return 0, paramsError(ErrUnknownNetwork, str)
}

// Networks returns every supported network in registration order.
func Networks() []Network {
	nets := make([]Network, 0, numNetworks)
	for n := MainNet; n < numNetworks; n++ {
		nets = append(nets, n)
	}
	return nets
}

// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"os"

	"github.com/dextroproject/dextrod/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	TestNet            bool   `long:"testnet" description:"Use the test network"`
	RegTest            bool   `long:"regtest" description:"Use the regression test network"`
	UnitTest           bool   `long:"unittest" description:"Use the unit test network"`
	OverrideParamsFile string `long:"override-params-file" description:"Overrides chain params (allowed only on unittest)"`
}

type overrideParamsConfig struct {
	SubsidyReductionInterval    *int32 `json:"subsidyReductionInterval"`
	EnforceBlockUpgradeMajority *int32 `json:"enforceBlockUpgradeMajority"`
	RejectBlockOutdatedMajority *int32 `json:"rejectBlockOutdatedMajority"`
	ToCheckBlockUpgradeMajority *int32 `json:"toCheckBlockUpgradeMajority"`
	DefaultConsistencyChecks    *bool  `json:"defaultConsistencyChecks"`
	ReduceMinDifficulty         *bool  `json:"reduceMinDifficulty"`
	SkipProofOfWorkCheck        *bool  `json:"skipProofOfWorkCheck"`
}

// ResolveNetwork returns the network selected by the flags.  The default
// network is main.  It returns an error if more than one network was selected.
func (networkFlags *NetworkFlags) ResolveNetwork() (chaincfg.Network, error) {
	net := chaincfg.MainNet
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if networkFlags.TestNet {
		numNets++
		net = chaincfg.TestNet
	}
	if networkFlags.RegTest {
		numNets++
		net = chaincfg.RegTest
	}
	if networkFlags.UnitTest {
		numNets++
		net = chaincfg.UnitTest
	}
	if numNets > 1 {
		return 0, errors.New("Multiple networks parameters (testnet, " +
			"regtest, unittest) cannot be used together. Please " +
			"choose only one network")
	}
	if networkFlags.OverrideParamsFile != "" && net != chaincfg.UnitTest {
		return 0, errors.Errorf("override-params-file is allowed only " +
			"when using unittest")
	}
	return net, nil
}

// LoadNetwork parses the network flags out of args.  Options it does not know
// are left for the caller and returned with the remaining arguments.
func LoadNetwork(args []string) (*NetworkFlags, []string, error) {
	networkFlags := &NetworkFlags{}
	parser := flags.NewParser(networkFlags, flags.IgnoreUnknown)
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse network flags")
	}
	return networkFlags, remaining, nil
}

// Select resolves the network, selects it on the registry and applies the
// override params file, if any.  It returns the active parameters.
func (networkFlags *NetworkFlags) Select(reg *chaincfg.Registry) (*chaincfg.Params, error) {
	net, err := networkFlags.ResolveNetwork()
	if err != nil {
		return nil, err
	}
	if err := reg.Select(net); err != nil {
		return nil, err
	}
	if err := networkFlags.overrideParams(reg); err != nil {
		return nil, err
	}
	return reg.Active()
}

// SelectFromCommandLine selects the network named by the command line
// arguments on the registry and returns its parameters along with the
// arguments that were not network flags.
func SelectFromCommandLine(reg *chaincfg.Registry, args []string) (*chaincfg.Params, []string, error) {
	networkFlags, remaining, err := LoadNetwork(args)
	if err != nil {
		return nil, nil, err
	}
	params, err := networkFlags.Select(reg)
	if err != nil {
		return nil, nil, err
	}
	return params, remaining, nil
}

func (networkFlags *NetworkFlags) overrideParams(reg *chaincfg.Registry) error {
	if networkFlags.OverrideParamsFile == "" {
		return nil
	}

	modifiable, err := reg.ModifiableParams()
	if err != nil {
		return err
	}

	overrideParamsFile, err := os.Open(networkFlags.OverrideParamsFile)
	if err != nil {
		return err
	}
	defer overrideParamsFile.Close()

	decoder := json.NewDecoder(overrideParamsFile)
	decoder.DisallowUnknownFields()
	config := &overrideParamsConfig{}
	err = decoder.Decode(config)
	if err != nil {
		return errors.Wrapf(err, "failed to decode %s",
			networkFlags.OverrideParamsFile)
	}

	if config.SubsidyReductionInterval != nil {
		if *config.SubsidyReductionInterval <= 0 {
			return errors.Errorf("subsidyReductionInterval must be "+
				"positive, got %d", *config.SubsidyReductionInterval)
		}
		modifiable.SetSubsidyReductionInterval(*config.SubsidyReductionInterval)
	}

	if config.EnforceBlockUpgradeMajority != nil {
		modifiable.SetEnforceBlockUpgradeMajority(*config.EnforceBlockUpgradeMajority)
	}

	if config.RejectBlockOutdatedMajority != nil {
		modifiable.SetRejectBlockOutdatedMajority(*config.RejectBlockOutdatedMajority)
	}

	if config.ToCheckBlockUpgradeMajority != nil {
		modifiable.SetToCheckBlockUpgradeMajority(*config.ToCheckBlockUpgradeMajority)
	}

	if config.DefaultConsistencyChecks != nil {
		modifiable.SetDefaultConsistencyChecks(*config.DefaultConsistencyChecks)
	}

	if config.ReduceMinDifficulty != nil {
		modifiable.SetReduceMinDifficulty(*config.ReduceMinDifficulty)
	}

	if config.SkipProofOfWorkCheck != nil {
		modifiable.SetSkipProofOfWorkCheck(*config.SkipProofOfWorkCheck)
	}

	return nil
}

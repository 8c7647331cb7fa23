// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dextroproject/dextrod/chaincfg"
	"github.com/stretchr/testify/require"
)

func TestDiffParams(t *testing.T) {
	reg, err := chaincfg.NewRegistry()
	require.NoError(t, err)
	mainNet, err := reg.Get(chaincfg.MainNet)
	require.NoError(t, err)
	testNet, err := reg.Get(chaincfg.TestNet)
	require.NoError(t, err)

	require.Empty(t, diffParams(mainNet, mainNet))

	names := make(map[string]fieldDiff)
	for _, d := range diffParams(mainNet, testNet) {
		names[d.Name] = d
	}
	for _, name := range []string{"Network", "Name", "Net", "DefaultPort",
		"PubKeyHashAddrID", "ScriptHashAddrID", "Checkpoints"} {

		require.Contains(t, names, name)
	}
	// Main and test share the genesis block.
	require.NotContains(t, names, "GenesisHash")
	require.NotContains(t, names, "GenesisBlock")

	require.Contains(t, names["DefaultPort"].From, "39720")
	require.Contains(t, names["DefaultPort"].To, "30007")
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"--regtest", "--diff", "-d", "off"}, &buf))
	out := buf.String()
	require.Regexp(t, `(?m)^DefaultPort: .*39720.* -> .*30005`, out)
	require.Contains(t, out, "MineBlocksOnDemand: false -> true\n")

	buf.Reset()
	require.NoError(t, run([]string{"--testnet", "-d", "off"}, &buf))
	require.True(t, strings.Contains(buf.String(), "DefaultPort"))

	require.Error(t, run([]string{"--testnet", "--regtest"}, &buf))
	require.Error(t, run([]string{"--debuglevel", "loud"}, &buf))
	require.Error(t, run([]string{"stray"}, &buf))
}

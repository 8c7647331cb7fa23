// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dextroproject/dextrod/chaincfg"
	"github.com/stretchr/testify/require"
)

func TestResolveNetwork(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    chaincfg.Network
		wantErr bool
	}{
		{name: "default", args: nil, want: chaincfg.MainNet},
		{name: "testnet", args: []string{"--testnet"}, want: chaincfg.TestNet},
		{name: "regtest", args: []string{"--regtest"}, want: chaincfg.RegTest},
		{name: "unittest", args: []string{"--unittest"}, want: chaincfg.UnitTest},
		{name: "two networks", args: []string{"--testnet", "--regtest"}, wantErr: true},
		{name: "all networks", args: []string{"--testnet", "--regtest", "--unittest"}, wantErr: true},
		{
			name:    "override outside unittest",
			args:    []string{"--regtest", "--override-params-file=params.json"},
			wantErr: true,
		},
		{
			name: "override on unittest",
			args: []string{"--unittest", "--override-params-file=params.json"},
			want: chaincfg.UnitTest,
		},
	}

	for _, test := range tests {
		networkFlags, _, err := LoadNetwork(test.args)
		require.NoError(t, err, test.name)

		net, err := networkFlags.ResolveNetwork()
		if test.wantErr {
			require.Error(t, err, test.name)
			continue
		}
		require.NoError(t, err, test.name)
		require.Equal(t, test.want, net, test.name)
	}
}

// TestLoadNetworkRemaining ensures options which are not network flags are
// passed through untouched.
func TestLoadNetworkRemaining(t *testing.T) {
	networkFlags, remaining, err := LoadNetwork([]string{"--diff", "--testnet", "extra"})
	require.NoError(t, err)
	require.True(t, networkFlags.TestNet)
	require.False(t, networkFlags.RegTest)
	require.Contains(t, remaining, "--diff")
	require.Contains(t, remaining, "extra")
	require.NotContains(t, remaining, "--testnet")
}

func TestSelectFromCommandLine(t *testing.T) {
	reg, err := chaincfg.NewRegistry()
	require.NoError(t, err)

	params, _, err := SelectFromCommandLine(reg, []string{"--regtest"})
	require.NoError(t, err)
	require.Equal(t, chaincfg.RegTest, params.Network)

	active, err := reg.Active()
	require.NoError(t, err)
	require.Same(t, params, active)

	_, _, err = SelectFromCommandLine(reg, []string{"--testnet"})
	require.True(t, errors.Is(err, chaincfg.ErrAlreadySelected), "%v", err)

	reg, err = chaincfg.NewRegistry()
	require.NoError(t, err)
	_, _, err = SelectFromCommandLine(reg, []string{"--testnet", "--unittest"})
	require.Error(t, err)
	_, err = reg.Active()
	require.True(t, errors.Is(err, chaincfg.ErrNotSelected), "%v", err)
}

func writeOverrides(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestOverrideParamsFile(t *testing.T) {
	path := writeOverrides(t, `{
		"subsidyReductionInterval": 10,
		"enforceBlockUpgradeMajority": 1,
		"toCheckBlockUpgradeMajority": 4,
		"skipProofOfWorkCheck": true
	}`)

	reg, err := chaincfg.NewRegistry()
	require.NoError(t, err)
	params, _, err := SelectFromCommandLine(reg,
		[]string{"--unittest", "--override-params-file", path})
	require.NoError(t, err)
	require.Equal(t, chaincfg.UnitTest, params.Network)
	require.EqualValues(t, 10, params.SubsidyReductionInterval)
	require.EqualValues(t, 1, params.EnforceBlockUpgradeMajority)
	require.EqualValues(t, 4, params.ToCheckBlockUpgradeMajority)
	require.True(t, params.SkipProofOfWorkCheck)

	// Fields absent from the file keep the unit test defaults.
	require.EqualValues(t, 950, params.RejectBlockOutdatedMajority)
	require.False(t, params.ReduceMinDifficulty)
}

func TestOverrideParamsFileErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"malformed", `{"subsidyReductionInterval": `},
		{"unknown field", `{"powLimit": "ff"}`},
		{"wrong type", `{"skipProofOfWorkCheck": "yes"}`},
		{"zero interval", `{"subsidyReductionInterval": 0}`},
	}

	for _, test := range tests {
		path := writeOverrides(t, test.contents)
		reg, err := chaincfg.NewRegistry()
		require.NoError(t, err)
		_, _, err = SelectFromCommandLine(reg,
			[]string{"--unittest", "--override-params-file", path})
		require.Error(t, err, test.name)
	}

	reg, err := chaincfg.NewRegistry()
	require.NoError(t, err)
	_, _, err = SelectFromCommandLine(reg, []string{"--unittest",
		"--override-params-file", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
}

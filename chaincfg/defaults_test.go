// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMustNewRegistry ensures a fresh set of default networks can be
// constructed next to the package-level one without sharing state.
func TestMustNewRegistry(t *testing.T) {
	var r *Registry
	require.NotPanics(t, func() { r = mustNewRegistry() })
	require.NotSame(t, DefaultRegistry(), r)

	fresh, err := r.Get(MainNet)
	require.NoError(t, err)
	shared, err := Get(MainNet)
	require.NoError(t, err)
	require.NotSame(t, shared, fresh)
	require.Equal(t, shared.GenesisHash, fresh.GenesisHash)
}

// TestDefaultRegistry exercises the package-level accessors.  It is the only
// test that selects a network on the default registry.
func TestDefaultRegistry(t *testing.T) {
	require.Panics(t, func() { MustActiveNetParams() })
	_, err := ActiveNetParams()
	require.True(t, errors.Is(err, ErrNotSelected))

	mainNet, err := Get(MainNet)
	require.NoError(t, err)
	require.Equal(t, pinnedGenesisHash, mainNet.GenesisHash.String())
	require.Len(t, mainNet.FixedSeeds, len(mainFixedSeeds))

	require.True(t, IsPubKeyHashAddrID(90))
	require.True(t, IsPubKeyHashAddrID(137))
	require.True(t, IsScriptHashAddrID(33))
	require.False(t, IsScriptHashAddrID(90))

	pub, err := HDPrivateKeyToPublicKeyID(mainNet.HDPrivateKeyID[:])
	require.NoError(t, err)
	require.Equal(t, mainNet.HDPublicKeyID[:], pub)

	require.NoError(t, SelectParams(RegTest))
	require.Equal(t, RegTest, MustActiveNetParams().Network)
	require.True(t, errors.Is(SelectParams(MainNet), ErrAlreadySelected))

	_, err = UnitTestParams()
	require.True(t, errors.Is(err, ErrNotUnitTest))
}

// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

// TestConvertSeeds ensures every seed is converted verbatim with a last seen
// time between one and two weeks in the past.
func TestConvertSeeds(t *testing.T) {
	now := time.Now()
	addrs := ConvertSeeds(mainFixedSeeds, now, rand.Reader)
	require.Len(t, addrs, len(mainFixedSeeds))

	for i, addr := range addrs {
		seed := mainFixedSeeds[i]
		require.Equal(t, net.IP(seed.Addr[:]).String(), addr.IP.String())
		require.Equal(t, seed.Port, addr.Port)
		require.Equal(t, wire.SFNodeNetwork, addr.Services)

		require.False(t, addr.Timestamp.Before(now.Add(-2*oneWeek-time.Second)),
			"seed %d last seen %v", i, addr.Timestamp)
		require.False(t, addr.Timestamp.After(now.Add(-oneWeek)),
			"seed %d last seen %v", i, addr.Timestamp)
	}

	// The first seed is 5.189.139.75 mapped into IPv6.
	require.Equal(t, "5.189.139.75", addrs[0].IP.String())
	require.EqualValues(t, 39720, addrs[0].Port)
}

// TestConvertSeedsDegenerateRandom ensures a zero or failing random draw still
// yields valid records exactly one week old.
func TestConvertSeedsDegenerateRandom(t *testing.T) {
	now := time.Unix(1700000000, 0)
	for _, rnd := range []io.Reader{
		bytes.NewReader(make([]byte, 64)),
		failingReader{},
		bytes.NewReader(nil),
	} {
		addrs := ConvertSeeds(mainFixedSeeds[:2], now, rnd)
		require.Len(t, addrs, 2)
		for _, addr := range addrs {
			require.True(t, addr.Timestamp.Equal(now.Add(-oneWeek)), "%v", addr.Timestamp)
		}
	}
}

// TestConvertSeedsNoDedup ensures duplicate entries are kept in order.
func TestConvertSeedsNoDedup(t *testing.T) {
	seeds := []SeedSpec6{mainFixedSeeds[0], mainFixedSeeds[0], mainFixedSeeds[1]}
	addrs := ConvertSeeds(seeds, time.Now(), rand.Reader)
	require.Len(t, addrs, 3)
	require.Equal(t, addrs[0].IP, addrs[1].IP)
	require.NotEqual(t, addrs[1].IP, addrs[2].IP)
}

func TestConvertSeedsEmpty(t *testing.T) {
	require.Empty(t, ConvertSeeds(nil, time.Now(), rand.Reader))
}

// TestSeedSpecIP ensures the returned address does not alias the seed.
func TestSeedSpecIP(t *testing.T) {
	seed := mainFixedSeeds[0]
	ip := seed.IP()
	ip[15] = 0
	require.Equal(t, byte(0x4b), seed.Addr[15])
	require.Len(t, mainFixedSeeds[0].IP(), net.IPv6len)
}

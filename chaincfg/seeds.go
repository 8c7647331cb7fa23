// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"crypto/rand"
	"io"
	"math/big"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

const oneWeek = 7 * 24 * time.Hour

// SeedSpec6 is a compiled-in peer endpoint: an IPv6 (or IPv4-mapped)
// address and a port.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// IP returns the address of the seed.
func (s SeedSpec6) IP() net.IP {
	ip := make(net.IP, net.IPv6len)
	copy(ip, s.Addr[:])
	return ip
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags (wire.ServiceFlag).
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// mainFixedSeeds are the fixed peers of the main network.
var mainFixedSeeds = []SeedSpec6{
	{Addr: [16]byte{10: 0xff, 11: 0xff, 12: 0x05, 13: 0xbd, 14: 0x8b, 15: 0x4b}, Port: 39720},
	{Addr: [16]byte{10: 0xff, 11: 0xff, 12: 0xcf, 13: 0xb4, 14: 0xd5, 15: 0x0f}, Port: 39720},
	{Addr: [16]byte{10: 0xff, 11: 0xff, 12: 0xcf, 13: 0xb4, 14: 0xd4, 15: 0x60}, Port: 39720},
	{Addr: [16]byte{10: 0xff, 11: 0xff, 12: 0xad, 13: 0xd4, 14: 0xce, 15: 0xe3}, Port: 39720},
	{Addr: [16]byte{10: 0xff, 11: 0xff, 12: 0xad, 13: 0xf9, 14: 0x1c, 15: 0x23}, Port: 39720},
	{Addr: [16]byte{10: 0xff, 11: 0xff, 12: 0xad, 13: 0xd4, 14: 0xc5, 15: 0x0f}, Port: 39720},
	{Addr: [16]byte{10: 0xff, 11: 0xff, 12: 0x05, 13: 0xbd, 14: 0x80, 15: 0x9d}, Port: 39720},
	{Addr: [16]byte{10: 0xff, 11: 0xff, 12: 0xad, 13: 0xf9, 14: 0x3b, 15: 0x31}, Port: 39720},
}

// randSeconds returns a uniform random number of whole seconds in
// [0, max).  A failing random source yields zero.
func randSeconds(rnd io.Reader, max time.Duration) time.Duration {
	n, err := rand.Int(rnd, big.NewInt(int64(max/time.Second)))
	if err != nil {
		log.Debugf("Unable to draw seed timestamp jitter: %v", err)
		return 0
	}
	return time.Duration(n.Int64()) * time.Second
}

// ConvertSeeds turns the fixed seeds into peer addresses whose last seen
// time lies between one and two weeks before now.  A node only needs to
// connect to one or two seeds since they will hand out addresses with newer
// timestamps.  Entries are neither reordered nor deduplicated.
func ConvertSeeds(seeds []SeedSpec6, now time.Time, rnd io.Reader) []*wire.NetAddress {
	addrs := make([]*wire.NetAddress, 0, len(seeds))
	for _, seed := range seeds {
		lastSeen := now.Add(-randSeconds(rnd, oneWeek) - oneWeek)
		addrs = append(addrs, wire.NewNetAddressTimestamp(lastSeen,
			wire.SFNodeNetwork, seed.IP(), seed.Port))
	}
	return addrs
}

// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quark

import (
	"encoding/binary"
	"math/bits"
)

const blakeBlockSize = 128

var blakeIV = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// blakeC holds the leading digits of pi used as round constants.
var blakeC = [16]uint64{
	0x243f6a8885a308d3, 0x13198a2e03707344, 0xa4093822299f31d0, 0x082efa98ec4e6c89,
	0x452821e638d01377, 0xbe5466cf34e90c6c, 0xc0ac29b7c97c50dd, 0x3f84d5b5b5470917,
	0x9216d5d98979fb1b, 0xd1310ba698dfb5ac, 0x2ffd72dbd01adfb7, 0xb8e1afed6a267e96,
	0xba7c9045f12c7f99, 0x24a19947b3916cf7, 0x0801f2e2858efc16, 0x636920d871574e69,
}

var blakeSigma = [10][16]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

// blakeCompress runs the BLAKE-512 compression function over a single block.
// The counter is the number of message bits hashed up to and including this
// block, or zero for a block that holds only padding.
func blakeCompress(h *[8]uint64, block []byte, counter uint64) {
	var m [16]uint64
	for i := range m {
		m[i] = binary.BigEndian.Uint64(block[i*8:])
	}

	var v [16]uint64
	copy(v[:8], h[:])
	v[8] = blakeC[0]
	v[9] = blakeC[1]
	v[10] = blakeC[2]
	v[11] = blakeC[3]
	v[12] = counter ^ blakeC[4]
	v[13] = counter ^ blakeC[5]
	v[14] = blakeC[6]
	v[15] = blakeC[7]

	g := func(s *[16]uint8, a, b, c, d, i int) {
		v[a] += v[b] + (m[s[2*i]] ^ blakeC[s[2*i+1]])
		v[d] = bits.RotateLeft64(v[d]^v[a], -32)
		v[c] += v[d]
		v[b] = bits.RotateLeft64(v[b]^v[c], -25)
		v[a] += v[b] + (m[s[2*i+1]] ^ blakeC[s[2*i]])
		v[d] = bits.RotateLeft64(v[d]^v[a], -16)
		v[c] += v[d]
		v[b] = bits.RotateLeft64(v[b]^v[c], -11)
	}

	for r := 0; r < 16; r++ {
		s := &blakeSigma[r%10]
		g(s, 0, 4, 8, 12, 0)
		g(s, 1, 5, 9, 13, 1)
		g(s, 2, 6, 10, 14, 2)
		g(s, 3, 7, 11, 15, 3)
		g(s, 0, 5, 10, 15, 4)
		g(s, 1, 6, 11, 12, 5)
		g(s, 2, 7, 8, 13, 6)
		g(s, 3, 4, 9, 14, 7)
	}

	for i := 0; i < 8; i++ {
		h[i] ^= v[i] ^ v[i+8]
	}
}

// blake512 returns the BLAKE-512 digest of data.
func blake512(data []byte) [64]byte {
	h := blakeIV
	bitLen := uint64(len(data)) * 8

	var counter uint64
	for len(data) >= blakeBlockSize {
		counter += blakeBlockSize * 8
		blakeCompress(&h, data[:blakeBlockSize], counter)
		data = data[blakeBlockSize:]
	}

	var buf [2 * blakeBlockSize]byte
	n := copy(buf[:], data)
	buf[n] = 0x80
	if n < blakeBlockSize-16 {
		buf[blakeBlockSize-17] |= 0x01
		binary.BigEndian.PutUint64(buf[blakeBlockSize-8:], bitLen)
		if n == 0 {
			blakeCompress(&h, buf[:blakeBlockSize], 0)
		} else {
			blakeCompress(&h, buf[:blakeBlockSize], bitLen)
		}
	} else {
		blakeCompress(&h, buf[:blakeBlockSize], bitLen)
		buf[2*blakeBlockSize-17] |= 0x01
		binary.BigEndian.PutUint64(buf[2*blakeBlockSize-8:], bitLen)
		blakeCompress(&h, buf[blakeBlockSize:], 0)
	}

	var out [64]byte
	for i, w := range h {
		binary.BigEndian.PutUint64(out[i*8:], w)
	}
	return out
}

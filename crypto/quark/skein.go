// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quark

import (
	"encoding/binary"
	"math/bits"
)

const (
	skeinBlockSize = 64
	skeinRounds    = 72

	// skeinKeyParity is the Threefish key schedule constant C240.
	skeinKeyParity = 0x1bd11bdaa9fc1a22
)

// UBI block types.
const (
	skeinTypeConfig  = 4
	skeinTypeMessage = 48
	skeinTypeOutput  = 63
)

var skeinRotations = [8][4]int{
	{46, 36, 19, 37},
	{33, 27, 14, 42},
	{17, 49, 36, 39},
	{44, 9, 54, 56},
	{39, 30, 34, 24},
	{13, 50, 10, 17},
	{25, 29, 39, 43},
	{8, 35, 56, 22},
}

var skeinPermutation = [8]int{2, 1, 4, 7, 6, 5, 0, 3}

// threefish512 encrypts block under key and the two tweak words.
func threefish512(key *[8]uint64, tweak0, tweak1 uint64, block *[8]uint64) [8]uint64 {
	var k [9]uint64
	copy(k[:8], key[:])
	k[8] = skeinKeyParity
	for i := 0; i < 8; i++ {
		k[8] ^= k[i]
	}
	t := [3]uint64{tweak0, tweak1, tweak0 ^ tweak1}

	v := *block
	inject := func(s int) {
		for i := 0; i < 8; i++ {
			v[i] += k[(s+i)%9]
		}
		v[5] += t[s%3]
		v[6] += t[(s+1)%3]
		v[7] += uint64(s)
	}

	for d := 0; d < skeinRounds; d++ {
		if d%4 == 0 {
			inject(d / 4)
		}
		var f [8]uint64
		for j := 0; j < 4; j++ {
			y0 := v[2*j] + v[2*j+1]
			f[2*j] = y0
			f[2*j+1] = bits.RotateLeft64(v[2*j+1], skeinRotations[d%8][j]) ^ y0
		}
		for i := range v {
			v[i] = f[skeinPermutation[i]]
		}
	}
	inject(skeinRounds / 4)

	return v
}

// skeinUBI runs unique block iteration over msg starting from chaining value
// g, with every block tagged with the given type.
func skeinUBI(g [8]uint64, msg []byte, blockType uint64) [8]uint64 {
	var pos uint64
	first := true
	for {
		var block [skeinBlockSize]byte
		n := copy(block[:], msg)
		msg = msg[n:]
		pos += uint64(n)

		tweak1 := blockType << 56
		if first {
			tweak1 |= 1 << 62
		}
		last := len(msg) == 0
		if last {
			tweak1 |= 1 << 63
		}

		var w [8]uint64
		for i := range w {
			w[i] = binary.LittleEndian.Uint64(block[i*8:])
		}
		e := threefish512(&g, pos, tweak1, &w)
		for i := range g {
			g[i] = e[i] ^ w[i]
		}

		if last {
			return g
		}
		first = false
	}
}

// skein512 returns the Skein-512-512 digest of data.
func skein512(data []byte) [64]byte {
	var config [32]byte
	copy(config[:4], "SHA3")
	binary.LittleEndian.PutUint16(config[4:], 1)
	binary.LittleEndian.PutUint64(config[8:], 512)

	g := skeinUBI([8]uint64{}, config[:], skeinTypeConfig)
	g = skeinUBI(g, data, skeinTypeMessage)
	g = skeinUBI(g, make([]byte, 8), skeinTypeOutput)

	var out [64]byte
	for i, w := range g {
		binary.LittleEndian.PutUint64(out[i*8:], w)
	}
	return out
}

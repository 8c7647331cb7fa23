// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quark

import "encoding/binary"

const (
	jhBlockSize = 64
	jhStateSize = 128
	jhRounds    = 42
)

// jhSbox holds the two 4-bit S-boxes.  Each bit of the round constant picks
// which of them is applied to the matching state nibble.
var jhSbox = [2][16]byte{
	{9, 0, 4, 11, 13, 12, 3, 15, 1, 10, 2, 6, 7, 5, 8, 14},
	{3, 12, 6, 13, 5, 7, 1, 9, 15, 2, 0, 4, 11, 10, 14, 8},
}

// jhInitialConstant is the first round constant, the fractional part of
// sqrt(2), one nibble per byte.
var jhInitialConstant = [64]byte{
	0x6, 0xa, 0x0, 0x9, 0xe, 0x6, 0x6, 0x7, 0xf, 0x3, 0xb, 0xc, 0xc, 0x9, 0x0, 0x8,
	0xb, 0x2, 0xf, 0xb, 0x1, 0x3, 0x6, 0x6, 0xe, 0xa, 0x9, 0x5, 0x7, 0xd, 0x3, 0xe,
	0x3, 0xa, 0xd, 0xe, 0xc, 0x1, 0x7, 0x5, 0x1, 0x2, 0x7, 0x7, 0x5, 0x0, 0x9, 0x9,
	0xd, 0xa, 0x2, 0xf, 0x5, 0x9, 0x0, 0xb, 0x0, 0x6, 0x6, 0x7, 0x3, 0x2, 0x2, 0xa,
}

// jhRoundConstants are derived once from jhInitialConstant by applying the
// 256-bit round function with an all-zero constant.
var jhRoundConstants = func() (rc [jhRounds][64]byte) {
	c := jhInitialConstant
	for r := range rc {
		rc[r] = c
		jhRound(c[:], nil)
	}
	return rc
}()

// jhMDS is the linear transformation L over a pair of nibbles.
func jhMDS(a, b byte) (byte, byte) {
	b ^= (a<<1 ^ a>>3 ^ (a>>2)&2) & 0xf
	a ^= (b<<1 ^ b>>3 ^ (b>>2)&2) & 0xf
	return a, b
}

// jhRound applies one round of the nibble-oriented JH round function to a.
// When rc is nil every nibble goes through the first S-box, which is how the
// round constants themselves are generated.
func jhRound(a []byte, rc *[64]byte) {
	n := len(a)
	var tem [256]byte
	for i := 0; i < n; i++ {
		sel := byte(0)
		if rc != nil {
			sel = rc[i>>2] >> (3 - uint(i&3)) & 1
		}
		tem[i] = jhSbox[sel][a[i]]
	}
	for i := 0; i < n; i += 2 {
		tem[i], tem[i+1] = jhMDS(tem[i], tem[i+1])
	}

	// Permutation layer: initial swap, P', final swap.
	for i := 0; i < n; i += 4 {
		tem[i+2], tem[i+3] = tem[i+3], tem[i+2]
	}
	half := n / 2
	for i := 0; i < half; i++ {
		a[i] = tem[i<<1]
		a[i+half] = tem[i<<1+1]
	}
	for i := half; i < n; i += 2 {
		a[i], a[i+1] = a[i+1], a[i]
	}
}

func jhBit(h *[jhStateSize]byte, i int) byte {
	return h[i>>3] >> (7 - uint(i&7)) & 1
}

// jhE8 is the bijective function E8 over the 1024-bit state.
func jhE8(h *[jhStateSize]byte) {
	var tem, a [256]byte
	for i := 0; i < 256; i++ {
		tem[i] = jhBit(h, i)<<3 | jhBit(h, i+256)<<2 | jhBit(h, i+512)<<1 | jhBit(h, i+768)
	}
	for i := 0; i < 128; i++ {
		a[i<<1] = tem[i]
		a[i<<1+1] = tem[i+128]
	}

	for r := 0; r < jhRounds; r++ {
		jhRound(a[:], &jhRoundConstants[r])
	}

	for i := 0; i < 128; i++ {
		tem[i] = a[i<<1]
		tem[i+128] = a[i<<1+1]
	}
	*h = [jhStateSize]byte{}
	for i := 0; i < 256; i++ {
		shift := 7 - uint(i&7)
		h[i>>3] |= (tem[i] >> 3 & 1) << shift
		h[(i+256)>>3] |= (tem[i] >> 2 & 1) << shift
		h[(i+512)>>3] |= (tem[i] >> 1 & 1) << shift
		h[(i+768)>>3] |= (tem[i] & 1) << shift
	}
}

// jhBlock is the compression function F8.
func jhBlock(h *[jhStateSize]byte, block []byte) {
	for i := 0; i < jhBlockSize; i++ {
		h[i] ^= block[i]
	}
	jhE8(h)
	for i := 0; i < jhBlockSize; i++ {
		h[jhBlockSize+i] ^= block[i]
	}
}

// jh512 returns the JH-512 digest of data.
func jh512(data []byte) [64]byte {
	var h [jhStateSize]byte
	binary.BigEndian.PutUint16(h[:2], 512)
	jhBlock(&h, make([]byte, jhBlockSize))

	bitLen := uint64(len(data)) * 8
	for len(data) >= jhBlockSize {
		jhBlock(&h, data[:jhBlockSize])
		data = data[jhBlockSize:]
	}

	// Unless the message filled its last block there are always two
	// padding blocks, the second holding only the 128-bit length.
	var buf [2 * jhBlockSize]byte
	n := copy(buf[:], data)
	buf[n] = 0x80
	tail := buf[:jhBlockSize]
	if n != 0 {
		tail = buf[:]
	}
	binary.BigEndian.PutUint64(tail[len(tail)-8:], bitLen)
	for len(tail) > 0 {
		jhBlock(&h, tail[:jhBlockSize])
		tail = tail[jhBlockSize:]
	}

	var out [64]byte
	copy(out[:], h[jhBlockSize:])
	return out
}

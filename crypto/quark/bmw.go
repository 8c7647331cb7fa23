// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quark

import (
	"encoding/binary"
	"math/bits"
)

const bmwBlockSize = 128

func bmwS0(x uint64) uint64 {
	return x>>1 ^ x<<3 ^ bits.RotateLeft64(x, 4) ^ bits.RotateLeft64(x, 37)
}

func bmwS1(x uint64) uint64 {
	return x>>1 ^ x<<2 ^ bits.RotateLeft64(x, 13) ^ bits.RotateLeft64(x, 43)
}

func bmwS2(x uint64) uint64 {
	return x>>2 ^ x<<1 ^ bits.RotateLeft64(x, 19) ^ bits.RotateLeft64(x, 53)
}

func bmwS3(x uint64) uint64 {
	return x>>2 ^ x<<2 ^ bits.RotateLeft64(x, 28) ^ bits.RotateLeft64(x, 59)
}

func bmwS4(x uint64) uint64 { return x>>1 ^ x }
func bmwS5(x uint64) uint64 { return x>>2 ^ x }

// bmwAddElement mixes message words and the round constant for expansion
// step j.
func bmwAddElement(m, h *[16]uint64, j int) uint64 {
	a := (j - 16) % 16
	b := (j - 13) % 16
	c := (j - 6) % 16
	k := uint64(j) * 0x0555555555555555
	return (bits.RotateLeft64(m[a], a+1) + bits.RotateLeft64(m[b], b+1) -
		bits.RotateLeft64(m[c], c+1) + k) ^ h[(j-16+7)%16]
}

// bmwCompress returns the chaining value that results from compressing
// message block m into h.
func bmwCompress(h, m *[16]uint64) [16]uint64 {
	var x [16]uint64
	for i := range x {
		x[i] = m[i] ^ h[i]
	}

	var w [16]uint64
	w[0] = x[5] - x[7] + x[10] + x[13] + x[14]
	w[1] = x[6] - x[8] + x[11] + x[14] - x[15]
	w[2] = x[0] + x[7] + x[9] - x[12] + x[15]
	w[3] = x[0] - x[1] + x[8] - x[10] + x[13]
	w[4] = x[1] + x[2] + x[9] - x[11] - x[14]
	w[5] = x[3] - x[2] + x[10] - x[12] + x[15]
	w[6] = x[4] - x[0] - x[3] - x[11] + x[13]
	w[7] = x[1] - x[4] - x[5] - x[12] - x[14]
	w[8] = x[2] - x[5] - x[6] + x[13] - x[15]
	w[9] = x[0] - x[3] + x[6] - x[7] + x[14]
	w[10] = x[8] - x[1] - x[4] - x[7] + x[15]
	w[11] = x[8] - x[0] - x[2] - x[5] + x[9]
	w[12] = x[1] + x[3] - x[6] - x[9] + x[10]
	w[13] = x[2] + x[4] + x[7] + x[10] + x[11]
	w[14] = x[3] - x[5] + x[8] - x[11] - x[12]
	w[15] = x[12] - x[4] - x[6] - x[9] + x[13]

	s := [5]func(uint64) uint64{bmwS0, bmwS1, bmwS2, bmwS3, bmwS4}
	var q [32]uint64
	for i := 0; i < 16; i++ {
		q[i] = s[i%5](w[i]) + h[(i+1)%16]
	}

	expand1 := [4]func(uint64) uint64{bmwS1, bmwS2, bmwS3, bmwS0}
	for j := 16; j < 18; j++ {
		var acc uint64
		for k := 0; k < 16; k++ {
			acc += expand1[k%4](q[j-16+k])
		}
		q[j] = acc + bmwAddElement(m, h, j)
	}
	for j := 18; j < 32; j++ {
		q[j] = q[j-16] + bits.RotateLeft64(q[j-15], 5) +
			q[j-14] + bits.RotateLeft64(q[j-13], 11) +
			q[j-12] + bits.RotateLeft64(q[j-11], 27) +
			q[j-10] + bits.RotateLeft64(q[j-9], 32) +
			q[j-8] + bits.RotateLeft64(q[j-7], 37) +
			q[j-6] + bits.RotateLeft64(q[j-5], 43) +
			q[j-4] + bits.RotateLeft64(q[j-3], 53) +
			bmwS4(q[j-2]) + bmwS5(q[j-1]) +
			bmwAddElement(m, h, j)
	}

	var xl, xh uint64
	for i := 16; i < 24; i++ {
		xl ^= q[i]
	}
	xh = xl
	for i := 24; i < 32; i++ {
		xh ^= q[i]
	}

	var n [16]uint64
	n[0] = (xh<<5 ^ q[16]>>5 ^ m[0]) + (xl ^ q[24] ^ q[0])
	n[1] = (xh>>7 ^ q[17]<<8 ^ m[1]) + (xl ^ q[25] ^ q[1])
	n[2] = (xh>>5 ^ q[18]<<5 ^ m[2]) + (xl ^ q[26] ^ q[2])
	n[3] = (xh>>1 ^ q[19]<<5 ^ m[3]) + (xl ^ q[27] ^ q[3])
	n[4] = (xh>>3 ^ q[20] ^ m[4]) + (xl ^ q[28] ^ q[4])
	n[5] = (xh<<6 ^ q[21]>>6 ^ m[5]) + (xl ^ q[29] ^ q[5])
	n[6] = (xh>>4 ^ q[22]<<6 ^ m[6]) + (xl ^ q[30] ^ q[6])
	n[7] = (xh>>11 ^ q[23]<<2 ^ m[7]) + (xl ^ q[31] ^ q[7])
	n[8] = bits.RotateLeft64(n[4], 9) + (xh ^ q[24] ^ m[8]) + (xl<<8 ^ q[23] ^ q[8])
	n[9] = bits.RotateLeft64(n[5], 10) + (xh ^ q[25] ^ m[9]) + (xl>>6 ^ q[16] ^ q[9])
	n[10] = bits.RotateLeft64(n[6], 11) + (xh ^ q[26] ^ m[10]) + (xl<<6 ^ q[17] ^ q[10])
	n[11] = bits.RotateLeft64(n[7], 12) + (xh ^ q[27] ^ m[11]) + (xl<<4 ^ q[18] ^ q[11])
	n[12] = bits.RotateLeft64(n[0], 13) + (xh ^ q[28] ^ m[12]) + (xl>>3 ^ q[19] ^ q[12])
	n[13] = bits.RotateLeft64(n[1], 14) + (xh ^ q[29] ^ m[13]) + (xl>>4 ^ q[20] ^ q[13])
	n[14] = bits.RotateLeft64(n[2], 15) + (xh ^ q[30] ^ m[14]) + (xl>>7 ^ q[21] ^ q[14])
	n[15] = bits.RotateLeft64(n[3], 16) + (xh ^ q[31] ^ m[15]) + (xl>>2 ^ q[22] ^ q[15])
	return n
}

func bmwBlock(h *[16]uint64, block []byte) {
	var m [16]uint64
	for i := range m {
		m[i] = binary.LittleEndian.Uint64(block[i*8:])
	}
	*h = bmwCompress(h, &m)
}

// bmw512 returns the Blue Midnight Wish 512 digest of data.
func bmw512(data []byte) [64]byte {
	var h [16]uint64
	for i := range h {
		h[i] = 0x8081828384858687 + uint64(i)*0x0808080808080808
	}
	bitLen := uint64(len(data)) * 8

	for len(data) >= bmwBlockSize {
		bmwBlock(&h, data[:bmwBlockSize])
		data = data[bmwBlockSize:]
	}

	var buf [2 * bmwBlockSize]byte
	n := copy(buf[:], data)
	buf[n] = 0x80
	if n < bmwBlockSize-8 {
		binary.LittleEndian.PutUint64(buf[bmwBlockSize-8:], bitLen)
		bmwBlock(&h, buf[:bmwBlockSize])
	} else {
		binary.LittleEndian.PutUint64(buf[2*bmwBlockSize-8:], bitLen)
		bmwBlock(&h, buf[:bmwBlockSize])
		bmwBlock(&h, buf[bmwBlockSize:])
	}

	// The final transformation compresses the chaining value as a message
	// under a fixed key.
	var final [16]uint64
	for i := range final {
		final[i] = 0xaaaaaaaaaaaaaaa0 + uint64(i)
	}
	h = bmwCompress(&final, &h)

	var out [64]byte
	for i, w := range h[8:] {
		binary.LittleEndian.PutUint64(out[i*8:], w)
	}
	return out
}

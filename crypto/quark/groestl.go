// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quark

import "encoding/binary"

const (
	groestlBlockSize = 128
	groestlRounds    = 14
)

// aesSbox is the AES substitution box used by the SubBytes step.
var aesSbox = [256]byte{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
	0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
	0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
	0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
	0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
	0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
	0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
	0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
	0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
	0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
	0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
}

// groestlMix is the first row of the circulant MixBytes matrix.
var groestlMix = [8]byte{2, 2, 3, 4, 5, 3, 5, 7}

var (
	groestlShiftP = [8]int{0, 1, 2, 3, 4, 5, 6, 11}
	groestlShiftQ = [8]int{1, 3, 5, 11, 0, 2, 4, 6}
)

// gfMul multiplies a and b in GF(2^8) modulo the AES polynomial.
func gfMul(a, b byte) byte {
	var r byte
	for b != 0 {
		if b&1 != 0 {
			r ^= a
		}
		carry := a & 0x80
		a <<= 1
		if carry != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return r
}

// groestlPermute applies the 1024-bit P permutation, or Q when q is set, to
// the state in place.  The state is stored column by column, so byte 8*j+i is
// row i of column j.
func groestlPermute(state *[groestlBlockSize]byte, q bool) {
	var a [8][16]byte
	for j := 0; j < 16; j++ {
		for i := 0; i < 8; i++ {
			a[i][j] = state[8*j+i]
		}
	}

	shift := &groestlShiftP
	if q {
		shift = &groestlShiftQ
	}

	for r := 0; r < groestlRounds; r++ {
		// AddRoundConstant.
		if q {
			for i := 0; i < 8; i++ {
				for j := 0; j < 16; j++ {
					a[i][j] ^= 0xff
				}
			}
			for j := 0; j < 16; j++ {
				a[7][j] ^= byte(j<<4) ^ byte(r)
			}
		} else {
			for j := 0; j < 16; j++ {
				a[0][j] ^= byte(j<<4) ^ byte(r)
			}
		}

		// SubBytes and ShiftBytes.
		var t [8][16]byte
		for i := 0; i < 8; i++ {
			for j := 0; j < 16; j++ {
				t[i][j] = aesSbox[a[i][(j+shift[i])%16]]
			}
		}

		// MixBytes.
		for j := 0; j < 16; j++ {
			for i := 0; i < 8; i++ {
				var s byte
				for k := 0; k < 8; k++ {
					s ^= gfMul(groestlMix[(k-i+8)%8], t[k][j])
				}
				a[i][j] = s
			}
		}
	}

	for j := 0; j < 16; j++ {
		for i := 0; i < 8; i++ {
			state[8*j+i] = a[i][j]
		}
	}
}

func groestlBlock(h *[groestlBlockSize]byte, block []byte) {
	var p, q [groestlBlockSize]byte
	copy(q[:], block)
	for i := range p {
		p[i] = h[i] ^ q[i]
	}
	groestlPermute(&p, false)
	groestlPermute(&q, true)
	for i := range h {
		h[i] ^= p[i] ^ q[i]
	}
}

// groestl512 returns the Grøstl-512 digest of data.
func groestl512(data []byte) [64]byte {
	var h [groestlBlockSize]byte
	binary.BigEndian.PutUint16(h[groestlBlockSize-2:], 512)

	var blocks uint64
	for len(data) >= groestlBlockSize {
		groestlBlock(&h, data[:groestlBlockSize])
		data = data[groestlBlockSize:]
		blocks++
	}

	var buf [2 * groestlBlockSize]byte
	n := copy(buf[:], data)
	buf[n] = 0x80
	tail := buf[:groestlBlockSize]
	if n >= groestlBlockSize-8 {
		tail = buf[:]
	}
	blocks += uint64(len(tail) / groestlBlockSize)
	binary.BigEndian.PutUint64(tail[len(tail)-8:], blocks)
	for len(tail) > 0 {
		groestlBlock(&h, tail[:groestlBlockSize])
		tail = tail[groestlBlockSize:]
	}

	// Output transformation: P(h) xor h, truncated to the last 512 bits.
	p := h
	groestlPermute(&p, false)
	var out [64]byte
	for i := range out {
		out[i] = p[64+i] ^ h[64+i]
	}
	return out
}

// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quark

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/sha3"
)

// Size is the size of a Quark digest in bytes.
const Size = 32

// branchMask selects the bit of the first digest byte that decides which
// function a conditional step uses.
const branchMask = 8

// keccak512 returns the Keccak-512 digest of data using the original Keccak
// padding rather than the FIPS 202 one.
func keccak512(data []byte) [64]byte {
	var out [64]byte
	h := sha3.NewLegacyKeccak512()
	h.Write(data)
	h.Sum(out[:0])
	return out
}

// Sum256 returns the Quark digest of data.
func Sum256(data []byte) [Size]byte {
	h := blake512(data)
	h = bmw512(h[:])
	if h[0]&branchMask != 0 {
		h = groestl512(h[:])
	} else {
		h = skein512(h[:])
	}
	h = groestl512(h[:])
	h = jh512(h[:])
	if h[0]&branchMask != 0 {
		h = blake512(h[:])
	} else {
		h = bmw512(h[:])
	}
	h = keccak512(h[:])
	h = skein512(h[:])
	if h[0]&branchMask != 0 {
		h = keccak512(h[:])
	} else {
		h = jh512(h[:])
	}

	var out [Size]byte
	copy(out[:], h[:Size])
	return out
}

// Hash returns the Quark digest of data as a chainhash.Hash.
func Hash(data []byte) chainhash.Hash {
	return chainhash.Hash(Sum256(data))
}

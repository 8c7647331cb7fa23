// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package quark implements the Quark proof-of-work hash used to identify blocks
with a header version below 4.

Quark chains six 512-bit hash functions (BLAKE, Blue Midnight Wish, Grøstl, JH,
Keccak and Skein).  Three of the nine steps pick one of two functions based on
bit 3 of the first byte of the previous digest:

	blake512 -> bmw512 -> (groestl512 | skein512) -> groestl512 -> jh512 ->
	(blake512 | bmw512) -> keccak512 -> skein512 -> (keccak512 | jh512)

The final 512-bit digest is truncated to its first 32 bytes, which are the
little-endian bytes of the resulting chainhash.Hash.

Only the one-shot forms needed for hashing block headers are provided.  The
individual primitives are not exported since nothing outside of the Quark
chain should depend on them.
*/
package quark

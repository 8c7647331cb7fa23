// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

const (
	pinnedGenesisHash   = "0000035f2ce21c2821bec7090e6e70995d556e0c35b1c65eec129a0b914c764a"
	pinnedGenesisMerkle = "e23d621010c1aa0f3f8b10dccf8ab5bdcc7977dd9e730a53879ef50e58d2506f"

	// genesisSigScript is the coinbase signature script of every network:
	// the difficulty constant, the fixed 0x04 push and the timestamp.
	genesisSigScript = "04ffff001d010430546865206e657720636861696e20666f722044657872746f" +
		"20737461727473203034204e6f76656d6265722032303139"

	// genesisHeader is the serialized genesis block header.
	genesisHeader = "0100000000000000000000000000000000000000000000000000000000000000" +
		"000000006f50d2580ef59e87530a739edd7779ccbdb58acfdc108b3f0faac11010623de2" +
		"a0f6bf5df0ff0f1e01b50d00"
)

// testParams returns the finalized parameters of net with a deterministic
// seed conversion.
func testParams(t *testing.T, net Network) *Params {
	t.Helper()
	params, err := newParams(net, time.Unix(1700000000, 0), bytes.NewReader(make([]byte, 1024)))
	require.NoError(t, err)
	return params
}

// TestGenesisBlock ensures the genesis block of every network is built from
// its literal inputs and reproduces the pinned hash and merkle root.
func TestGenesisBlock(t *testing.T) {
	for _, net := range Networks() {
		params := testParams(t, net)
		block := params.GenesisBlock
		require.NotNil(t, block, net.String())

		hash := BlockHash(&block.Header)
		require.Equal(t, pinnedGenesisHash, hash.String(), net.String())
		require.Equal(t, pinnedGenesisHash, params.GenesisHash.String(), net.String())
		require.Equal(t, pinnedGenesisMerkle, block.Header.MerkleRoot.String(), net.String())

		hashes := params.Checkpoints.Checkpoints
		require.NotEmpty(t, hashes, net.String())
		require.True(t, hashes[0].Hash.IsEqual(params.GenesisHash), net.String())
	}
}

// TestGenesisBlockLayout ensures the genesis block has the expected
// serialized header, coinbase transaction and block hash function.
func TestGenesisBlockLayout(t *testing.T) {
	block := testParams(t, MainNet).GenesisBlock

	var buf bytes.Buffer
	require.NoError(t, block.Header.Serialize(&buf))
	require.Equal(t, genesisHeader, hex.EncodeToString(buf.Bytes()))

	require.Len(t, block.Transactions, 1)
	tx := block.Transactions[0]
	require.EqualValues(t, 1, tx.Version)
	require.Len(t, tx.TxIn, 1)
	require.Len(t, tx.TxOut, 1)

	in := tx.TxIn[0]
	require.Equal(t, wire.MaxPrevOutIndex, in.PreviousOutPoint.Index)
	require.Equal(t, chainhash.Hash{}, in.PreviousOutPoint.Hash)
	require.Equal(t, genesisSigScript, hex.EncodeToString(in.SignatureScript))

	out := tx.TxOut[0]
	require.Equal(t, int64(50*btcutil.SatoshiPerBitcoin), out.Value)
	require.Len(t, out.PkScript, 67)
	require.EqualValues(t, 0x41, out.PkScript[0])
	require.EqualValues(t, 0xac, out.PkScript[66])

	// A single transaction is its own merkle root.
	require.Equal(t, block.Header.MerkleRoot, tx.TxHash())

	// The genesis block predates version 4 and is hashed with Quark, so
	// double SHA-256 must not reproduce the pinned hash.
	sha := block.Header.BlockHash()
	require.NotEqual(t, pinnedGenesisHash, sha.String())
}

// TestGenesisCoinbase ensures the coinbase script pushes the fixed number 4 as
// a one-byte data push rather than the OP_4 opcode, which would change the
// transaction hash and therefore the merkle root.
func TestGenesisCoinbase(t *testing.T) {
	for _, net := range Networks() {
		p, err := unfinalizedParams(net)
		require.NoError(t, err)
		tx, err := p.genesis.coinbase()
		require.NoError(t, err)

		script := tx.TxIn[0].SignatureScript
		require.Equal(t, "04ffff001d0104", hex.EncodeToString(script[:7]), net.String())
		require.EqualValues(t, len(p.genesis.Timestamp), script[7], net.String())
		require.Equal(t, pinnedGenesisMerkle, tx.TxHash().String(), net.String())
	}
}

// TestBlockHashVersion ensures only headers before version 4 are hashed with
// Quark.  From version 4 on the wire header is double SHA-256 hashed.
func TestBlockHashVersion(t *testing.T) {
	header := testParams(t, MainNet).GenesisBlock.Header
	header.Version = 4
	require.Equal(t, header.BlockHash(), BlockHash(&header))

	header.Version = 3
	require.NotEqual(t, header.BlockHash(), BlockHash(&header))
}

// TestGenesisMismatch ensures a corrupted genesis input is reported with an
// error identifying which value did not match.
func TestGenesisMismatch(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(p *Params)
		code    ErrorCode
		field   string
	}{
		{
			name:    "wrong nonce",
			corrupt: func(p *Params) { p.genesis.Nonce++ },
			code:    ErrGenesisHashMismatch,
			field:   "hash",
		},
		{
			name:    "wrong time",
			corrupt: func(p *Params) { p.genesis.Time = p.genesis.Time.Add(time.Second) },
			code:    ErrGenesisHashMismatch,
			field:   "hash",
		},
		{
			name:    "wrong timestamp",
			corrupt: func(p *Params) { p.genesis.Timestamp += "!" },
			code:    ErrGenesisMerkleMismatch,
			field:   "merkle root",
		},
		{
			name:    "wrong reward",
			corrupt: func(p *Params) { p.genesis.Reward++ },
			code:    ErrGenesisMerkleMismatch,
			field:   "merkle root",
		},
		{
			name:    "wrong pinned hash",
			corrupt: func(p *Params) { p.GenesisHash = newHashFromStr("01") },
			code:    ErrGenesisHashMismatch,
			field:   "hash",
		},
	}

	for _, test := range tests {
		params, err := unfinalizedParams(TestNet)
		require.NoError(t, err)
		test.corrupt(&params)

		err = params.finalize(time.Now(), bytes.NewReader(nil))
		require.Error(t, err, test.name)
		require.True(t, errors.Is(err, test.code), "%s: %v", test.name, err)

		var mismatch *GenesisMismatchError
		require.True(t, errors.As(err, &mismatch), test.name)
		require.Equal(t, TestNet, mismatch.Network, test.name)
		require.Equal(t, test.field, mismatch.Field, test.name)
		require.NotEqual(t, mismatch.Expected, mismatch.Got, spew.Sdump(mismatch))
		require.Contains(t, err.Error(), mismatch.Expected.String(), test.name)
		require.Nil(t, params.GenesisBlock, test.name)
	}
}

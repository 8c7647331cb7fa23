// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/dextroproject/dextrod/crypto/quark"
)

const (
	// genesisScriptBits is the difficulty constant pushed first in the
	// genesis coinbase signature script.
	genesisScriptBits = 486604799

	// quarkMaxVersion is the first block version whose header is hashed
	// with double SHA-256 rather than Quark.
	quarkMaxVersion = 4
)

// genesisAuxPush is the fixed fragment between the difficulty constant and
// the timestamp in the genesis coinbase script.  It is the number 4 pushed as
// one data byte, not the OP_4 opcode a canonical push would produce, so it is
// added as raw opcodes.
var genesisAuxPush = []byte{txscript.OP_DATA_1, 0x04}

// genesisTemplate holds the literal inputs from which a genesis block is
// deterministically built.
type genesisTemplate struct {
	Timestamp string
	PubKey    []byte
	Reward    btcutil.Amount
	Version   int32
	Time      time.Time
	Bits      uint32
	Nonce     uint32
}

// coinbase builds the single transaction of the genesis block.
func (g *genesisTemplate) coinbase() (*wire.MsgTx, error) {
	sigScript, err := txscript.NewScriptBuilder().
		AddInt64(genesisScriptBits).
		AddOps(genesisAuxPush).
		AddData([]byte(g.Timestamp)).
		Script()
	if err != nil {
		return nil, err
	}
	pkScript, err := txscript.NewScriptBuilder().
		AddData(g.PubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(1)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{
			Hash:  chainhash.Hash{},
			Index: wire.MaxPrevOutIndex,
		},
		SignatureScript: sigScript,
		Sequence:        wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(&wire.TxOut{
		Value:    int64(g.Reward),
		PkScript: pkScript,
	})
	return tx, nil
}

// build returns the genesis block described by the template.
func (g *genesisTemplate) build() (*wire.MsgBlock, error) {
	tx, err := g.coinbase()
	if err != nil {
		return nil, err
	}
	merkle := blockchain.CalcMerkleRoot([]*btcutil.Tx{btcutil.NewTx(tx)}, false)

	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    g.Version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: merkle,
			Timestamp:  g.Time,
			Bits:       g.Bits,
			Nonce:      g.Nonce,
		},
		Transactions: []*wire.MsgTx{tx},
	}, nil
}

// BlockHash returns the Quark hash of a block header before version 4, which
// covers every genesis block.  For later versions it returns the double
// SHA-256 of the 80-byte header only.  Those headers also commit to an
// accumulator checkpoint that wire.BlockHeader cannot carry, so the result is
// not their consensus hash.
func BlockHash(header *wire.BlockHeader) chainhash.Hash {
	if header.Version >= quarkMaxVersion {
		return header.BlockHash()
	}

	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)

	// Writing to a bytes.Buffer never fails.
	_ = header.Serialize(&buf)
	return quark.Hash(buf.Bytes())
}

// verifyGenesis checks block against the hash and merkle root pinned for
// the network.  The merkle root is checked first since a bad merkle root
// always implies a bad hash.
func verifyGenesis(net Network, block *wire.MsgBlock, hash, merkle *chainhash.Hash) error {
	if got := block.Header.MerkleRoot; !got.IsEqual(merkle) {
		return genesisMismatch(net, ErrGenesisMerkleMismatch, "merkle root", merkle, &got)
	}
	if got := BlockHash(&block.Header); !got.IsEqual(hash) {
		return genesisMismatch(net, ErrGenesisHashMismatch, "hash", hash, &got)
	}
	return nil
}

func genesisMismatch(net Network, c ErrorCode, field string, want, got *chainhash.Hash) error {
	mismatch := &GenesisMismatchError{
		Network:  net,
		Field:    field,
		Expected: *want,
		Got:      *got,
	}
	log.Errorf("Genesis verification failed: %v", mismatch)
	return ParamsError{
		ErrorCode:   c,
		Description: "genesis verification failed",
		Err:         mismatch,
	}
}

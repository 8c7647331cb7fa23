// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These variables are the chain proof-of-work and proof-of-stake limit
// parameters for each default network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a Dextro block can
	// have for the main network.  It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// mainPosLimit is the highest proof of stake value a Dextro block can
	// have.  It is the value 2^236 - 1.
	mainPosLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// regressionPowLimit is the highest proof of work value a Dextro block
	// can have for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// Message-start markers of the default networks.  The wire encoding is
// little endian, so the main network starts every message with 1a d2 c5 ad.
const (
	MainNetMagic  wire.BitcoinNet = 0xadc5d21a
	TestNetMagic  wire.BitcoinNet = 0xbc322d4a
	RegTestMagic  wire.BitcoinNet = 0xbc32ee20
	UnitTestMagic wire.BitcoinNet = 0xafc5d21a
)

// Params defines a Dextro network by its parameters.  These parameters may be
// used by Dextro applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Network identifies which of the supported networks these are the
	// parameters of.
	Network Network

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeedSpecs is the compiled-in list of peers used when no DNS
	// seed answers.
	FixedSeedSpecs []SeedSpec6

	// FixedSeeds holds FixedSeedSpecs converted to peer addresses with a
	// randomized last seen time.  It is populated when the parameters are
	// constructed.
	FixedSeeds []*wire.NetAddress

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the merkle root the genesis block must have.
	GenesisMerkleRoot *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// PosLimit defines the highest allowed proof of stake value for a
	// block as a uint256.
	PosLimit *big.Int

	// PosLimitBits is PosLimit in compact form.
	PosLimitBits uint32

	// CoinbaseMaturity is the number of blocks required before newly mined
	// or staked coins can be spent.
	CoinbaseMaturity uint16

	// SubsidyReductionInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyReductionInterval int32

	// MaxMoneyOut is the maximum amount of money that can ever exist.
	MaxMoneyOut btcutil.Amount

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// PosTargetTimespan and PosTargetTimePerBlock are the proof of stake
	// counterparts of TargetTimespan and TargetTimePerBlock.
	PosTargetTimespan     time.Duration
	PosTargetTimePerBlock time.Duration

	// These fields are related to block version upgrades.
	//
	// EnforceBlockUpgradeMajority is the number of blocks within the last
	// ToCheckBlockUpgradeMajority blocks that must be of a new version
	// before the new rules are enforced for blocks of that version.
	//
	// RejectBlockOutdatedMajority is the number of blocks within the same
	// window that must be of a new version before blocks of older versions
	// are rejected.
	EnforceBlockUpgradeMajority int32
	RejectBlockOutdatedMajority int32
	ToCheckBlockUpgradeMajority int32

	// MaxReorganizationDepth is the deepest reorganization accepted.
	MaxReorganizationDepth int32

	// MinerThreads is the default number of mining threads.  Zero lets the
	// miner use one per CPU.
	MinerThreads int

	// MasternodeCountDrift is the tolerated difference between the local
	// and the announced masternode counts.
	MasternodeCountDrift int32

	// LastPoWBlock is the last height that may be mined with proof of work.
	LastPoWBlock int32

	// ModifierUpdateBlock is the height at which the stake modifier
	// upgrade activates.
	ModifierUpdateBlock int32

	// StartMasternodePayments is the UNIX time at which masternode payments
	// begin.
	StartMasternodePayments int64

	// Checkpoints and the statistics used to estimate sync progress.
	Checkpoints CheckpointData

	// Behavioral flags.
	//
	// ReduceMinDifficulty defines whether the network allows blocks with
	// the minimum difficulty.  This is really only useful for test networks
	// and should not be set on a main network.
	MiningRequiresPeers      bool
	ReduceMinDifficulty      bool
	DefaultConsistencyChecks bool
	MineBlocksOnDemand       bool
	SkipProofOfWorkCheck     bool
	HeadersFirstSyncing      bool

	// TestnetRPCField reports whether the RPC server still includes the
	// deprecated testnet field.
	TestnetRPCField bool

	// Mempool parameters
	RelayNonStdTxs bool

	// Governance parameters.
	//
	// PoolMaxTransactions is the maximum number of transactions mixed
	// together in one pool session.
	//
	// BudgetFeeConfirmations is the number of confirmations required for
	// the fee of a finalized budget.
	PoolMaxTransactions        int
	BudgetFeeConfirmations     int
	AlertPubKey                []byte
	SporkPubKey                []byte
	MasternodePoolDummyAddress string
	TreasuryAddress            string

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.  The hardened bit is included.
	HDCoinType uint32

	// genesis holds the literal inputs of the genesis block.
	genesis genesisTemplate
}

// MessageStart returns the message-start marker in the order it appears on
// the wire.
func (p *Params) MessageStart() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(p.Net))
	return b
}

// mainCheckpoints is shared by the main and unit test networks.
var mainCheckpoints = CheckpointData{
	Checkpoints: []Checkpoint{
		{0, newHashFromStr("0000035f2ce21c2821bec7090e6e70995d556e0c35b1c65eec129a0b914c764a")},
		{50, newHashFromStr("000000bf7ba33538208c2fe7a69b38fbe406b1a547012a9a9ff80e004d03c5ff")},
		{1500, newHashFromStr("fa2055cf73cdfa913822a38327dcdad5cd22761b8decf4beaa4804268835a57a")},
		{10000, newHashFromStr("5092e569bca711006d30527cef95c69141d62c9760374f93edc55da52198422e")},
	},
	LastCheckpointTime:         time.Unix(1573454999, 0),
	TransactionsLastCheckpoint: 22217,
	TransactionsPerDay:         3000,
}

// testCheckpoints is shared by the test and regression test networks.
var testCheckpoints = CheckpointData{
	Checkpoints: []Checkpoint{
		{0, newHashFromStr("0000035f2ce21c2821bec7090e6e70995d556e0c35b1c65eec129a0b914c764a")},
	},
	LastCheckpointTime:         time.Unix(1572861600, 0),
	TransactionsLastCheckpoint: 0,
	TransactionsPerDay:         1440,
}

// defaultParams returns the parameters of the main network before the
// genesis block is built.  Every other network is derived from it.
func defaultParams() Params {
	return Params{
		Network:     MainNet,
		Name:        MainNet.String(),
		Net:         MainNetMagic,
		DefaultPort: "39720",
		DNSSeeds: []DNSSeed{
			{"5.189.139.75", false},
			{"207.180.213.15", false},
			{"207.180.212.96", false},
			{"173.212.206.227", false},
			{"173.249.28.35", false},
			{"173.212.197.15", false},
			{"5.189.128.157", false},
			{"173.249.59.49", false},
			{"explorer.dextro.io", false},
			{"seed1.dextro.io", false},
			{"seed2.dextro.io", false},
			{"seed3.dextro.io", false},
			{"seed4.dextro.io", false},
			{"seed5.dextro.io", false},
		},
		FixedSeedSpecs: mainFixedSeeds,

		GenesisHash:       newHashFromStr("0000035f2ce21c2821bec7090e6e70995d556e0c35b1c65eec129a0b914c764a"),
		GenesisMerkleRoot: newHashFromStr("e23d621010c1aa0f3f8b10dccf8ab5bdcc7977dd9e730a53879ef50e58d2506f"),
		genesis: genesisTemplate{
			Timestamp: "The new chain for Dexrto starts 04 November 2019",
			PubKey: hexDecode("04367f8930c41afd080e1d900e5c370859539f26ab901e308ab4219d43064b6de9" +
				"5a7c8c6b03d46deab8888aeb27071985e1c8d09dec22a6a63bb66960871ba1dc"),
			Reward:  50 * btcutil.SatoshiPerBitcoin,
			Version: 1,
			Time:    time.Unix(1572861600, 0),
			Bits:    0x1e0ffff0,
			Nonce:   898305,
		},

		PowLimit:                 mainPowLimit,
		PosLimit:                 mainPosLimit,
		CoinbaseMaturity:         59,
		SubsidyReductionInterval: 1050000,
		MaxMoneyOut:              19000000 * btcutil.SatoshiPerBitcoin,
		TargetTimespan:           time.Minute,
		TargetTimePerBlock:       time.Minute,
		PosTargetTimespan:        40 * time.Minute,
		PosTargetTimePerBlock:    time.Minute,

		EnforceBlockUpgradeMajority: 750,
		RejectBlockOutdatedMajority: 950,
		ToCheckBlockUpgradeMajority: 1000,
		MaxReorganizationDepth:      100,
		MinerThreads:                0,
		MasternodeCountDrift:        20,
		LastPoWBlock:                200,
		ModifierUpdateBlock:         1,
		StartMasternodePayments:     1550620800,

		Checkpoints: mainCheckpoints,

		MiningRequiresPeers:      true,
		ReduceMinDifficulty:      false,
		DefaultConsistencyChecks: false,
		MineBlocksOnDemand:       false,
		SkipProofOfWorkCheck:     false,
		HeadersFirstSyncing:      false,
		TestnetRPCField:          false,
		RelayNonStdTxs:           false,

		PoolMaxTransactions:    3,
		BudgetFeeConfirmations: 6,
		AlertPubKey: hexDecode("04a33c1b2830f7c99d5dff92d23856d85facc808ab82d7b773c6460929878d7edb" +
			"d6ebc87d850c1d7c61f31b37c2dd390c29e35ed36be721d1532e982ad747acf6"),
		SporkPubKey: hexDecode("0413f5282236fc6887abb673e14cd954ecfae23bc98d1082a0b8cd93aad1a65b76" +
			"7a545eb490a6948d0a6e41fff2047f2eab5d42b5900b6cafebdb2e18e41391f1"),
		MasternodePoolDummyAddress: "dZQM9CnzQ4EAwLHKwZ7R72P6CmvcRLCoNC",
		TreasuryAddress:            "dRrhMB22rEXssDFLS52UWoMCbPJFqGaRqH",

		PubKeyHashAddrID: 90,  // starts with d
		ScriptHashAddrID: 33,  // starts with E
		PrivateKeyID:     198, // WIF

		HDPrivateKeyID: [4]byte{0x02, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x02, 0x88, 0xb2, 0x1e}, // starts with xpub

		HDCoinType: 0x800092f1,
	}
}

// testNetOverrides returns p modified for the public test network.  The
// genesis block is the same as on the main network.
func testNetOverrides(p Params) Params {
	p.Network = TestNet
	p.Name = TestNet.String()
	p.Net = TestNetMagic
	p.DefaultPort = "30007"
	p.DNSSeeds = nil
	p.FixedSeedSpecs = nil
	p.AlertPubKey = hexDecode("04d23d3f8706e0669e5d8aa36d9e774f8b6ef01ce0379ba8919be93a3109ce61cf" +
		"1c9cf18e17abd787ff12e8dc279e7da8623e249fe5f84d26e552ff43974c70fa")

	p.EnforceBlockUpgradeMajority = 51
	p.RejectBlockOutdatedMajority = 75
	p.ToCheckBlockUpgradeMajority = 100
	p.MinerThreads = 0
	p.PowLimit = mainPowLimit
	p.TargetTimespan = time.Minute
	p.TargetTimePerBlock = time.Minute
	p.PosLimit = mainPosLimit
	p.PosTargetTimespan = 40 * time.Minute
	p.PosTargetTimePerBlock = time.Minute
	p.LastPoWBlock = 1000
	p.CoinbaseMaturity = 5
	p.MasternodeCountDrift = 4
	p.ModifierUpdateBlock = 1
	p.MaxMoneyOut = 21000000 * btcutil.SatoshiPerBitcoin

	p.genesis.Time = time.Unix(1572861600, 0)
	p.genesis.Bits = 0x1e0ffff0
	p.genesis.Nonce = 898305

	p.PubKeyHashAddrID = 137 // starts with x
	p.ScriptHashAddrID = 93  // starts with e
	p.PrivateKeyID = 193
	p.HDCoinType = 0x80000001

	p.MiningRequiresPeers = true
	p.ReduceMinDifficulty = false
	p.DefaultConsistencyChecks = false
	p.RelayNonStdTxs = true
	p.MineBlocksOnDemand = false
	p.TestnetRPCField = true

	p.PoolMaxTransactions = 2
	p.SporkPubKey = hexDecode("04346cf2d1308847ab12c58d7e2d95bc7fc4308b2463289dd6cc63e137bb2eb5af" +
		"30a5a833f61bb95a5a4c4076a9b9a5c2b8b276c0fb213d88837633afdd84c60b")
	p.MasternodePoolDummyAddress = "xF2y3udz9rMHf1evwzfsgu4oYZLiNh2EP8"
	p.StartMasternodePayments = p.genesis.Time.Unix() + 24*60*60
	p.BudgetFeeConfirmations = 3
	p.TreasuryAddress = "x1k54s3sqmU4z2bxty1vak3iDAt1ApP15y"

	p.Checkpoints = testCheckpoints
	return p
}

// regTestOverrides returns p, the test network parameters, modified for the
// regression test network.
func regTestOverrides(p Params) Params {
	p.Network = RegTest
	p.Name = RegTest.String()
	p.Net = RegTestMagic
	p.DefaultPort = "30005"
	p.DNSSeeds = nil
	p.FixedSeedSpecs = nil

	p.SubsidyReductionInterval = 150
	p.EnforceBlockUpgradeMajority = 750
	p.RejectBlockOutdatedMajority = 950
	p.ToCheckBlockUpgradeMajority = 1000
	p.MinerThreads = 1
	p.TargetTimespan = 24 * time.Hour
	p.TargetTimePerBlock = 2 * time.Minute
	p.PowLimit = regressionPowLimit

	p.genesis.Time = time.Unix(1572861600, 0)
	p.genesis.Bits = 0x1e0ffff0
	p.genesis.Nonce = 898305

	p.MiningRequiresPeers = false
	p.ReduceMinDifficulty = true
	p.DefaultConsistencyChecks = true
	p.RelayNonStdTxs = true
	p.MineBlocksOnDemand = true
	p.TestnetRPCField = false

	p.Checkpoints = testCheckpoints
	return p
}

// unitTestOverrides returns p, the main network parameters, modified for the
// unit test network.  It keeps the main network checkpoints.
func unitTestOverrides(p Params) Params {
	p.Network = UnitTest
	p.Name = UnitTest.String()
	p.Net = UnitTestMagic
	p.DefaultPort = "30003"
	p.DNSSeeds = nil
	p.FixedSeedSpecs = nil

	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.ReduceMinDifficulty = false
	p.MineBlocksOnDemand = true
	return p
}

// unfinalizedParams returns the parameters of net without the genesis block
// and the converted fixed seeds.
func unfinalizedParams(net Network) (Params, error) {
	switch net {
	case MainNet:
		return defaultParams(), nil
	case TestNet:
		return testNetOverrides(defaultParams()), nil
	case RegTest:
		return regTestOverrides(testNetOverrides(defaultParams())), nil
	case UnitTest:
		return unitTestOverrides(defaultParams()), nil
	}
	str := fmt.Sprintf("unknown network %v", net)
	return Params{}, paramsError(ErrUnknownNetwork, str)
}

// newParams returns the fully constructed parameters of net.  The seed
// timestamps are randomized relative to now using rnd.
func newParams(net Network, now time.Time, rnd io.Reader) (*Params, error) {
	p, err := unfinalizedParams(net)
	if err != nil {
		return nil, err
	}
	if err := p.finalize(now, rnd); err != nil {
		return nil, err
	}
	return &p, nil
}

// finalize builds and verifies the genesis block, validates the hard-coded
// keys, prefixes and checkpoints, and converts the fixed seeds.
func (p *Params) finalize(now time.Time, rnd io.Reader) error {
	block, err := p.genesis.build()
	if err != nil {
		return ParamsError{
			ErrorCode:   ErrGenesisBuild,
			Description: fmt.Sprintf("%v genesis block cannot be built", p.Network),
			Err:         err,
		}
	}
	if err := verifyGenesis(p.Network, block, p.GenesisHash, p.GenesisMerkleRoot); err != nil {
		return err
	}
	p.GenesisBlock = block

	if err := p.Checkpoints.validate(); err != nil {
		return err
	}
	if hash, ok := p.Checkpoints.Lookup(0); ok && !hash.IsEqual(p.GenesisHash) {
		str := fmt.Sprintf("%v genesis checkpoint %v does not match "+
			"genesis hash %v", p.Network, hash, p.GenesisHash)
		return paramsError(ErrBadCheckpoints, str)
	}

	keys := []struct {
		name string
		key  []byte
	}{
		{"alert", p.AlertPubKey},
		{"spork", p.SporkPubKey},
		{"genesis", p.genesis.PubKey},
	}
	for _, k := range keys {
		if _, err := btcec.ParsePubKey(k.key); err != nil {
			return ParamsError{
				ErrorCode:   ErrInvalidKey,
				Description: fmt.Sprintf("%v %s public key is invalid", p.Network, k.name),
				Err:         err,
			}
		}
	}

	if err := p.checkPrefixes(); err != nil {
		return err
	}

	p.PowLimitBits = blockchain.BigToCompact(p.PowLimit)
	p.PosLimitBits = blockchain.BigToCompact(p.PosLimit)
	p.FixedSeeds = ConvertSeeds(p.FixedSeedSpecs, now, rnd)

	log.Debugf("Constructed %v parameters (genesis %v, %d checkpoints, "+
		"%d fixed seeds)", p.Network, p.GenesisHash,
		len(p.Checkpoints.Checkpoints), len(p.FixedSeeds))
	return nil
}

// checkPrefixes ensures the address encoding prefixes of the network cannot
// be mistaken for one another.
func (p *Params) checkPrefixes() error {
	ids := map[byte]string{}
	for _, id := range []struct {
		name string
		id   byte
	}{
		{"pubkey hash", p.PubKeyHashAddrID},
		{"script hash", p.ScriptHashAddrID},
		{"private key", p.PrivateKeyID},
	} {
		if other, ok := ids[id.id]; ok {
			str := fmt.Sprintf("%v %s and %s prefixes are both %d",
				p.Network, other, id.name, id.id)
			return paramsError(ErrPrefixCollision, str)
		}
		ids[id.id] = id.name
	}

	if p.HDPrivateKeyID == p.HDPublicKeyID {
		str := fmt.Sprintf("%v extended public and private key prefixes "+
			"are both %x", p.Network, p.HDPublicKeyID)
		return paramsError(ErrPrefixCollision, str)
	}
	return nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// hexDecode decodes the passed hex string and returns the resulting bytes.  It
// panics if an error occurs.  This is only used in the tests and the
// hard-coded parameters since the only possible error is a typo in a
// constant.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

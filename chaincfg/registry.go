// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/btcsuite/btcd/wire"
)

var (
	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

	// ErrInvalidHDKeyID describes an error where the provided hierarchical
	// deterministic version bytes, or hd key id, is malformed.
	ErrInvalidHDKeyID = errors.New("invalid hd extended key version bytes")
)

// Registry owns the parameters of every supported network and tracks which
// one is active.  A network can be selected only once.  The methods of
// Registry are safe for concurrent use.  The parameters are not protected by
// the registry lock, so the ModifiableParams setters must not run while other
// goroutines read the unit test parameters.
type Registry struct {
	mtx    sync.RWMutex
	params [numNetworks]*Params
	active *Params

	registeredNets    map[wire.BitcoinNet]Network
	registeredPorts   map[string]Network
	pubKeyHashAddrIDs map[byte]struct{}
	scriptHashAddrIDs map[byte]struct{}
	hdPrivToPubKeyIDs map[[4]byte][]byte
}

// NewRegistry constructs, verifies and registers the parameters of every
// supported network.  No network is selected.
func NewRegistry() (*Registry, error) {
	return newRegistry(time.Now(), rand.Reader)
}

func newRegistry(now time.Time, rnd io.Reader) (*Registry, error) {
	r := &Registry{
		registeredNets:    make(map[wire.BitcoinNet]Network),
		registeredPorts:   make(map[string]Network),
		pubKeyHashAddrIDs: make(map[byte]struct{}),
		scriptHashAddrIDs: make(map[byte]struct{}),
		hdPrivToPubKeyIDs: make(map[[4]byte][]byte),
	}
	for _, net := range Networks() {
		params, err := newParams(net, now, rnd)
		if err != nil {
			return nil, err
		}
		if err := r.register(params); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// register adds the network parameters to the registry.  It errors with
// ErrDuplicateNet or ErrDuplicatePort when another network already uses the
// same message-start marker or default port.
func (r *Registry) register(params *Params) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if other, ok := r.registeredNets[params.Net]; ok {
		str := fmt.Sprintf("%v message-start marker %x is already used "+
			"by %v", params.Network, params.MessageStart(), other)
		return paramsError(ErrDuplicateNet, str)
	}
	if other, ok := r.registeredPorts[params.DefaultPort]; ok {
		str := fmt.Sprintf("%v default port %s is already used by %v",
			params.Network, params.DefaultPort, other)
		return paramsError(ErrDuplicatePort, str)
	}

	err := r.registerHDKeyID(params.HDPublicKeyID[:], params.HDPrivateKeyID[:])
	if err != nil {
		return err
	}
	r.registeredNets[params.Net] = params.Network
	r.registeredPorts[params.DefaultPort] = params.Network
	r.pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	r.scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	r.params[params.Network] = params
	return nil
}

// Get returns the parameters of the given network.
func (r *Registry) Get(net Network) (*Params, error) {
	if !net.valid() {
		str := fmt.Sprintf("unknown network %v", net)
		return nil, paramsError(ErrUnknownNetwork, str)
	}

	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.params[net], nil
}

// Select makes net the active network.  Selecting the already active network
// again has no effect; selecting a different one fails with
// ErrAlreadySelected, since subsystems may already have read the active
// parameters.
func (r *Registry) Select(net Network) error {
	params, err := r.Get(net)
	if err != nil {
		return err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.active != nil {
		if r.active == params {
			return nil
		}
		str := fmt.Sprintf("cannot select %v, %v is already active",
			net, r.active.Network)
		return paramsError(ErrAlreadySelected, str)
	}
	r.active = params
	log.Infof("Selected %v network (port %s)", net, params.DefaultPort)
	return nil
}

// Active returns the parameters of the selected network.
func (r *Registry) Active() (*Params, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if r.active == nil {
		return nil, paramsError(ErrNotSelected, "no network selected")
	}
	return r.active, nil
}

// ModifiableParams returns the capability to modify the unit test network
// parameters.  It is only available once the unit test network is active.
func (r *Registry) ModifiableParams() (*ModifiableParams, error) {
	active, err := r.Active()
	if err != nil {
		return nil, err
	}
	if active.Network != UnitTest {
		str := fmt.Sprintf("parameters of the %v network cannot be "+
			"modified", active.Network)
		return nil, paramsError(ErrNotUnitTest, str)
	}
	return &ModifiableParams{params: active}, nil
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any registered network.  This is used when
// decoding an address string into a specific address type.  It is up to the
// caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func (r *Registry) IsPubKeyHashAddrID(id byte) bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	_, ok := r.pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any registered network.
func (r *Registry) IsScriptHashAddrID(id byte) bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	_, ok := r.scriptHashAddrIDs[id]
	return ok
}

// RegisterHDKeyID registers a public and private hierarchical deterministic
// extended key ID pair.  When the provided key IDs are invalid, the
// ErrInvalidHDKeyID error will be returned.
func (r *Registry) RegisterHDKeyID(hdPublicKeyID []byte, hdPrivateKeyID []byte) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.registerHDKeyID(hdPublicKeyID, hdPrivateKeyID)
}

// registerHDKeyID must be called with the registry lock held for writes.
func (r *Registry) registerHDKeyID(hdPublicKeyID []byte, hdPrivateKeyID []byte) error {
	if len(hdPublicKeyID) != 4 || len(hdPrivateKeyID) != 4 {
		return ErrInvalidHDKeyID
	}

	var keyID [4]byte
	copy(keyID[:], hdPrivateKeyID)
	r.hdPrivToPubKeyIDs[keyID] = append([]byte(nil), hdPublicKeyID...)
	return nil
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func (r *Registry) HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)

	r.mtx.RLock()
	defer r.mtx.RUnlock()
	pubBytes, ok := r.hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}
	return append([]byte(nil), pubBytes...), nil
}

// ModifiableParams is the capability to change selected fields of the unit
// test network parameters.  It is only handed out by Registry.ModifiableParams
// and must not be used concurrently with readers of the parameters.
type ModifiableParams struct {
	params *Params
}

// Params returns the unit test network parameters being modified.
func (m *ModifiableParams) Params() *Params {
	return m.params
}

// SetSubsidyReductionInterval sets the number of blocks between subsidy
// reductions.
func (m *ModifiableParams) SetSubsidyReductionInterval(interval int32) {
	m.params.SubsidyReductionInterval = interval
}

// SetEnforceBlockUpgradeMajority sets the number of upgraded blocks needed to
// enforce the rules of a new block version.
func (m *ModifiableParams) SetEnforceBlockUpgradeMajority(n int32) {
	m.params.EnforceBlockUpgradeMajority = n
}

// SetRejectBlockOutdatedMajority sets the number of upgraded blocks needed to
// reject blocks of an older version.
func (m *ModifiableParams) SetRejectBlockOutdatedMajority(n int32) {
	m.params.RejectBlockOutdatedMajority = n
}

// SetToCheckBlockUpgradeMajority sets the window of blocks checked for
// upgrades.
func (m *ModifiableParams) SetToCheckBlockUpgradeMajority(n int32) {
	m.params.ToCheckBlockUpgradeMajority = n
}

// SetDefaultConsistencyChecks toggles the extra internal consistency checks.
func (m *ModifiableParams) SetDefaultConsistencyChecks(enabled bool) {
	m.params.DefaultConsistencyChecks = enabled
}

// SetReduceMinDifficulty toggles whether minimum difficulty blocks are
// allowed.
func (m *ModifiableParams) SetReduceMinDifficulty(enabled bool) {
	m.params.ReduceMinDifficulty = enabled
}

// SetSkipProofOfWorkCheck toggles whether proof of work checks are skipped.
func (m *ModifiableParams) SetSkipProofOfWorkCheck(skip bool) {
	m.params.SkipProofOfWorkCheck = skip
}

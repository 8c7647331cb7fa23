// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// defaultRegistry holds the parameters of the default networks for the
// package-level accessors.
var defaultRegistry *Registry

// DefaultRegistry returns the registry backing the package-level functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Get returns the parameters of the given network.
func Get(net Network) (*Params, error) {
	return defaultRegistry.Get(net)
}

// SelectParams makes net the active network of the process.  It must be
// called once at startup before any subsystem reads the active parameters.
func SelectParams(net Network) error {
	return defaultRegistry.Select(net)
}

// ActiveNetParams returns the parameters of the network selected with
// SelectParams.
func ActiveNetParams() (*Params, error) {
	return defaultRegistry.Active()
}

// MustActiveNetParams is like ActiveNetParams but panics when no network was
// selected.
func MustActiveNetParams() *Params {
	params, err := defaultRegistry.Active()
	if err != nil {
		panic(err)
	}
	return params
}

// UnitTestParams returns the capability to modify the unit test network
// parameters.  It fails unless the unit test network is active.
func UnitTestParams() (*ModifiableParams, error) {
	return defaultRegistry.ModifiableParams()
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any default network.
func IsPubKeyHashAddrID(id byte) bool {
	return defaultRegistry.IsPubKeyHashAddrID(id)
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any default network.
func IsScriptHashAddrID(id byte) bool {
	return defaultRegistry.IsScriptHashAddrID(id)
}

// RegisterHDKeyID registers a public and private hierarchical deterministic
// extended key ID pair with the default registry.
func RegisterHDKeyID(hdPublicKeyID []byte, hdPrivateKeyID []byte) error {
	return defaultRegistry.RegisterHDKeyID(hdPublicKeyID, hdPrivateKeyID)
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	return defaultRegistry.HDPrivateKeyToPublicKeyID(id)
}

// mustNewRegistry performs the same function as NewRegistry except it panics
// if there is an error.  This should only be called from package init
// functions.
func mustNewRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic("failed to register networks: " + err.Error())
	}
	return r
}

func init() {
	// Construct and register all default networks when the package is
	// initialized.  A genesis mismatch aborts the process here.
	defaultRegistry = mustNewRegistry()
}

// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific ParamsError.
const (
	// ErrGenesisHashMismatch indicates the constructed genesis block does
	// not hash to the pinned genesis hash of the network.
	ErrGenesisHashMismatch ErrorCode = iota

	// ErrGenesisMerkleMismatch indicates the merkle root of the
	// constructed genesis block does not match the pinned merkle root.
	ErrGenesisMerkleMismatch

	// ErrGenesisBuild indicates the genesis block could not be built from
	// its literal inputs.
	ErrGenesisBuild

	// ErrInvalidKey indicates one of the hard-coded public keys of a
	// network is not a valid secp256k1 point.
	ErrInvalidKey

	// ErrPrefixCollision indicates two address encoding prefixes of the
	// same network share a value.
	ErrPrefixCollision

	// ErrBadCheckpoints indicates a checkpoint table whose heights are not
	// strictly increasing.
	ErrBadCheckpoints

	// ErrDuplicateNet indicates the message-start marker of a network is
	// already registered.
	ErrDuplicateNet

	// ErrDuplicatePort indicates the default port of a network is already
	// used by a registered network.
	ErrDuplicatePort

	// ErrUnknownNetwork indicates a network identifier outside of the
	// supported set.
	ErrUnknownNetwork

	// ErrAlreadySelected indicates an attempt to select a network after a
	// different one was already selected.
	ErrAlreadySelected

	// ErrNotSelected indicates the active parameters were requested before
	// any network was selected.
	ErrNotSelected

	// ErrNotUnitTest indicates the mutation capability was requested while
	// the active network is not the unit test network.
	ErrNotUnitTest

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrGenesisHashMismatch:   "ErrGenesisHashMismatch",
	ErrGenesisMerkleMismatch: "ErrGenesisMerkleMismatch",
	ErrGenesisBuild:          "ErrGenesisBuild",
	ErrInvalidKey:            "ErrInvalidKey",
	ErrPrefixCollision:       "ErrPrefixCollision",
	ErrBadCheckpoints:        "ErrBadCheckpoints",
	ErrDuplicateNet:          "ErrDuplicateNet",
	ErrDuplicatePort:         "ErrDuplicatePort",
	ErrUnknownNetwork:        "ErrUnknownNetwork",
	ErrAlreadySelected:       "ErrAlreadySelected",
	ErrNotSelected:           "ErrNotSelected",
	ErrNotUnitTest:           "ErrNotUnitTest",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// ParamsError identifies a problem with a network parameter set or with the
// way the registry is used.  The caller can use type assertions, or errors.Is
// against an ErrorCode, to determine the specific failure.
type ParamsError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
	Err         error     // Underlying error, if any
}

// Error satisfies the error interface and prints human-readable errors.
func (e ParamsError) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap returns the underlying error, if any.
func (e ParamsError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the ErrorCode of e, which allows
// errors.Is(err, ErrNotSelected) style checks.
func (e ParamsError) Is(target error) bool {
	switch t := target.(type) {
	case ErrorCode:
		return e.ErrorCode == t
	case ParamsError:
		return e.ErrorCode == t.ErrorCode
	}
	return false
}

// Error makes ErrorCode usable as an errors.Is target.
func (e ErrorCode) Error() string {
	return e.String()
}

// paramsError creates a ParamsError given a set of arguments.
func paramsError(c ErrorCode, desc string) ParamsError {
	return ParamsError{ErrorCode: c, Description: desc}
}

// GenesisMismatchError describes a genesis block that does not reproduce
// the value pinned for its network.
type GenesisMismatchError struct {
	Network  Network
	Field    string // "hash" or "merkle root"
	Expected chainhash.Hash
	Got      chainhash.Hash
}

// Error satisfies the error interface and prints human-readable errors.
func (e *GenesisMismatchError) Error() string {
	return fmt.Sprintf("%s genesis %s mismatch: expected %v, got %v",
		e.Network, e.Field, e.Expected, e.Got)
}

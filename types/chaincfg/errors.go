// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNetworkNotSelected is returned when the active network is read
	// before any network was selected.
	ErrNetworkNotSelected = errors.New("no network selected")

	// ErrNetworkAlreadySelected is returned by every selection attempt
	// after the first successful one.
	ErrNetworkAlreadySelected = errors.New("network already selected")

	// ErrNoRegistry is returned by Select on a Selector that was not built
	// with NewSelector.
	ErrNoRegistry = errors.New("selector has no registry")

	// ErrDuplicateNet describes an error where the parameters for a
	// network could not be registered due to the name, message start or
	// port already being used by another network in the registry.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

	// ErrGenesisHashMismatch means the assembled genesis block does not hash
	// to the pinned value.
	ErrGenesisHashMismatch = errors.New("genesis hash mismatch")

	// ErrMerkleRootMismatch means the assembled genesis block does not carry
	// the pinned merkle root.
	ErrMerkleRootMismatch = errors.New("genesis merkle root mismatch")

	// ErrInvalidCheckpoints covers empty, unordered and negative checkpoint
	// tables as well as a height 0 entry that differs from genesis.
	ErrInvalidCheckpoints = errors.New("invalid checkpoint table")

	// ErrInvalidDeployment covers out of range or colliding deployment bits
	// and inverted activation windows.
	ErrInvalidDeployment = errors.New("invalid deployment")

	// ErrInvalidParams covers the remaining self-consistency checks.
	ErrInvalidParams = errors.New("invalid network parameters")
)

// UnknownNetworkError is returned when a network identifier is not one of
// "main", "test" or "regtest".
type UnknownNetworkError struct {
	Name string
}

func (e *UnknownNetworkError) Error() string {
	return fmt.Sprintf("unknown network %q", e.Name)
}

// FatalConfigError reports parameters that must never be used: a genesis
// block that does not match its pinned identity or a table that is not
// internally consistent.  The daemon aborts on it.
type FatalConfigError struct {
	Network string
	Reason  string
	Err     error
}

func (e *FatalConfigError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fatal config for %s network: %s", e.Network, e.Reason)
	}
	return fmt.Sprintf("fatal config for %s network: %s: %v", e.Network, e.Reason, e.Err)
}

// Unwrap exposes the sentinel so errors.Is can match it.
func (e *FatalConfigError) Unwrap() error { return e.Err }

func fatalf(network string, err error, format string, args ...interface{}) *FatalConfigError {
	return &FatalConfigError{
		Network: network,
		Reason:  fmt.Sprintf(format, args...),
		Err:     err,
	}
}

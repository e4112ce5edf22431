/*
 * Copyright (c) 2024 The NeoBytes developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package pow

import (
	"math/big"

	"github.com/pkg/errors"
	"gitlab.com/neobytes/neobytesd/types/chainhash"
)

var (
	// ErrUnexpectedDifficulty indicates the header bits decode to a target
	// that is not positive or lies above the network proof-of-work limit.
	ErrUnexpectedDifficulty = errors.New("unexpected difficulty")

	// ErrHighHash indicates the header hash does not satisfy the target
	// claimed by its bits.
	ErrHighHash = errors.New("hash above target")
)

// CheckProofOfWork ensures the bits which indicate the target difficulty are
// in min/max range and that the hash is less than or equal to the target.
func CheckProofOfWork(hash chainhash.Hash, bits uint32, powLimit *big.Int) error {
	// The target difficulty must be larger than zero.
	target := CompactToBig(bits)
	if target.Sign() <= 0 {
		return errors.Wrapf(ErrUnexpectedDifficulty,
			"block target difficulty of %064x is too low", target)
	}

	// The target difficulty must be less than the maximum allowed.
	if powLimit != nil && target.Cmp(powLimit) > 0 {
		return errors.Wrapf(ErrUnexpectedDifficulty,
			"block target difficulty of %064x is higher than max of %064x",
			target, powLimit)
	}

	hashNum := HashToBig(&hash)
	if hashNum.Cmp(target) > 0 {
		return errors.Wrapf(ErrHighHash,
			"block hash of %064x is higher than expected max of %064x",
			hashNum, target)
	}

	return nil
}

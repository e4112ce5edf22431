/*
 * Copyright (c) 2024 The NeoBytes developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package pow

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"gitlab.com/neobytes/neobytesd/types/chainhash"
	"gitlab.com/neobytes/neobytesd/types/wire"
)

// ErrNonceSpaceExhausted is returned by SolveHeader when every nonce from the
// starting value up to the maximum was tried without meeting the target.
var ErrNonceSpaceExhausted = errors.New("nonce space exhausted")

// ctxCheckInterval is how many nonces are hashed between checks of the
// context for cancellation.
const ctxCheckInterval = 256

// SolveHeader searches for a nonce that makes the header hash satisfy the
// target encoded in its bits.  The search starts at the nonce already set on
// the header and counts up.  On success the header carries the winning nonce
// and its hash is returned.  The header keeps the last tried nonce when the
// context is cancelled.
func SolveHeader(ctx context.Context, header *wire.BlockHeader) (chainhash.Hash, error) {
	target := CompactToBig(header.Bits)
	if target.Sign() <= 0 {
		return chainhash.Hash{}, errors.Wrapf(ErrUnexpectedDifficulty,
			"block target difficulty of %064x is too low", target)
	}

	for nonce := uint64(header.Nonce); nonce <= math.MaxUint32; nonce++ {
		if nonce%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return chainhash.Hash{}, ctx.Err()
			default:
			}
		}

		header.Nonce = uint32(nonce)
		hash := header.BlockHash()
		if HashToBig(&hash).Cmp(target) <= 0 {
			return hash, nil
		}
	}

	return chainhash.Hash{}, ErrNonceSpaceExhausted
}

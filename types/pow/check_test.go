/*
 * Copyright (c) 2024 The NeoBytes developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package pow

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/neobytes/neobytesd/types/chainhash"
	"gitlab.com/neobytes/neobytesd/types/wire"
)

const (
	mainPowLimit    = "00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	regtestPowLimit = "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	genesisMerkle   = "a041e8d6859590ecc9baa0077724a864d9eefc06569395d82f35b6f77c12c237"
)

func genesisHeader(t *testing.T, timestamp int64, bits, nonce uint32) *wire.BlockHeader {
	t.Helper()
	merkle, err := chainhash.NewHashFromStr(genesisMerkle)
	require.NoError(t, err)
	return wire.NewBlockHeader(1, &chainhash.Hash{}, merkle, time.Unix(timestamp, 0), bits, nonce)
}

func TestCheckProofOfWork(t *testing.T) {
	mainLimit := hexToBig(t, mainPowLimit)
	regLimit := hexToBig(t, regtestPowLimit)

	mainHash, err := chainhash.NewHashFromStr("0000083c6edd8e5870c4f25857824125358a96c81b66dc5831ddd5e82a777758")
	require.NoError(t, err)
	assert.NoError(t, CheckProofOfWork(*mainHash, 0x1e0ffff0, mainLimit))

	regHash, err := chainhash.NewHashFromStr("0668630d663da4a6fcb0fa2e1f01f8d156082e2043354707f2f73f032842752b")
	require.NoError(t, err)
	assert.NoError(t, CheckProofOfWork(*regHash, 0x207fffff, regLimit))

	// The regtest hash does not meet the mainnet target.
	err = CheckProofOfWork(*regHash, 0x1e0ffff0, mainLimit)
	assert.True(t, errors.Is(err, ErrHighHash), "got %v", err)

	// Regtest bits exceed the mainnet limit.
	err = CheckProofOfWork(*mainHash, 0x207fffff, mainLimit)
	assert.True(t, errors.Is(err, ErrUnexpectedDifficulty), "got %v", err)

	err = CheckProofOfWork(*mainHash, 0, mainLimit)
	assert.True(t, errors.Is(err, ErrUnexpectedDifficulty), "got %v", err)
}

func TestSolveHeaderRegtest(t *testing.T) {
	header := genesisHeader(t, 1622466748, 0x207fffff, 0)

	hash, err := SolveHeader(context.Background(), header)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), header.Nonce)
	assert.Equal(t, "0668630d663da4a6fcb0fa2e1f01f8d156082e2043354707f2f73f032842752b", hash.String())
}

func TestSolveHeaderFindsFirstValidNonce(t *testing.T) {
	header := genesisHeader(t, 1689725227, 0x1e0ffff0, 1347020)

	hash, err := SolveHeader(context.Background(), header)
	require.NoError(t, err)
	assert.Equal(t, uint32(1347040), header.Nonce)
	assert.Equal(t, "0000083c6edd8e5870c4f25857824125358a96c81b66dc5831ddd5e82a777758", hash.String())
}

func TestSolveHeaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	header := genesisHeader(t, 1689725227, 0x1e0ffff0, 0)
	_, err := SolveHeader(ctx, header)
	assert.True(t, errors.Is(err, context.Canceled))
}

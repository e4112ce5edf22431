// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/neobytes/neobytesd/types/chainhash"
)

const mainGenesisHeaderHex = "0100000000000000000000000000000000000000000000000000000000000000" +
	"0000000037c2127cf7b6352fd895935606fceed964a8247707a0bac9ec909585d6e841a02b29b764f0ff0f1ee08d1400"

func TestBlockHeaderSerialize(t *testing.T) {
	merkle, err := chainhash.NewHashFromStr(genesisMerkleRootStr)
	require.NoError(t, err)

	header := NewBlockHeader(1, &chainhash.Hash{}, merkle, time.Unix(1689725227, 0), 0x1e0ffff0, 1347040)

	raw := header.Bytes()
	require.Len(t, raw, MaxBlockHeaderPayload)
	assert.Equal(t, mainGenesisHeaderHex, hex.EncodeToString(raw))

	var decoded BlockHeader
	require.NoError(t, decoded.Deserialize(bytes.NewReader(raw)))
	assert.Equal(t, header.Version, decoded.Version)
	assert.Equal(t, header.MerkleRoot, decoded.MerkleRoot)
	assert.Equal(t, header.Bits, decoded.Bits)
	assert.Equal(t, header.Nonce, decoded.Nonce)
	assert.Equal(t, int64(1689725227), decoded.Timestamp.Unix())
}

func TestBlockHeaderHashIsNeoScrypt(t *testing.T) {
	raw, err := hex.DecodeString(mainGenesisHeaderHex)
	require.NoError(t, err)

	var header BlockHeader
	require.NoError(t, header.Deserialize(bytes.NewReader(raw)))

	hash := header.BlockHash()
	assert.Equal(t, "0000083c6edd8e5870c4f25857824125358a96c81b66dc5831ddd5e82a777758", hash.String())
	assert.NotEqual(t, chainhash.DoubleHashH(raw), hash)
}

func TestMsgBlockRoundTrip(t *testing.T) {
	raw, err := hex.DecodeString(mainGenesisHeaderHex)
	require.NoError(t, err)

	var header BlockHeader
	require.NoError(t, header.Deserialize(bytes.NewReader(raw)))

	block := NewMsgBlock(&header)
	block.AddTransaction(decodeGenesisCoinbase(t))

	blockBytes, err := block.Bytes()
	require.NoError(t, err)
	assert.Equal(t, block.SerializeSize(), len(blockBytes))
	assert.Equal(t, mainGenesisHeaderHex+"01"+genesisCoinbaseHex, hex.EncodeToString(blockBytes))

	var decoded MsgBlock
	require.NoError(t, decoded.Deserialize(bytes.NewReader(blockBytes)))
	require.Len(t, decoded.Transactions, 1)
	assert.Equal(t, block.BlockHash(), decoded.BlockHash())
	assert.Equal(t, block.TxHashes(), decoded.TxHashes())

	cp := block.Copy()
	cp.Transactions[0].TxOut[0].Value = 0
	assert.Equal(t, int64(50*1e8), block.Transactions[0].TxOut[0].Value)
}

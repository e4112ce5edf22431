// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/neobytes/neobytesd/types/chainhash"
)

// genesisCoinbaseHex is the coinbase shared by every NeoBytes genesis block.
const genesisCoinbaseHex = "01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff" +
	"2d04ffff001d0104254e656f42797465732047656e6573697320626f726e206f6e204a756e6520312c2032303231ffffffff" +
	"0100f2052a01000000434104678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f" +
	"4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000"

const genesisMerkleRootStr = "a041e8d6859590ecc9baa0077724a864d9eefc06569395d82f35b6f77c12c237"

func decodeGenesisCoinbase(t *testing.T) *MsgTx {
	t.Helper()
	raw, err := hex.DecodeString(genesisCoinbaseHex)
	require.NoError(t, err)

	tx := new(MsgTx)
	require.NoError(t, tx.Deserialize(bytes.NewReader(raw)))
	return tx
}

func TestGenesisCoinbaseDecode(t *testing.T) {
	tx := decodeGenesisCoinbase(t)

	assert.Equal(t, int32(1), tx.Version)
	require.Len(t, tx.TxIn, 1)
	require.Len(t, tx.TxOut, 1)
	assert.True(t, tx.IsCoinBase())
	assert.Equal(t, MaxTxInSequenceNum, tx.TxIn[0].Sequence)
	assert.Equal(t, int64(50*1e8), tx.TxOut[0].Value)
	assert.Len(t, tx.TxOut[0].PkScript, 67)
	assert.Equal(t, 172, tx.SerializeSize())

	hash := tx.TxHash()
	assert.Equal(t, genesisMerkleRootStr, hash.String())

	hexTx, err := tx.SerializeToHex()
	require.NoError(t, err)
	assert.Equal(t, genesisCoinbaseHex, hexTx)
}

func TestMsgTxCopyIsDeep(t *testing.T) {
	tx := decodeGenesisCoinbase(t)
	cp := tx.Copy()

	cp.TxIn[0].SignatureScript[0] = 0x00
	cp.TxOut[0].Value = 1

	assert.Equal(t, byte(0x04), tx.TxIn[0].SignatureScript[0])
	assert.Equal(t, int64(50*1e8), tx.TxOut[0].Value)
	assert.NotEqual(t, tx.TxHash(), cp.TxHash())
}

func TestMsgTxIsCoinBase(t *testing.T) {
	tx := NewMsgTx(TxVersion)
	assert.False(t, tx.IsCoinBase())

	prevHash := chainhash.HashH([]byte("prev"))
	tx.AddTxIn(NewTxIn(NewOutPoint(&prevHash, 0), nil))
	assert.False(t, tx.IsCoinBase())

	tx = NewMsgTx(TxVersion)
	tx.AddTxIn(NewTxIn(NewOutPoint(&chainhash.Hash{}, MaxPrevOutIndex), []byte{0x51}))
	assert.True(t, tx.IsCoinBase())
}

func TestMsgTxDeserializeTruncated(t *testing.T) {
	raw, err := hex.DecodeString(genesisCoinbaseHex)
	require.NoError(t, err)

	for _, n := range []int{0, 3, 40, 100, len(raw) - 1} {
		tx := new(MsgTx)
		assert.Error(t, tx.Deserialize(bytes.NewReader(raw[:n])), "truncated at %d", n)
	}
}

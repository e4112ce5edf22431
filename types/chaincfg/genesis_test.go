/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Copyright (c) 2024 The NeoBytes developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/neobytes/neobytesd/types/wire"
)

// genesisCoinbaseTxHex is the serialized coinbase shared by all networks.
const genesisCoinbaseTxHex = "01000000010000000000000000000000000000000000000000000000000000000000000000ffffffff" +
	"2d04ffff001d0104254e656f42797465732047656e6573697320626f726e206f6e204a756e6520312c2032303231" +
	"ffffffff0100f2052a01000000434104678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb6" +
	"49f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac00000000"

func TestGenesisBlocks(t *testing.T) {
	tests := []struct {
		net       Network
		hash      string
		headerHex string
	}{
		{
			net:  MainNet,
			hash: "0000083c6edd8e5870c4f25857824125358a96c81b66dc5831ddd5e82a777758",
			headerHex: "01000000" + "0000000000000000000000000000000000000000000000000000000000000000" +
				"37c2127cf7b6352fd895935606fceed964a8247707a0bac9ec909585d6e841a0" + "2b29b764f0ff0f1ee08d1400",
		},
		{
			net:  TestNet,
			hash: "0000042e5e7347b96f676974fa0cd902956ae49ce78d4ca4978d59fa90d7343c",
			headerHex: "01000000" + "0000000000000000000000000000000000000000000000000000000000000000" +
				"37c2127cf7b6352fd895935606fceed964a8247707a0bac9ec909585d6e841a0" + "50deb460f0ff0f1e70a10d00",
		},
		{
			net:  RegTest,
			hash: "0668630d663da4a6fcb0fa2e1f01f8d156082e2043354707f2f73f032842752b",
			headerHex: "01000000" + "0000000000000000000000000000000000000000000000000000000000000000" +
				"37c2127cf7b6352fd895935606fceed964a8247707a0bac9ec909585d6e841a0" + "bce0b460ffff7f2000000000",
		},
	}

	for _, test := range tests {
		t.Run(test.net.String(), func(t *testing.T) {
			table := networkTables[test.net]()
			block := BuildGenesis(table.genesis)

			assert.Equal(t, genesisMerkleRootStr, block.Header.MerkleRoot.String())
			assert.Equal(t, test.headerHex, hex.EncodeToString(block.Header.Bytes()))
			assert.Equal(t, test.hash, block.BlockHash().String())

			require.Len(t, block.Transactions, 1)
			txHex, err := block.Transactions[0].SerializeToHex()
			require.NoError(t, err)
			assert.Equal(t, genesisCoinbaseTxHex, txHex)
			assert.True(t, block.Transactions[0].IsCoinBase())

			// Serialization round trip keeps the identity.
			buf := bytes.NewBuffer(nil)
			require.NoError(t, block.Serialize(buf))
			var decoded wire.MsgBlock
			require.NoError(t, decoded.Deserialize(bytes.NewReader(buf.Bytes())))
			assert.Equal(t, test.hash, decoded.BlockHash().String())
		})
	}
}

func TestBuildGenesisDeterministic(t *testing.T) {
	opts := mainNetTable().genesis

	first := BuildGenesis(opts)
	second := BuildGenesis(opts)

	firstBytes, err := first.Bytes()
	require.NoError(t, err)
	secondBytes, err := second.Bytes()
	require.NoError(t, err)
	assert.Equal(t, firstBytes, secondBytes)

	// The caller's output script is not aliased by the block.
	txHash := first.Transactions[0].TxHash()
	opts.OutputScript[1] ^= 0xff
	assert.Equal(t, txHash, first.Transactions[0].TxHash())
}

func TestGenesisSignatureScript(t *testing.T) {
	script, err := genesisSignatureScript(GenesisTimestampText)
	require.NoError(t, err)
	assert.Equal(t, "04ffff001d010425"+hex.EncodeToString([]byte(GenesisTimestampText)),
		hex.EncodeToString(script))
}

func TestCreateGenesisBlockErrors(t *testing.T) {
	opts := GenesisBlockOpts{
		TimestampText: "",
		OutputScript:  GenesisOutputScript(),
		Time:          time.Unix(1622466748, 0),
		Bits:          0x207fffff,
		Version:       1,
		Reward:        GenesisReward,
	}
	_, err := CreateGenesisBlock(opts)
	assert.Error(t, err)

	opts.TimestampText = string(bytes.Repeat([]byte{'a'}, 521))
	_, err = CreateGenesisBlock(opts)
	assert.Error(t, err)

	opts.TimestampText = GenesisTimestampText
	opts.Reward = -1
	_, err = CreateGenesisBlock(opts)
	assert.Error(t, err)

	assert.Panics(t, func() { BuildGenesis(opts) })
}

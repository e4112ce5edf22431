/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Copyright (c) 2024 The NeoBytes developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"time"

	"github.com/pkg/errors"
	"gitlab.com/neobytes/neobytesd/txscript"
	"gitlab.com/neobytes/neobytesd/types/chainhash"
	"gitlab.com/neobytes/neobytesd/types/wire"
)

const (
	// GenesisTimestampText is the provenance marker embedded in the
	// coinbase of every NeoBytes genesis block.
	GenesisTimestampText = "NeoBytes Genesis born on June 1, 2021"

	// genesisPubKeyHex is the uncompressed key paid by the genesis coinbase.
	genesisPubKeyHex = "04678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5f"

	// genesisCoinbaseBits is the value pushed first in the genesis coinbase
	// script, 0x1d00ffff.
	genesisCoinbaseBits = 486604799

	// genesisCoinbaseExtra is the small number pushed after it.
	genesisCoinbaseExtra = 4

	// GenesisReward is the genesis coinbase output value, 50 coins.
	GenesisReward = 50 * AtomsPerCoin
)

// GenesisBlockOpts are the literal inputs of a genesis block.
type GenesisBlockOpts struct {
	TimestampText string
	OutputScript  []byte
	Time          time.Time
	Nonce         uint32
	Bits          uint32
	Version       int32
	Reward        int64
}

// GenesisOutputScript returns the pay-to-pubkey script of the genesis
// coinbase output shared by all NeoBytes networks.
func GenesisOutputScript() []byte {
	script, err := txscript.PayToPubKeyScript(hexDecode(genesisPubKeyHex))
	if err != nil {
		panic(err)
	}
	return script
}

// genesisSignatureScript builds <486604799> <0x04> <timestamp text>.  The
// second element is a one byte data push, not OP_4.
func genesisSignatureScript(timestampText string) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddData(txscript.ScriptNum(genesisCoinbaseExtra).Bytes()).
		AddData([]byte(timestampText)).
		Script()
}

// CreateGenesisBlock assembles the genesis block described by opts.  The
// nonce is taken as given; nothing is mined.  It fails only when the
// timestamp text is empty or too large for a single script push, or when
// the reward is negative.
func CreateGenesisBlock(opts GenesisBlockOpts) (*wire.MsgBlock, error) {
	if opts.TimestampText == "" {
		return nil, errors.New("genesis timestamp text is empty")
	}
	if opts.Reward < 0 {
		return nil, errors.Errorf("genesis reward %d is negative", opts.Reward)
	}

	sigScript, err := genesisSignatureScript(opts.TimestampText)
	if err != nil {
		return nil, errors.Wrap(err, "can't build genesis coinbase script")
	}

	tx := wire.NewMsgTx(1)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), sigScript))
	tx.AddTxOut(wire.NewTxOut(opts.Reward, append([]byte(nil), opts.OutputScript...)))

	merkleRoot := chainhash.MerkleTreeRoot([]chainhash.Hash{tx.TxHash()})
	header := wire.NewBlockHeader(opts.Version, &chainhash.Hash{}, &merkleRoot,
		opts.Time, opts.Bits, opts.Nonce)

	block := wire.NewMsgBlock(header)
	block.AddTransaction(tx)
	return block, nil
}

// BuildGenesis is like CreateGenesisBlock but panics on invalid options.  It
// is meant for hard-coded literals only.
func BuildGenesis(opts GenesisBlockOpts) *wire.MsgBlock {
	block, err := CreateGenesisBlock(opts)
	if err != nil {
		panic(err)
	}
	return block
}

// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"gitlab.com/neobytes/neobytesd/types/chainhash"
)

// netTable holds the literal constants of one network together with the
// identity its genesis block is pinned to.
type netTable struct {
	genesis     GenesisBlockOpts
	genesisHash chainhash.Hash
	merkleRoot  chainhash.Hash
	checkpoints []Checkpoint
	hints       ProgressHints
	params      Params
}

// networkTables maps each Network to the function producing its literal
// table.  The functions return fresh values on every call.
var networkTables = map[Network]func() *netTable{
	MainNet: mainNetTable,
	TestNet: testNetTable,
	RegTest: regTestTable,
}

// BuildParams assembles the parameters of net from its literal table.  The
// genesis block is rebuilt and must reproduce the pinned hash and merkle
// root; any mismatch or inconsistency is returned as a *FatalConfigError and
// the parameters must not be used.  An unknown net yields an
// *UnknownNetworkError.
func BuildParams(net Network) (*Params, error) {
	tableFn, ok := networkTables[net]
	if !ok {
		return nil, &UnknownNetworkError{Name: net.String()}
	}
	return buildParams(tableFn())
}

func buildParams(table *netTable) (*Params, error) {
	name := table.params.Name

	genesis, err := CreateGenesisBlock(table.genesis)
	if err != nil {
		return nil, fatalf(name, err, "can't assemble genesis block")
	}

	merkleRoot := genesis.Header.MerkleRoot
	if !merkleRoot.IsEqual(&table.merkleRoot) {
		return nil, fatalf(name, ErrMerkleRootMismatch,
			"got %s, want %s", merkleRoot, table.merkleRoot)
	}

	genesisHash := genesis.BlockHash()
	if !genesisHash.IsEqual(&table.genesisHash) {
		return nil, fatalf(name, ErrGenesisHashMismatch,
			"got %s, want %s", genesisHash, table.genesisHash)
	}

	checkpoints, err := NewCheckpointTable(table.checkpoints, table.hints)
	if err != nil {
		return nil, fatalf(name, err, "can't build checkpoint table")
	}

	params := table.params
	params.genesisBlock = genesis
	params.Consensus.GenesisHash = genesisHash
	params.Checkpoints = checkpoints

	if err := params.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("network", name).
		Str("genesis", genesisHash.String()).
		Str("magic", params.Net.String()).
		Str("port", params.DefaultPort).
		Msg("network parameters built")

	return &params, nil
}

// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"gitlab.com/neobytes/neobytesd/types/chainhash"
	"gitlab.com/neobytes/neobytesd/types/pow"
)

// Validate checks that the parameters are internally consistent.  Problems
// are returned as a *FatalConfigError.
func (p *Params) Validate() error {
	if p.genesisBlock == nil {
		return fatalf(p.Name, ErrInvalidParams, "genesis block is missing")
	}
	if p.Checkpoints == nil {
		return fatalf(p.Name, ErrInvalidCheckpoints, "checkpoint table is missing")
	}
	consensus := &p.Consensus

	if len(p.genesisBlock.Transactions) != 1 || !p.genesisBlock.Transactions[0].IsCoinBase() {
		return fatalf(p.Name, ErrInvalidParams, "genesis block must hold exactly one coinbase")
	}
	merkleRoot := chainhash.MerkleTreeRoot(p.genesisBlock.TxHashes())
	if !merkleRoot.IsEqual(&p.genesisBlock.Header.MerkleRoot) {
		return fatalf(p.Name, ErrMerkleRootMismatch,
			"header commits to %s, transactions give %s", p.genesisBlock.Header.MerkleRoot, merkleRoot)
	}

	genesisHash := p.genesisBlock.BlockHash()
	if !genesisHash.IsEqual(&consensus.GenesisHash) {
		return fatalf(p.Name, ErrGenesisHashMismatch,
			"consensus genesis hash %s, block hashes to %s", consensus.GenesisHash, genesisHash)
	}

	if consensus.PowLimit == nil || consensus.PowLimit.Sign() <= 0 {
		return fatalf(p.Name, ErrInvalidParams, "proof of work limit must be positive")
	}
	if pow.CompactToBig(consensus.PowLimitBits).Cmp(consensus.PowLimit) > 0 {
		return fatalf(p.Name, ErrInvalidParams,
			"proof of work limit bits %08x exceed the limit", consensus.PowLimitBits)
	}
	err := pow.CheckProofOfWork(genesisHash, p.genesisBlock.Header.Bits, consensus.PowLimit)
	if err != nil {
		return fatalf(p.Name, err, "genesis block fails proof of work")
	}

	if consensus.PowTargetSpacing <= 0 || consensus.PowTargetTimespan < consensus.PowTargetSpacing {
		return fatalf(p.Name, ErrInvalidParams, "target timespan %s and spacing %s are inconsistent",
			consensus.PowTargetTimespan, consensus.PowTargetSpacing)
	}
	if consensus.MinerConfirmationWindow == 0 ||
		consensus.RuleChangeActivationThreshold > consensus.MinerConfirmationWindow {
		return fatalf(p.Name, ErrInvalidParams, "activation threshold %d exceeds window %d",
			consensus.RuleChangeActivationThreshold, consensus.MinerConfirmationWindow)
	}

	if err := validateDeployments(p.Name, consensus.Deployments[:]); err != nil {
		return err
	}

	if consensus.BIP34Height == 0 && !consensus.BIP34Hash.IsEqual(&genesisHash) {
		return fatalf(p.Name, ErrInvalidParams,
			"BIP34 hash %s at height 0 is not the genesis hash", consensus.BIP34Hash)
	}

	pinned, ok := p.Checkpoints.Lookup(0)
	if !ok || !pinned.IsEqual(&genesisHash) {
		return fatalf(p.Name, ErrInvalidCheckpoints,
			"height 0 checkpoint %s does not match genesis %s", pinned, genesisHash)
	}

	if p.HDCoinTypeID[0]&0x80 == 0 {
		return fatalf(p.Name, ErrInvalidParams, "coin type %x is not hardened", p.HDCoinTypeID)
	}
	if p.HDPrivateKeyID == p.HDPublicKeyID {
		return fatalf(p.Name, ErrInvalidParams, "extended key prefixes are equal")
	}
	if p.PubKeyHashAddrID == p.ScriptHashAddrID {
		return fatalf(p.Name, ErrInvalidParams, "address prefixes are equal")
	}

	return nil
}

// validateDeployments checks bit ranges, bit uniqueness and that every
// window opens before it expires.
func validateDeployments(network string, deployments []ConsensusDeployment) error {
	var used [MaxDeploymentBit + 1]bool
	for i, d := range deployments {
		id := DeploymentID(i)
		if d.BitNumber > MaxDeploymentBit {
			return fatalf(network, ErrInvalidDeployment,
				"%s uses bit %d above %d", id, d.BitNumber, MaxDeploymentBit)
		}
		if used[d.BitNumber] {
			return fatalf(network, ErrInvalidDeployment,
				"%s reuses bit %d", id, d.BitNumber)
		}
		used[d.BitNumber] = true

		if d.StartTime >= d.ExpireTime {
			return fatalf(network, ErrInvalidDeployment,
				"%s starts at %d but expires at %d", id, d.StartTime, d.ExpireTime)
		}
	}
	return nil
}

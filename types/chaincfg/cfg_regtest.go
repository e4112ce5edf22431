// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"gitlab.com/neobytes/neobytesd/types/chainhash"
	"gitlab.com/neobytes/neobytesd/types/wire"
)

// regTestTable defines the network parameters for the regression test
// network.  Its genesis is not mined: nonce 0 already meets the maximal
// target.
func regTestTable() *netTable {
	genesisHash := newHashFromStr("0668630d663da4a6fcb0fa2e1f01f8d156082e2043354707f2f73f032842752b")

	return &netTable{
		genesis: GenesisBlockOpts{
			TimestampText: GenesisTimestampText,
			OutputScript:  GenesisOutputScript(),
			Time:          time.Unix(1622466748, 0), // Mon 31 May 13:12:28 UTC 2021
			Nonce:         0,
			Bits:          0x207fffff,
			Version:       1,
			Reward:        GenesisReward,
		},
		genesisHash: *genesisHash,
		merkleRoot:  *newHashFromStr(genesisMerkleRootStr),

		checkpoints: []Checkpoint{
			{0, *genesisHash},
		},
		hints: ProgressHints{
			Time:     time.Unix(0, 0),
			TxCount:  0,
			TxPerDay: 0,
		},

		params: Params{
			Name:        RegTestName,
			Network:     RegTest,
			Net:         wire.RegTest,
			DefaultPort: "12437",
			DNSSeeds:    []DNSSeed{}, // NOTE: There must NOT be any seeds.
			FixedSeeds:  []SeedSpec6{},

			Consensus: ConsensusParams{
				SubsidyHalvingInterval:           150,
				MasternodePaymentsStartBlock:     240,
				MasternodePaymentsIncreaseBlock:  350,
				MasternodePaymentsIncreasePeriod: 10,
				InstantSendKeepLock:              6,
				BudgetPaymentsStartBlock:         1000,
				BudgetPaymentsCycleBlocks:        50,
				BudgetPaymentsWindowBlocks:       10,
				BudgetProposalEstablishingTime:   20 * time.Minute,
				SuperblockStartBlock:             1500,
				SuperblockCycle:                  10,
				GovernanceMinQuorum:              1,
				GovernanceFilterElements:         100,
				MasternodeMinimumConfirmations:   1,
				MajorityEnforceBlockUpgrade:      750,
				MajorityRejectBlockOutdated:      950,
				MajorityWindow:                   1000,
				BIP34Height:                      -1, // not necessarily activated
				BIP34Hash:                        chainhash.Hash{},
				PowLimit:                         powLimitFromStr("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
				PowLimitBits:                     0x207fffff,
				PowTargetTimespan:                60 * time.Hour, // 2.5 days
				PowTargetSpacing:                 5 * time.Minute,
				PowAllowMinDifficultyBlocks:      true,
				PowNoRetargeting:                 true,
				RuleChangeActivationThreshold:    108, // 75% of MinerConfirmationWindow
				MinerConfirmationWindow:          144,
				Deployments: [DefinedDeployments]ConsensusDeployment{
					DeploymentTestDummy: {
						BitNumber:  28,
						StartTime:  0,
						ExpireTime: 999999999999,
					},
					DeploymentCSV: {
						BitNumber:  0,
						StartTime:  0,
						ExpireTime: 999999999999,
					},
				},
			},

			MaxTipAge:        6 * time.Hour,
			PruneAfterHeight: 1000,

			MiningRequiresPeers:           false,
			DefaultConsistencyChecks:      true,
			RequireStandard:               false,
			MineBlocksOnDemand:            true,
			TestnetToBeDeprecatedFieldRPC: false,

			PoolMaxTransactions:        3,
			FulfilledRequestExpireTime: 5 * time.Minute,

			// Address encoding magics
			PubKeyHashAddrID: 112, // starts with n
			ScriptHashAddrID: 18,  // starts with 8
			PrivateKeyID:     240, // starts with c (uncompressed)

			// BIP32 hierarchical deterministic extended key magics
			HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
			HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

			// BIP44 coin type used in the hierarchical deterministic path for
			// address generation.
			HDCoinTypeID: [4]byte{0x80, 0x00, 0x00, 0x01},
		},
	}
}

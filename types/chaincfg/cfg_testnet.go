// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JAX.Network developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"gitlab.com/neobytes/neobytesd/types/wire"
)

// testNetTable defines the network parameters for the test NeoBytes network.
func testNetTable() *netTable {
	genesisHash := newHashFromStr("0000042e5e7347b96f676974fa0cd902956ae49ce78d4ca4978d59fa90d7343c")

	return &netTable{
		genesis: GenesisBlockOpts{
			TimestampText: GenesisTimestampText,
			OutputScript:  GenesisOutputScript(),
			Time:          time.Unix(1622466128, 0), // Mon 31 May 13:02:08 UTC 2021
			Nonce:         893296,
			Bits:          0x1e0ffff0,
			Version:       1,
			Reward:        GenesisReward,
		},
		genesisHash: *genesisHash,
		merkleRoot:  *newHashFromStr(genesisMerkleRootStr),

		// Checkpoints ordered from oldest to newest.
		checkpoints: []Checkpoint{
			{0, *genesisHash},
		},
		hints: ProgressHints{
			Time:     time.Unix(1622466128, 0),
			TxCount:  0,
			TxPerDay: 500,
		},

		params: Params{
			Name:        TestNetName,
			Network:     TestNet,
			Net:         wire.TestNet,
			DefaultPort: "12427",
			DNSSeeds: []DNSSeed{
				{"neobytes.tools", "testnet-seed.neobytes.tools"},
			},
			FixedSeeds: []SeedSpec6{},

			Consensus: ConsensusParams{
				SubsidyHalvingInterval:           500000,
				MasternodePaymentsStartBlock:     10000,
				MasternodePaymentsIncreaseBlock:  46000,
				MasternodePaymentsIncreasePeriod: 576,
				InstantSendKeepLock:              6,
				BudgetPaymentsStartBlock:         60000,
				BudgetPaymentsCycleBlocks:        50,
				BudgetPaymentsWindowBlocks:       10,
				BudgetProposalEstablishingTime:   20 * time.Minute,
				SuperblockStartBlock:             61000, // must stay above BudgetPaymentsStartBlock
				SuperblockCycle:                  24,    // hourly superblocks
				GovernanceMinQuorum:              1,
				GovernanceFilterElements:         500,
				MasternodeMinimumConfirmations:   1,
				MajorityEnforceBlockUpgrade:      51,
				MajorityRejectBlockOutdated:      75,
				MajorityWindow:                   100,
				BIP34Height:                      0,
				BIP34Hash:                        *genesisHash,
				PowLimit:                         powLimitFromStr("00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
				PowLimitBits:                     0x1e0fffff,
				PowTargetTimespan:                60 * time.Hour, // 2.5 days
				PowTargetSpacing:                 5 * time.Minute,
				PowAllowMinDifficultyBlocks:      true,
				PowNoRetargeting:                 false,
				RuleChangeActivationThreshold:    1815, // 90% of MinerConfirmationWindow
				MinerConfirmationWindow:          2016,
				Deployments: [DefinedDeployments]ConsensusDeployment{
					DeploymentTestDummy: {
						BitNumber:  28,
						StartTime:  1199145601, // January 1, 2008 UTC
						ExpireTime: 1230767999, // December 31, 2008 UTC
					},
					DeploymentCSV: {
						BitNumber:  0,
						StartTime:  1456790400, // March 1st, 2016
						ExpireTime: 1493596800, // May 1st, 2017
					},
				},
			},

			AlertPubKey:      "041197130efc23d878376e05809efb30a78073d5ddd7c29c4408e13ed39778f03458782aa0a803e0e90d1f21eaa8f648d8e3956a5626be12f1136d1d171846f47b",
			MaxTipAge:        0x7fffffff * time.Second, // mining on top of old blocks is allowed
			PruneAfterHeight: 1000,

			MiningRequiresPeers:           true,
			DefaultConsistencyChecks:      false,
			RequireStandard:               false,
			MineBlocksOnDemand:            false,
			TestnetToBeDeprecatedFieldRPC: true,

			PoolMaxTransactions:        3,
			FulfilledRequestExpireTime: 5 * time.Minute,
			SporkPubKey:                "0461848c2eb849fa3a3f7062b133b076b9594d683f0981328f355fd2e88cd62ff6d575bbfc1161dce703f725b085398d89a3bfe30487153c5c7e570502794c3be2",
			MasternodePaymentsPubKey:   "0461848c2eb849fa3a3f7062b133b076b9594d683f0981328f355fd2e88cd62ff6d575bbfc1161dce703f725b085398d89a3bfe30487153c5c7e570502794c3be2",

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

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

// mainNetTable defines the network parameters for the main NeoBytes network.
func mainNetTable() *netTable {
	genesisHash := newHashFromStr("0000083c6edd8e5870c4f25857824125358a96c81b66dc5831ddd5e82a777758")

	return &netTable{
		genesis: GenesisBlockOpts{
			TimestampText: GenesisTimestampText,
			OutputScript:  GenesisOutputScript(),
			Time:          time.Unix(1689725227, 0), // Wed 19 Jul 00:07:07 UTC 2023
			Nonce:         1347040,
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
			Time:     time.Unix(1689725227, 0),
			TxCount:  0,
			TxPerDay: 1500,
		},

		params: Params{
			Name:        MainNetName,
			Network:     MainNet,
			Net:         wire.MainNet,
			DefaultPort: "11427",
			DNSSeeds: []DNSSeed{
				{"neobytes.tools", "dnsseed.neobytes.tools"},
			},
			FixedSeeds: []SeedSpec6{},

			Consensus: ConsensusParams{
				SubsidyHalvingInterval:           500000,
				MasternodePaymentsStartBlock:     960,
				MasternodePaymentsIncreaseBlock:  158000,
				MasternodePaymentsIncreasePeriod: 576 * 30,
				InstantSendKeepLock:              24,
				BudgetPaymentsStartBlock:         328008,
				BudgetPaymentsCycleBlocks:        16616,
				BudgetPaymentsWindowBlocks:       100,
				BudgetProposalEstablishingTime:   24 * time.Hour,
				SuperblockStartBlock:             614820,
				SuperblockCycle:                  16616,
				GovernanceMinQuorum:              10,
				GovernanceFilterElements:         20000,
				MasternodeMinimumConfirmations:   15,
				MajorityEnforceBlockUpgrade:      750,
				MajorityRejectBlockOutdated:      950,
				MajorityWindow:                   1000,
				BIP34Height:                      0,
				BIP34Hash:                        *genesisHash,
				PowLimit:                         powLimitFromStr("00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
				PowLimitBits:                     0x1e0fffff,
				PowTargetTimespan:                60 * time.Hour, // 2.5 days
				PowTargetSpacing:                 5 * time.Minute,
				PowAllowMinDifficultyBlocks:      false,
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
						StartTime:  1486252800, // February 5th, 2017
						ExpireTime: 1517788800, // February 5th, 2018
					},
				},
			},

			AlertPubKey:      "04b4f241819421257b67ef1ea62fd694ee3698559ffbd4aad04ea088d5731fd45e1948580e66af2aba6a40c65a2422ce81430db739a19ad1b4d17eaf6b49e1cec2",
			MaxTipAge:        6 * time.Hour,
			PruneAfterHeight: 100000,

			MiningRequiresPeers:           true,
			DefaultConsistencyChecks:      false,
			RequireStandard:               true,
			MineBlocksOnDemand:            false,
			TestnetToBeDeprecatedFieldRPC: false,

			PoolMaxTransactions:        3,
			FulfilledRequestExpireTime: time.Hour,
			SporkPubKey:                "04a077102fb396b50757ae2197a85326327d51702c03274f8ec601ba9b48dc252314d35d5f3acda0a9cbbbe377e9c8566b657efe565f1123132638ebcdcd177ee4",
			MasternodePaymentsPubKey:   "04a077102fb396b50757ae2197a85326327d51702c03274f8ec601ba9b48dc252314d35d5f3acda0a9cbbbe377e9c8566b657efe565f1123132638ebcdcd177ee4",

			// Address encoding magics
			PubKeyHashAddrID: 53,  // starts with N
			ScriptHashAddrID: 21,  // starts with 9
			PrivateKeyID:     181, // starts with T (uncompressed)

			// BIP32 hierarchical deterministic extended key magics
			HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
			HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

			// BIP44 coin type used in the hierarchical deterministic path for
			// address generation.
			HDCoinTypeID: [4]byte{0x80, 0x00, 0x00, 0x05},
		},
	}
}

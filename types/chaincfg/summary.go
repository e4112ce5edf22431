// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DeploymentSummary is the printable form of a ConsensusDeployment.
type DeploymentSummary struct {
	Name       string `yaml:"name" json:"name"`
	Bit        uint8  `yaml:"bit" json:"bit"`
	StartTime  int64  `yaml:"start_time" json:"start_time"`
	ExpireTime int64  `yaml:"expire_time" json:"expire_time"`
}

// Summary is a flat, serializable view of Params for operators.
type Summary struct {
	Network      string `yaml:"network" json:"network"`
	MessageStart string `yaml:"message_start" json:"message_start"`
	DefaultPort  string `yaml:"default_port" json:"default_port"`

	GenesisHash  string `yaml:"genesis_hash" json:"genesis_hash"`
	MerkleRoot   string `yaml:"merkle_root" json:"merkle_root"`
	GenesisTime  int64  `yaml:"genesis_time" json:"genesis_time"`
	GenesisBits  string `yaml:"genesis_bits" json:"genesis_bits"`
	GenesisNonce uint32 `yaml:"genesis_nonce" json:"genesis_nonce"`

	PubKeyHashAddrID byte   `yaml:"pubkey_hash_addr_id" json:"pubkey_hash_addr_id"`
	ScriptHashAddrID byte   `yaml:"script_hash_addr_id" json:"script_hash_addr_id"`
	PrivateKeyID     byte   `yaml:"private_key_id" json:"private_key_id"`
	HDPublicKeyID    string `yaml:"hd_public_key_id" json:"hd_public_key_id"`
	HDPrivateKeyID   string `yaml:"hd_private_key_id" json:"hd_private_key_id"`
	HDCoinType       uint32 `yaml:"hd_coin_type" json:"hd_coin_type"`

	SubsidyHalvingInterval        int32  `yaml:"subsidy_halving_interval" json:"subsidy_halving_interval"`
	PowLimit                      string `yaml:"pow_limit" json:"pow_limit"`
	PowTargetTimespan             string `yaml:"pow_target_timespan" json:"pow_target_timespan"`
	PowTargetSpacing              string `yaml:"pow_target_spacing" json:"pow_target_spacing"`
	DifficultyAdjustmentInterval  int64  `yaml:"difficulty_adjustment_interval" json:"difficulty_adjustment_interval"`
	PowAllowMinDifficultyBlocks   bool   `yaml:"pow_allow_min_difficulty_blocks" json:"pow_allow_min_difficulty_blocks"`
	PowNoRetargeting              bool   `yaml:"pow_no_retargeting" json:"pow_no_retargeting"`
	BIP34Height                   int32  `yaml:"bip34_height" json:"bip34_height"`
	RuleChangeActivationThreshold uint32 `yaml:"rule_change_activation_threshold" json:"rule_change_activation_threshold"`
	MinerConfirmationWindow       uint32 `yaml:"miner_confirmation_window" json:"miner_confirmation_window"`
	SuperblockStartBlock          int32  `yaml:"superblock_start_block" json:"superblock_start_block"`
	SuperblockCycle               int32  `yaml:"superblock_cycle" json:"superblock_cycle"`

	Deployments []DeploymentSummary `yaml:"deployments" json:"deployments"`
	DNSSeeds    []DNSSeed           `yaml:"dns_seeds" json:"dns_seeds"`
	Checkpoints []Checkpoint        `yaml:"checkpoints" json:"checkpoints"`
	Hints       ProgressHints       `yaml:"progress_hints" json:"progress_hints"`

	MaxTipAge                string `yaml:"max_tip_age" json:"max_tip_age"`
	PruneAfterHeight         int32  `yaml:"prune_after_height" json:"prune_after_height"`
	MiningRequiresPeers      bool   `yaml:"mining_requires_peers" json:"mining_requires_peers"`
	DefaultConsistencyChecks bool   `yaml:"default_consistency_checks" json:"default_consistency_checks"`
	RequireStandard          bool   `yaml:"require_standard" json:"require_standard"`
	MineBlocksOnDemand       bool   `yaml:"mine_blocks_on_demand" json:"mine_blocks_on_demand"`
	PoolMaxTransactions      int    `yaml:"pool_max_transactions" json:"pool_max_transactions"`
	SporkPubKey              string `yaml:"spork_pubkey,omitempty" json:"spork_pubkey,omitempty"`
}

// Summary flattens the parameters into their printable form.
func (p *Params) Summary() Summary {
	c := &p.Consensus
	magic := p.MessageStart()

	s := Summary{
		Network:      p.Name,
		MessageStart: hex.EncodeToString(magic[:]),
		DefaultPort:  p.DefaultPort,

		GenesisHash: c.GenesisHash.String(),

		PubKeyHashAddrID: p.PubKeyHashAddrID,
		ScriptHashAddrID: p.ScriptHashAddrID,
		PrivateKeyID:     p.PrivateKeyID,
		HDPublicKeyID:    hex.EncodeToString(p.HDPublicKeyID[:]),
		HDPrivateKeyID:   hex.EncodeToString(p.HDPrivateKeyID[:]),
		HDCoinType:       p.CoinType(),

		SubsidyHalvingInterval:        c.SubsidyHalvingInterval,
		PowTargetTimespan:             c.PowTargetTimespan.String(),
		PowTargetSpacing:              c.PowTargetSpacing.String(),
		DifficultyAdjustmentInterval:  c.DifficultyAdjustmentInterval(),
		PowAllowMinDifficultyBlocks:   c.PowAllowMinDifficultyBlocks,
		PowNoRetargeting:              c.PowNoRetargeting,
		BIP34Height:                   c.BIP34Height,
		RuleChangeActivationThreshold: c.RuleChangeActivationThreshold,
		MinerConfirmationWindow:       c.MinerConfirmationWindow,
		SuperblockStartBlock:          c.SuperblockStartBlock,
		SuperblockCycle:               c.SuperblockCycle,

		DNSSeeds: append([]DNSSeed{}, p.DNSSeeds...),

		MaxTipAge:                p.MaxTipAge.String(),
		PruneAfterHeight:         p.PruneAfterHeight,
		MiningRequiresPeers:      p.MiningRequiresPeers,
		DefaultConsistencyChecks: p.DefaultConsistencyChecks,
		RequireStandard:          p.RequireStandard,
		MineBlocksOnDemand:       p.MineBlocksOnDemand,
		PoolMaxTransactions:      p.PoolMaxTransactions,
		SporkPubKey:              p.SporkPubKey,
	}

	if c.PowLimit != nil {
		s.PowLimit = fmt.Sprintf("%064x", c.PowLimit)
	}
	if p.genesisBlock != nil {
		header := &p.genesisBlock.Header
		s.MerkleRoot = header.MerkleRoot.String()
		s.GenesisTime = header.Timestamp.Unix()
		s.GenesisBits = fmt.Sprintf("%08x", header.Bits)
		s.GenesisNonce = header.Nonce
	}
	if p.Checkpoints != nil {
		s.Checkpoints = p.Checkpoints.Checkpoints()
		s.Hints = p.Checkpoints.Hints()
	}
	for i, d := range c.Deployments {
		s.Deployments = append(s.Deployments, DeploymentSummary{
			Name:       DeploymentID(i).String(),
			Bit:        d.BitNumber,
			StartTime:  d.StartTime,
			ExpireTime: d.ExpireTime,
		})
	}

	return s
}

// YAML renders the summary as a YAML document.
func (s Summary) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

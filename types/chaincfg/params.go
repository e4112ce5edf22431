// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"gitlab.com/neobytes/neobytesd/types/chainhash"
	"gitlab.com/neobytes/neobytesd/types/wire"
)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is the operator label of the seed.
	Name string `yaml:"name" json:"name"`

	// Host defines the hostname of the seed.
	Host string `yaml:"host" json:"host"`
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// SeedSpec6 is a fixed IPv6 (or IPv4-mapped) peer address bundled with the
// parameters for bootstrapping when DNS seeding fails.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// DeploymentID identifies a soft-fork deployment slot.
type DeploymentID int

// Constants that define the deployment offset in the deployments field of the
// parameters for each deployment.  This is useful to be able to get the details
// of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy DeploymentID = iota

	// DeploymentCSV defines the rule change deployment ID for the CSV
	// soft-fork package. The CSV package includes the deployment of BIPS
	// 68, 112, and 113.
	DeploymentCSV

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// MaxDeploymentBit is the highest version bit a deployment may signal on.
const MaxDeploymentBit = 28

var deploymentNames = [DefinedDeployments]string{
	DeploymentTestDummy: "testdummy",
	DeploymentCSV:       "csv",
}

func (id DeploymentID) String() string {
	if id < 0 || id >= DefinedDeployments {
		return fmt.Sprintf("deployment(%d)", int(id))
	}
	return deploymentNames[id]
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime int64

	// ExpireTime is the median block time after which the attempted
	// deployment expires.
	ExpireTime int64
}

// ConsensusParams holds the rules every node on a network must agree on.
type ConsensusParams struct {
	SubsidyHalvingInterval int32

	// Masternode payment schedule.
	MasternodePaymentsStartBlock     int32
	MasternodePaymentsIncreaseBlock  int32
	MasternodePaymentsIncreasePeriod int32

	InstantSendKeepLock int32

	// Budget and superblock schedule.
	BudgetPaymentsStartBlock       int32
	BudgetPaymentsCycleBlocks      int32
	BudgetPaymentsWindowBlocks     int32
	BudgetProposalEstablishingTime time.Duration
	SuperblockStartBlock           int32
	SuperblockCycle                int32

	GovernanceMinQuorum            int32
	GovernanceFilterElements       int32
	MasternodeMinimumConfirmations int32

	// Block version majority rules.
	MajorityEnforceBlockUpgrade int32
	MajorityRejectBlockOutdated int32
	MajorityWindow              int32

	// BIP34Height is the height BIP34 activated at, -1 when it is not known
	// to have activated.  BIP34Hash is the block at that height.
	BIP34Height int32
	BIP34Hash   chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.  It is shared by every reader of the network and must
	// not be modified in place.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	PowTargetTimespan           time.Duration
	PowTargetSpacing            time.Duration
	PowAllowMinDifficultyBlocks bool
	PowNoRetargeting            bool

	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change. It should typically
	// be 90% for mainnet and 75% for testnet.
	RuleChangeActivationThreshold uint32

	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	MinerConfirmationWindow uint32

	// Deployments define the specific consensus rule changes to be voted
	// on.
	Deployments [DefinedDeployments]ConsensusDeployment

	// GenesisHash is filled in from the verified genesis block.
	GenesisHash chainhash.Hash
}

// DifficultyAdjustmentInterval is the number of blocks between retargets.
func (c *ConsensusParams) DifficultyAdjustmentInterval() int64 {
	return int64(c.PowTargetTimespan / c.PowTargetSpacing)
}

// Params defines a NeoBytes network by its parameters.  These parameters may be
// used by NeoBytes applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// Values handed out by the Registry and the Selector are shared by every
// reader and must be treated as read-only, including the PowLimit integer and
// the seed slices.  Use Copy to get a value that may be changed.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Network is the closed enumeration value of this network.
	Network Network

	// Net defines the magic bytes used to identify the network.
	Net wire.NeoNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are hard-coded peers used when DNS seeding fails.
	FixedSeeds []SeedSpec6

	// genesisBlock defines the first block of the chain.
	genesisBlock *wire.MsgBlock

	Consensus ConsensusParams

	// Checkpoints pins known good blocks, ordered from oldest to newest.
	Checkpoints *CheckpointTable

	// AlertPubKey is the hex encoded key that signs network alerts.
	AlertPubKey string

	// MaxTipAge is how old the tip may be before the node considers itself
	// out of sync.
	MaxTipAge time.Duration

	// PruneAfterHeight is the lowest height pruning may start at.
	PruneAfterHeight int32

	// Operational flags.
	MiningRequiresPeers           bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	TestnetToBeDeprecatedFieldRPC bool

	// PoolMaxTransactions limits the transactions in one mixing pool.
	PoolMaxTransactions int

	// FulfilledRequestExpireTime is how long a fulfilled network request
	// is remembered.
	FulfilledRequestExpireTime time.Duration

	// SporkPubKey and MasternodePaymentsPubKey are hex encoded keys.
	SporkPubKey              string
	MasternodePaymentsPubKey string

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// HDCoinTypeID is the BIP44 coin type with the hardened bit set, in
	// big endian order.
	HDCoinTypeID [4]byte
}

// GenesisBlock returns a copy of the genesis block of the network.
func (p *Params) GenesisBlock() *wire.MsgBlock {
	if p.genesisBlock == nil {
		return nil
	}
	return p.genesisBlock.Copy()
}

// Copy returns a deep copy of the parameters.  The checkpoint table is
// immutable and stays shared.
func (p *Params) Copy() *Params {
	out := *p
	if p.DNSSeeds != nil {
		out.DNSSeeds = append([]DNSSeed(nil), p.DNSSeeds...)
	}
	if p.FixedSeeds != nil {
		out.FixedSeeds = append([]SeedSpec6(nil), p.FixedSeeds...)
	}
	if p.Consensus.PowLimit != nil {
		out.Consensus.PowLimit = new(big.Int).Set(p.Consensus.PowLimit)
	}
	out.genesisBlock = p.GenesisBlock()
	return &out
}

// GenesisHash returns the hash of the genesis block.
func (p *Params) GenesisHash() *chainhash.Hash {
	hash := p.Consensus.GenesisHash
	return &hash
}

// CoinType returns the BIP44 coin type index without the hardened bit.
func (p *Params) CoinType() uint32 {
	id := p.HDCoinTypeID
	return (uint32(id[0])<<24 | uint32(id[1])<<16 | uint32(id[2])<<8 | uint32(id[3])) &^ 0x80000000
}

// MessageStart returns the four magic bytes in wire order.
func (p *Params) MessageStart() [4]byte {
	return p.Net.Bytes()
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexDecode decodes a hard-coded hex literal and panics on malformed input.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

// powLimitFromStr parses a hard-coded 256-bit target.
func powLimitFromStr(hexStr string) *big.Int {
	limit, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid proof of work limit " + hexStr)
	}
	return limit
}

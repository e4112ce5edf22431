// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/neobytes/neobytesd/types/chainhash"
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32          `yaml:"height" json:"height"`
	Hash   chainhash.Hash `yaml:"hash" json:"hash"`
}

// ProgressHints describe the chain at the last checkpoint.  They feed sync
// progress estimates only and are never used to accept or reject blocks.
type ProgressHints struct {
	// Time is the timestamp of the last checkpoint block.
	Time time.Time `yaml:"time" json:"time"`

	// TxCount is the total number of transactions between genesis and the
	// last checkpoint.
	TxCount int64 `yaml:"tx_count" json:"tx_count"`

	// TxPerDay is the estimated number of transactions per day after the
	// last checkpoint.
	TxPerDay float64 `yaml:"tx_per_day" json:"tx_per_day"`
}

// SyncPoint is the state of the local chain tip that progress is estimated
// for.  A negative height means there is no tip yet.
type SyncPoint struct {
	Height    int32
	TxCount   int64
	BlockTime time.Time
}

// CheckpointTable is an ordered, immutable set of height to hash pins.
type CheckpointTable struct {
	points   []Checkpoint
	byHeight map[int32]chainhash.Hash
	hints    ProgressHints
}

// NewCheckpointTable validates the points and returns the table.  Heights must
// be non-negative and strictly increasing, and at least one point is required.
func NewCheckpointTable(points []Checkpoint, hints ProgressHints) (*CheckpointTable, error) {
	if len(points) == 0 {
		return nil, errors.Wrap(ErrInvalidCheckpoints, "no checkpoints")
	}

	table := &CheckpointTable{
		points:   make([]Checkpoint, len(points)),
		byHeight: make(map[int32]chainhash.Hash, len(points)),
		hints:    hints,
	}
	copy(table.points, points)

	for i, point := range points {
		if point.Height < 0 {
			return nil, errors.Wrapf(ErrInvalidCheckpoints,
				"checkpoint %d has negative height %d", i, point.Height)
		}
		if i > 0 && point.Height <= points[i-1].Height {
			return nil, errors.Wrapf(ErrInvalidCheckpoints,
				"checkpoint height %d does not follow %d", point.Height, points[i-1].Height)
		}
		table.byHeight[point.Height] = point.Hash
	}

	return table, nil
}

// Lookup returns the pinned hash at height, if any.
func (t *CheckpointTable) Lookup(height int32) (chainhash.Hash, bool) {
	hash, ok := t.byHeight[height]
	return hash, ok
}

// Verify reports whether a block at height with the given hash is compatible
// with the table: true when the height is not pinned or the hash matches.
func (t *CheckpointTable) Verify(height int32, hash *chainhash.Hash) bool {
	pinned, ok := t.byHeight[height]
	if !ok {
		return true
	}
	return pinned.IsEqual(hash)
}

// LastCheckpoint returns the most recent checkpoint.
func (t *CheckpointTable) LastCheckpoint() Checkpoint {
	return t.points[len(t.points)-1]
}

// TotalBlocksEstimate is the height of the last checkpoint, the minimum
// height a synced chain is known to have.
func (t *CheckpointTable) TotalBlocksEstimate() int32 {
	return t.LastCheckpoint().Height
}

// Checkpoints returns a copy of the points in ascending height order.
func (t *CheckpointTable) Checkpoints() []Checkpoint {
	points := make([]Checkpoint, len(t.points))
	copy(points, t.points)
	return points
}

// Hints returns the sync progress hints.
func (t *CheckpointTable) Hints() ProgressHints {
	return t.hints
}

// ForkBelowCheckpoint reports whether replacing the chain from forkHeight
// upward would rewrite a block at or below the last checkpoint.
func (t *CheckpointTable) ForkBelowCheckpoint(forkHeight int32) bool {
	return forkHeight <= t.LastCheckpoint().Height
}

// EstimatedProgress guesses how far verification has come, as a fraction in
// [0, 1].  Transactions up to the last checkpoint count once, later ones
// count sigcheckVerificationFactor times, and transactions not downloaded yet
// are extrapolated from the TxPerDay hint up to now.
func (t *CheckpointTable) EstimatedProgress(tip SyncPoint, now time.Time) float64 {
	if tip.Height < 0 {
		return 0
	}

	var workBefore, workAfter float64
	cpTx := float64(t.hints.TxCount)
	chainTx := float64(tip.TxCount)

	if tip.TxCount <= t.hints.TxCount {
		cheapBefore := chainTx
		cheapAfter := cpTx - chainTx
		expensiveAfter := daysBetween(t.hints.Time, now) * t.hints.TxPerDay
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*sigcheckVerificationFactor
	} else {
		cheapBefore := cpTx
		expensiveBefore := chainTx - cpTx
		expensiveAfter := daysBetween(tip.BlockTime, now) * t.hints.TxPerDay
		workBefore = cheapBefore + expensiveBefore*sigcheckVerificationFactor
		workAfter = expensiveAfter * sigcheckVerificationFactor
	}

	total := workBefore + workAfter
	if total <= 0 {
		return 1
	}

	return math.Max(0, math.Min(1, workBefore/total))
}

// daysBetween returns the non-negative number of days from since to now.
func daysBetween(since, now time.Time) float64 {
	seconds := now.Unix() - since.Unix()
	if seconds < 0 {
		return 0
	}
	return float64(seconds) / secondsPerDay
}

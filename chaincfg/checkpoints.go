// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"sort"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// sigcheckVerificationFactor is how much more expensive a block is to verify
// when its signatures are checked than when it is trusted by checkpoint.
const sigcheckVerificationFactor = 5.0

const secondsPerDay = 24 * 60 * 60

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointData is the checkpoint table of a network along with the
// statistics used to estimate sync progress past the last checkpoint.
type CheckpointData struct {
	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// LastCheckpointTime is the timestamp of the last checkpoint block.
	LastCheckpointTime time.Time

	// TransactionsLastCheckpoint is the total number of transactions
	// between genesis and the last checkpoint.
	TransactionsLastCheckpoint int64

	// TransactionsPerDay is the estimated number of transactions per day
	// after the last checkpoint.
	TransactionsPerDay float64
}

// Lookup returns the checkpointed hash at height, if any.
func (c *CheckpointData) Lookup(height int32) (*chainhash.Hash, bool) {
	i := sort.Search(len(c.Checkpoints), func(i int) bool {
		return c.Checkpoints[i].Height >= height
	})
	if i < len(c.Checkpoints) && c.Checkpoints[i].Height == height {
		return c.Checkpoints[i].Hash, true
	}
	return nil, false
}

// Verify returns false only when a checkpoint exists at height and its hash
// differs from hash.
func (c *CheckpointData) Verify(height int32, hash *chainhash.Hash) bool {
	want, ok := c.Lookup(height)
	if !ok {
		return true
	}
	return want.IsEqual(hash)
}

// LatestCheckpoint returns the most recent checkpoint, or nil when the table
// is empty.
func (c *CheckpointData) LatestCheckpoint() *Checkpoint {
	if len(c.Checkpoints) == 0 {
		return nil
	}
	return &c.Checkpoints[len(c.Checkpoints)-1]
}

// LatestCheckpointHeight returns the height of the most recent checkpoint,
// or zero when there are none.
func (c *CheckpointData) LatestCheckpointHeight() int32 {
	if cp := c.LatestCheckpoint(); cp != nil {
		return cp.Height
	}
	return 0
}

// EstimatedTransactions returns a rough estimate of the total number of
// transactions in the chain up to height, given the average time between
// blocks.  Below the last checkpoint the count is interpolated from genesis,
// above it the daily transaction rate is extrapolated.  It is intended for
// progress reporting only.
func (c *CheckpointData) EstimatedTransactions(height int32, blockInterval time.Duration) int64 {
	if height <= 0 {
		return 0
	}

	last := c.LatestCheckpointHeight()
	if height <= last {
		return int64(float64(c.TransactionsLastCheckpoint) *
			float64(height) / float64(last))
	}

	days := float64(height-last) * blockInterval.Seconds() / secondsPerDay
	return c.TransactionsLastCheckpoint + int64(days*c.TransactionsPerDay)
}

// GuessVerificationProgress returns the estimated fraction in [0, 1] of the
// verification work done once chainTx transactions up to a tip with the given
// timestamp have been processed.  With sigchecks set, blocks past the last
// checkpoint are weighted by the cost of signature verification.
func (c *CheckpointData) GuessVerificationProgress(chainTx int64, tipTime, now time.Time, sigchecks bool) float64 {
	factor := 1.0
	if sigchecks {
		factor = sigcheckVerificationFactor
	}

	var before, after float64
	if chainTx <= c.TransactionsLastCheckpoint {
		cheapAfter := float64(c.TransactionsLastCheckpoint - chainTx)
		expensiveAfter := now.Sub(c.LastCheckpointTime).Seconds() /
			secondsPerDay * c.TransactionsPerDay
		before = float64(chainTx)
		after = cheapAfter + expensiveAfter*factor
	} else {
		expensiveBefore := float64(chainTx - c.TransactionsLastCheckpoint)
		expensiveAfter := now.Sub(tipTime).Seconds() / secondsPerDay *
			c.TransactionsPerDay
		before = float64(c.TransactionsLastCheckpoint) + expensiveBefore*factor
		after = expensiveAfter * factor
	}

	if after < 0 {
		after = 0
	}
	if before+after <= 0 {
		return 0
	}
	return before / (before + after)
}

// validate ensures checkpoint heights are strictly increasing.
func (c *CheckpointData) validate() error {
	for i := 1; i < len(c.Checkpoints); i++ {
		prev, cur := c.Checkpoints[i-1].Height, c.Checkpoints[i].Height
		if cur <= prev {
			str := fmt.Sprintf("checkpoint at height %d follows height %d",
				cur, prev)
			return paramsError(ErrBadCheckpoints, str)
		}
	}
	return nil
}

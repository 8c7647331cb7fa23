// Copyright (c) 2019-2020 The Dextro developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

// TestCheckpointLookup ensures every checkpointed height yields exactly its
// pinned hash and that other heights are not found.
func TestCheckpointLookup(t *testing.T) {
	data := &mainCheckpoints

	pinned := map[int32]string{
		0:     "0000035f2ce21c2821bec7090e6e70995d556e0c35b1c65eec129a0b914c764a",
		50:    "000000bf7ba33538208c2fe7a69b38fbe406b1a547012a9a9ff80e004d03c5ff",
		1500:  "fa2055cf73cdfa913822a38327dcdad5cd22761b8decf4beaa4804268835a57a",
		10000: "5092e569bca711006d30527cef95c69141d62c9760374f93edc55da52198422e",
	}
	for height, want := range pinned {
		hash, ok := data.Lookup(height)
		require.True(t, ok, "height %d", height)
		require.Equal(t, want, hash.String(), "height %d", height)
		require.True(t, data.Verify(height, hash))
	}

	for _, height := range []int32{-1, 1, 49, 51, 1499, 9999, 10001, 1 << 30} {
		hash, ok := data.Lookup(height)
		require.False(t, ok, "height %d", height)
		require.Nil(t, hash, "height %d", height)

		// Heights without a checkpoint accept any hash.
		require.True(t, data.Verify(height, &chainhash.Hash{}))
	}

	require.False(t, data.Verify(50, &chainhash.Hash{}))
}

// TestCheckpointOrder ensures checkpoint heights of every network are
// strictly increasing.
func TestCheckpointOrder(t *testing.T) {
	for _, net := range Networks() {
		params := testParams(t, net)
		cps := params.Checkpoints.Checkpoints
		for i := 1; i < len(cps); i++ {
			require.Greater(t, cps[i].Height, cps[i-1].Height, net.String())
		}
		require.NoError(t, params.Checkpoints.validate())
	}

	bad := CheckpointData{Checkpoints: []Checkpoint{
		{0, newHashFromStr("01")},
		{10, newHashFromStr("02")},
		{10, newHashFromStr("03")},
	}}
	require.True(t, errors.Is(bad.validate(), ErrBadCheckpoints))
}

func TestLatestCheckpoint(t *testing.T) {
	require.EqualValues(t, 10000, mainCheckpoints.LatestCheckpointHeight())
	require.EqualValues(t, 10000, mainCheckpoints.LatestCheckpoint().Height)
	require.EqualValues(t, 0, testCheckpoints.LatestCheckpointHeight())

	var empty CheckpointData
	require.Nil(t, empty.LatestCheckpoint())
	require.EqualValues(t, 0, empty.LatestCheckpointHeight())
	_, ok := empty.Lookup(0)
	require.False(t, ok)
}

func TestEstimatedTransactions(t *testing.T) {
	tests := []struct {
		height int32
		want   int64
	}{
		{0, 0},
		{-5, 0},
		{5000, 11108},
		{10000, 22217},
		// One day of one minute blocks past the last checkpoint.
		{11440, 22217 + 3000},
		{12880, 22217 + 6000},
	}
	for _, test := range tests {
		got := mainCheckpoints.EstimatedTransactions(test.height, time.Minute)
		require.Equal(t, test.want, got, "height %d", test.height)
	}

	// Only the genesis checkpoint: everything is extrapolated.
	got := testCheckpoints.EstimatedTransactions(1440, time.Minute)
	require.EqualValues(t, 1440, got)
}

func TestGuessVerificationProgress(t *testing.T) {
	data := &mainCheckpoints
	last := data.LastCheckpointTime
	day := 24 * time.Hour

	tests := []struct {
		name      string
		chainTx   int64
		tipTime   time.Time
		now       time.Time
		sigchecks bool
		want      float64
	}{
		{"nothing verified", 0, last, last, false, 0},
		{"at last checkpoint", 22217, last, last, false, 1},
		{"halfway to checkpoint", 11108, last, last, false, 11108.0 / 22217},
		{
			name:    "checkpoint reached, one day behind",
			chainTx: 22217,
			tipTime: last,
			now:     last.Add(day),
			want:    22217.0 / (22217 + 3000),
		},
		{
			name:      "checkpoint reached, one day behind, sigchecks",
			chainTx:   22217,
			tipTime:   last,
			now:       last.Add(day),
			sigchecks: true,
			want:      22217.0 / (22217 + 5*3000),
		},
		{
			name:    "past checkpoint",
			chainTx: 23217,
			tipTime: last.Add(day),
			now:     last.Add(2 * day),
			want:    23217.0 / (23217 + 3000),
		},
		{
			name:      "past checkpoint, sigchecks",
			chainTx:   23217,
			tipTime:   last.Add(day),
			now:       last.Add(2 * day),
			sigchecks: true,
			want:      (22217.0 + 5*1000) / (22217 + 5*1000 + 5*3000),
		},
		{
			name:    "tip ahead of clock",
			chainTx: 23217,
			tipTime: last.Add(2 * day),
			now:     last.Add(day),
			want:    1,
		},
	}

	for _, test := range tests {
		got := data.GuessVerificationProgress(test.chainTx, test.tipTime,
			test.now, test.sigchecks)
		require.InDelta(t, test.want, got, 1e-9, test.name)
		require.GreaterOrEqual(t, got, 0.0, test.name)
		require.LessOrEqual(t, got, 1.0, test.name)
	}
}

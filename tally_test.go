// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tally

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/config"
	"github.com/luxfi/tally/rational"
	"github.com/luxfi/tally/result"
)

func th(t *testing.T, num, den int64, inclusive bool) config.Threshold {
	t.Helper()
	r, err := rational.New(num, den)
	require.NoError(t, err)
	return config.Threshold{Value: r, Inclusive: inclusive}
}

func buildBuffer(t *testing.T, ballots [][]ballot.Rank) *ballot.Buffer {
	t.Helper()
	enc := ballot.NewEncoder(len(ballots))
	for _, b := range ballots {
		require.NoError(t, enc.AddBallot(b...))
	}
	buf, err := enc.Finish()
	require.NoError(t, err)
	return buf
}

func newTally(t *testing.T) *Tally {
	t.Helper()
	tl, err := New(nil, nil)
	require.NoError(t, err)
	return tl
}

func TestRun_NoQuorum(t *testing.T) {
	tl := newTally(t)
	buf := buildBuffer(t, [][]ballot.Rank{{ballot.Single(ballot.YesID)}})
	cfg := config.Config{
		Method: config.MethodYesNo,
		Quorum: config.Quorum{Threshold: th(t, 1, 2, true)},
		Majority: &config.Majority{
			Ballots: th(t, 1, 2, true),
			Voters:  th(t, 1, 2, true),
		},
	}
	res := tl.Run(cfg, buf, nil, 10, nil)
	require.Equal(t, result.StatusNoQuorum, res.Status)
}

func TestRun_TooManyBlanks(t *testing.T) {
	tl := newTally(t)
	buf := buildBuffer(t, [][]ballot.Rank{
		{},
		{},
		{ballot.Single(1)},
	})
	cfg := config.Config{
		Method:     config.MethodThresholdMajority,
		Quorum:     config.Quorum{Threshold: th(t, 0, 1, true)},
		BlankLimit: &config.BlankLimit{Threshold: th(t, 1, 10, true)},
		MaxChoices: &config.MaxChoices{NumChosen: 1},
		MentionThreshold: &config.MentionThreshold{
			Threshold: th(t, 0, 1, true),
		},
	}
	res := tl.Run(cfg, buf, []ballot.CandidateID{1, 2}, 3, nil)
	require.Equal(t, result.StatusTooManyBlanks, res.Status)
}

func TestRun_ThresholdMajorityMentionFilterEmpty(t *testing.T) {
	tl := newTally(t)
	buf := buildBuffer(t, [][]ballot.Rank{
		{ballot.Single(1)},
		{ballot.Single(1)},
	})
	cfg := config.Config{
		Method:           config.MethodThresholdMajority,
		Quorum:           config.Quorum{Threshold: th(t, 0, 1, true)},
		BlankLimit:       &config.BlankLimit{Threshold: th(t, 1, 1, true)},
		MaxChoices:       &config.MaxChoices{NumChosen: 1},
		MentionThreshold: &config.MentionThreshold{Threshold: th(t, 1, 1, false)},
	}
	res := tl.Run(cfg, buf, []ballot.CandidateID{1, 2}, 5, nil)
	require.Equal(t, result.StatusMajorityEmpty, res.Status)
}

func TestRun_ThresholdMajoritySuccess(t *testing.T) {
	tl := newTally(t)
	buf := buildBuffer(t, [][]ballot.Rank{
		{ballot.Single(1)},
		{ballot.Single(1)},
		{ballot.Single(2)},
	})
	cfg := config.Config{
		Method:           config.MethodThresholdMajority,
		Quorum:           config.Quorum{Threshold: th(t, 0, 1, true)},
		BlankLimit:       &config.BlankLimit{Threshold: th(t, 1, 1, true)},
		MaxChoices:       &config.MaxChoices{NumChosen: 1},
		MentionThreshold: &config.MentionThreshold{Threshold: th(t, 0, 1, true)},
	}
	res := tl.Run(cfg, buf, []ballot.CandidateID{1, 2}, 5, nil)
	require.Equal(t, result.StatusSuccess, res.Status)
	require.Equal(t, []ballot.CandidateID{1}, res.Winners)
	require.NotNil(t, res.Mentions)
	require.Equal(t, 3, res.Counts.Submitted)
}

func TestRun_YesNoIgnoresBlankLimit(t *testing.T) {
	tl := newTally(t)
	buf := buildBuffer(t, [][]ballot.Rank{
		{},
		{},
		{ballot.Single(ballot.YesID)},
	})
	cfg := config.Config{
		Method: config.MethodYesNo,
		Quorum: config.Quorum{Threshold: th(t, 0, 1, true)},
		Majority: &config.Majority{
			Ballots: th(t, 0, 1, true),
			Voters:  th(t, 0, 1, true),
		},
	}
	res := tl.Run(cfg, buf, nil, 3, nil)
	require.Equal(t, result.StatusSuccess, res.Status)
	require.NotNil(t, res.YesNo)
}

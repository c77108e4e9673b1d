// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package yesno implements the simple Yes/No and Yes/No/Blank
// tabulation method: two reserved candidate ids (ballot.NoID,
// ballot.YesID) tallied against a ballot-majority test and a
// voter-majority test.
package yesno

import (
	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/config"
	"github.com/luxfi/tally/rational"
	"github.com/luxfi/tally/result"
)

// Run tallies yes, no and blank ballots and evaluates the configured
// Majority thresholds. eligible is the denominator of the voter-majority
// test.
func Run(buf *ballot.Buffer, maj config.Majority, eligible int) *result.VoteResult {
	yes, no, blank := 0, 0, 0
	n := buf.Len()
	for i := 0; i < n; i++ {
		switch {
		case buf.IsBlank(i):
			blank++
		case buf.ContainsCandidate(i, ballot.YesID):
			yes++
		case buf.ContainsCandidate(i, ballot.NoID):
			no++
		default:
			blank++
		}
	}

	total := yes + no
	ballotsRatio := rational.Of(yes, max(total, 1))
	votersRatio := rational.Of(yes, max(eligible, 1))

	ballotsPassed := total > 0 && ballotsRatio.Passes(maj.Ballots.Value, maj.Ballots.Inclusive)
	votersPassed := votersRatio.Passes(maj.Voters.Value, maj.Voters.Inclusive)

	var passed bool
	if maj.MustReachBoth {
		passed = ballotsPassed && votersPassed
	} else {
		passed = ballotsPassed || votersPassed
	}

	return &result.VoteResult{
		Status: result.StatusSuccess,
		YesNo: &result.YesNoTally{
			Yes:           yes,
			No:            no,
			Blank:         blank,
			BallotsPassed: ballotsPassed,
			VotersPassed:  votersPassed,
			Passed:        passed,
		},
	}
}

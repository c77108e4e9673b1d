// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package boundary implements the truncate-with-tie-break step shared
// by Threshold Majority's winner cutoff (spec §4.5) and STV's
// quota-election truncation (spec §4.7 step 1): given a list already
// sorted descending by some key, keep the first n entries, escalating
// to the tie-breaker when the cutoff falls inside a run of equal keys.
package boundary

import (
	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/result"
	"github.com/luxfi/tally/tiebreak"
)

// Resolve truncates sorted (already ordered descending by key, ties
// broken by ascending id) to n entries. If the cutoff splits a run of
// equal keys, the whole tied band is resolved by tb and spliced back in
// before truncation.
func Resolve(sorted []ballot.CandidateID, n int, key func(ballot.CandidateID) float64, tb *tiebreak.Breaker) ([]ballot.CandidateID, *result.VoteResult) {
	if n >= len(sorted) {
		return append([]ballot.CandidateID(nil), sorted...), nil
	}
	if n <= 0 {
		return nil, nil
	}

	keepKey := key(sorted[n-1])
	dropKey := key(sorted[n])
	if keepKey != dropKey {
		return append([]ballot.CandidateID(nil), sorted[:n]...), nil
	}

	lo, hi := -1, -1
	for i, c := range sorted {
		if key(c) == keepKey {
			if lo == -1 {
				lo = i
			}
			hi = i + 1
		}
	}
	tied := append([]ballot.CandidateID(nil), sorted[lo:hi]...)

	if tb == nil {
		return nil, &result.VoteResult{Status: result.StatusTieBreakerNeeded, TiedCandidates: tied}
	}
	ordered, missing := tb.Order(tied)
	if len(missing) > 0 {
		return nil, &result.VoteResult{Status: result.StatusIncompleteTieBreaker, Missing: missing}
	}

	spliced := make([]ballot.CandidateID, 0, len(sorted))
	spliced = append(spliced, sorted[:lo]...)
	spliced = append(spliced, ordered...)
	spliced = append(spliced, sorted[hi:]...)
	if len(spliced) > n {
		spliced = spliced[:n]
	}
	return spliced, nil
}

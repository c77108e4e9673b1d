// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package majority implements the UEA-style Threshold Majority method:
// sort candidates by mention count descending, truncate to max_winners,
// escalating to a tie-breaker when the boundary is ambiguous.
package majority

import (
	"sort"

	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/engine/boundary"
	"github.com/luxfi/tally/result"
	"github.com/luxfi/tally/tiebreak"
)

// Run sorts candidates descending by mention count and returns the top
// maxWinners, resolving a boundary tie via tb if necessary.
func Run(maxWinners int, candidates []ballot.CandidateID, mentions map[ballot.CandidateID]uint32, tb *tiebreak.Breaker) *result.VoteResult {
	sorted := append([]ballot.CandidateID(nil), candidates...)
	sort.Slice(sorted, func(i, j int) bool {
		if mentions[sorted[i]] != mentions[sorted[j]] {
			return mentions[sorted[i]] > mentions[sorted[j]]
		}
		return sorted[i] < sorted[j]
	})

	key := func(c ballot.CandidateID) float64 { return float64(mentions[c]) }
	winners, tieResult := boundary.Resolve(sorted, maxWinners, key, tb)
	if tieResult != nil {
		return tieResult
	}

	return &result.VoteResult{
		Status:   result.StatusSuccess,
		Winners:  winners,
		Mentions: &result.MentionData{Mentions: mentions},
	}
}

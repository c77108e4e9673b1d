// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stv

import (
	"sort"

	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/engine/boundary"
	"github.com/luxfi/tally/internal/idset"
	"github.com/luxfi/tally/result"
	"github.com/luxfi/tally/tiebreak"
)

// electByQuota gathers remaining candidates whose value strictly
// exceeds quota, sorted descending by value, and truncates to target
// via the same boundary tie-break used by Threshold Majority.
func electByQuota(remaining idset.Set[ballot.CandidateID], table *voteTable, quota float64, target int, tb *tiebreak.Breaker) ([]ballot.CandidateID, *result.VoteResult) {
	var qualifying []ballot.CandidateID
	for c := range remaining {
		if table.value(c) > quota {
			qualifying = append(qualifying, c)
		}
	}
	if len(qualifying) == 0 {
		return nil, nil
	}

	sort.Slice(qualifying, func(i, j int) bool {
		vi, vj := table.value(qualifying[i]), table.value(qualifying[j])
		if vi != vj {
			return vi > vj
		}
		return qualifying[i] < qualifying[j]
	})

	return boundary.Resolve(qualifying, target, table.value, tb)
}

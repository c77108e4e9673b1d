// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stv

import (
	"math"

	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/internal/idset"
	"github.com/luxfi/tally/result"
	"github.com/luxfi/tally/tiebreak"
)

// chooseElimination finds the candidate with the smallest current vote
// value, descending into n-th preference tallies of the original
// candidate set (restricted to candidates still remaining) to break
// ties, and falling back to the external tie-breaker (eliminating the
// least preferred) if ties persist.
func chooseElimination(buf *ballot.Buffer, remaining idset.Set[ballot.CandidateID], table *voteTable, original []ballot.CandidateID, tb *tiebreak.Breaker) (ballot.CandidateID, *result.VoteResult) {
	ids := remaining.List()

	minVal := math.Inf(1)
	for _, c := range ids {
		if v := table.value(c); v < minVal {
			minVal = v
		}
	}
	var tied []ballot.CandidateID
	for _, c := range ids {
		if table.value(c) == minVal {
			tied = append(tied, c)
		}
	}
	if len(tied) == 1 {
		return tied[0], nil
	}

	candidateSet := idset.Of(remaining.List()...)
	for n := 0; n <= len(original); n++ {
		_, assign := buf.ScanNthPreferences(candidateSet, n)
		counts := make(map[ballot.CandidateID]int, len(tied))
		for _, id := range assign {
			if id != 0 {
				counts[id]++
			}
		}

		minCount := -1
		var newTied []ballot.CandidateID
		for _, c := range tied {
			cnt := counts[c]
			switch {
			case minCount == -1 || cnt < minCount:
				minCount = cnt
				newTied = []ballot.CandidateID{c}
			case cnt == minCount:
				newTied = append(newTied, c)
			}
		}
		tied = newTied
		if minCount <= 0 || len(tied) == 1 {
			break
		}
	}

	if len(tied) == 1 {
		return tied[0], nil
	}

	if tb == nil {
		return 0, &result.VoteResult{Status: result.StatusTieBreakerNeeded, TiedCandidates: tied}
	}

	var missing []ballot.CandidateID
	for _, c := range tied {
		if _, ok := tb.Index(c); !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return 0, &result.VoteResult{Status: result.StatusIncompleteTieBreaker, Missing: missing}
	}

	worst := tied[0]
	worstIdx, _ := tb.Index(worst)
	for _, c := range tied[1:] {
		idx, _ := tb.Index(c)
		if idx > worstIdx {
			worst, worstIdx = c, idx
		}
	}
	return worst, nil
}

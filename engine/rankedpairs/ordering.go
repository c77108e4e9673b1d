// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rankedpairs

import (
	"sort"

	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/result"
	"github.com/luxfi/tally/tiebreak"
)

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func pairKeyLess(a, b *edge) bool {
	if a.Right != b.Right {
		return a.Right < b.Right
	}
	return a.Left < b.Left
}

// orderPairs implements the strengthened Tideman ordering for one
// round: group by |diff| descending; within a tied group, prefer pairs
// whose loser already lost an emitted pair, then pairs whose winner
// already won an emitted pair, then fall back to the tie-breaker (least
// preferred loser emitted first).
func orderPairs(pairs []*edge, tb *tiebreak.Breaker) ([]*edge, *result.VoteResult) {
	sorted := append([]*edge(nil), pairs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := absInt(sorted[i].Diff), absInt(sorted[j].Diff)
		if di != dj {
			return di > dj
		}
		return pairKeyLess(sorted[i], sorted[j])
	})

	var ordered []*edge
	emittedLosers := make(map[ballot.CandidateID]bool)
	emittedWinners := make(map[ballot.CandidateID]bool)

	i := 0
	for i < len(sorted) {
		j := i
		for j < len(sorted) && absInt(sorted[j].Diff) == absInt(sorted[i].Diff) {
			j++
		}
		group := append([]*edge(nil), sorted[i:j]...)
		resolved, tieResult := resolveGroup(group, emittedLosers, emittedWinners, tb)
		if tieResult != nil {
			return nil, tieResult
		}
		for _, e := range resolved {
			ordered = append(ordered, e)
			emittedLosers[e.loser()] = true
			emittedWinners[e.winner()] = true
		}
		i = j
	}
	return ordered, nil
}

func resolveGroup(group []*edge, emittedLosers, emittedWinners map[ballot.CandidateID]bool, tb *tiebreak.Breaker) ([]*edge, *result.VoteResult) {
	remaining := append([]*edge(nil), group...)
	var out []*edge

	takeWhere := func(pred func(*edge) bool) bool {
		var picked, rest []*edge
		for _, e := range remaining {
			if pred(e) {
				picked = append(picked, e)
			} else {
				rest = append(rest, e)
			}
		}
		if len(picked) == 0 {
			return false
		}
		sort.Slice(picked, func(i, j int) bool { return pairKeyLess(picked[i], picked[j]) })
		out = append(out, picked...)
		for _, e := range picked {
			emittedLosers[e.loser()] = true
			emittedWinners[e.winner()] = true
		}
		remaining = rest
		return true
	}

	for takeWhere(func(e *edge) bool { return emittedLosers[e.loser()] }) {
	}
	for takeWhere(func(e *edge) bool { return emittedWinners[e.winner()] }) {
	}

	if len(remaining) == 0 {
		return out, nil
	}
	if len(remaining) == 1 {
		return append(out, remaining[0]), nil
	}

	if tb == nil {
		var tied [][2]ballot.CandidateID
		for _, e := range remaining {
			tied = append(tied, [2]ballot.CandidateID{e.Right, e.Left})
		}
		return nil, &result.VoteResult{Status: result.StatusTieBreakerNeeded, TiedPairs: tied}
	}

	var missing []ballot.CandidateID
	seen := map[ballot.CandidateID]bool{}
	for _, e := range remaining {
		for _, id := range []ballot.CandidateID{e.Left, e.Right} {
			if seen[id] {
				continue
			}
			seen[id] = true
			if _, ok := tb.Index(id); !ok {
				missing = append(missing, id)
			}
		}
	}
	if len(missing) > 0 {
		return nil, &result.VoteResult{Status: result.StatusIncompleteTieBreaker, Missing: missing}
	}

	sort.Slice(remaining, func(i, j int) bool {
		li, _ := tb.Index(remaining[i].loser())
		lj, _ := tb.Index(remaining[j].loser())
		return li > lj // least preferred (highest index) emitted first
	})
	return append(out, remaining...), nil
}
